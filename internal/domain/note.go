package domain

import "time"

// Note 归属于某个用户；本服务只关心“该用户是否还挂着笔记”，
// 笔记自身的业务规则由 notes 模块负责。
type Note struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	UserID    string    `gorm:"index;size:36;not null" json:"user"`
	Title     string    `gorm:"size:128;not null" json:"title"`
	Text      string    `gorm:"type:text" json:"text"`
	Completed bool      `gorm:"not null;default:false" json:"completed"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (Note) TableName() string { return "notes" }

type NoteRepository interface {
	ExistsForUser(userID string) (bool, error)
}
