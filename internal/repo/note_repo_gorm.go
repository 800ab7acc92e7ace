package repo

import (
	"gorm.io/gorm"

	"go-notes-admin/internal/domain"
)

type NoteRepo struct{ db *gorm.DB }

func NewNoteRepo(db *gorm.DB) *NoteRepo { return &NoteRepo{db: db} }

// ExistsForUser 只查存在性，不取整行
func (r *NoteRepo) ExistsForUser(userID string) (bool, error) {
	var n int64
	err := r.db.Model(&domain.Note{}).Where("user_id = ?", userID).Limit(1).Count(&n).Error
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
