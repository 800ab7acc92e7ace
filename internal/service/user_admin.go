package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go-notes-admin/internal/core/cache"
	"go-notes-admin/internal/domain"
	"go-notes-admin/pkg/utils"
)

const (
	usersCacheKey = "users:all"
	usersCacheTTL = 30 * time.Second
)

// UserAdminService 用户后台管理：List / Create / Update / Delete。
// 进程内无状态，共享数据全部落在存储层。
type UserAdminService struct {
	users domain.UserRepository
	notes domain.NoteRepository
	cache *cache.Cache // 可为 nil（直连存储）
}

func NewUserAdminService(users domain.UserRepository, notes domain.NoteRepository, c *cache.Cache) *UserAdminService {
	return &UserAdminService{users: users, notes: notes, cache: c}
}

// List 返回全部用户投影（不含密码哈希）；查不到任何用户按客户端错误处理，
// 这是老后端的既有行为，客户端依赖它，不改
func (s *UserAdminService) List(ctx context.Context) ([]domain.UserView, error) {
	if s.cache == nil {
		return s.loadViews()
	}
	views, err := cache.GetOrLoadJSON[[]domain.UserView](s.cache, ctx, usersCacheKey, usersCacheTTL, func(context.Context) (*[]domain.UserView, error) {
		v, e := s.loadViews()
		if e != nil {
			return nil, e
		}
		return &v, nil
	})
	if err != nil {
		return nil, err
	}
	if views == nil {
		return nil, errNoUserFound
	}
	return *views, nil
}

func (s *UserAdminService) loadViews() ([]domain.UserView, error) {
	users, err := s.users.List()
	if err != nil {
		return nil, err
	}
	if len(users) == 0 {
		return nil, errNoUserFound
	}
	views := make([]domain.UserView, 0, len(users))
	for i := range users {
		views = append(views, users[i].View())
	}
	return views, nil
}

type CreateUserInput struct {
	Username string
	Password string
	Roles    []string
}

// Create 校验 → 查重 → bcrypt → 入库；新用户默认 active=true
func (s *UserAdminService) Create(ctx context.Context, in CreateUserInput) (string, error) {
	if in.Username == "" || in.Password == "" || len(in.Roles) == 0 {
		return "", errAllFieldsRequired
	}
	dup, err := s.users.FindByUsername(in.Username)
	if err != nil {
		return "", err
	}
	if dup != nil {
		return "", errDuplicateUsername
	}

	u := &domain.User{
		ID:           utils.NewID(),
		Username:     in.Username,
		PasswordHash: utils.HashPassword(in.Password),
		Roles:        in.Roles,
		Active:       true,
	}
	if err := s.users.Create(u); err != nil {
		// 唯一索引兜住并发查重窗口；存储层拒绝统一报无效数据
		if isDupKey(err) {
			return "", errInvalidUserData
		}
		return "", err
	}
	s.invalidate(ctx)
	return fmt.Sprintf("New user %s was created", u.Username), nil
}

type UpdateUserInput struct {
	ID       string
	Username string
	Roles    []string
	Active   *bool  // 必填；指针用于区分“缺字段”和 false
	Password string // 可选；为空则保持旧哈希
}

// Update 整体覆盖 username/roles/active；密码只在提供时重哈希。
// 同名检查放行自身（不改名的更新不许自冲突）。
func (s *UserAdminService) Update(ctx context.Context, in UpdateUserInput) (string, error) {
	if in.ID == "" || in.Username == "" || len(in.Roles) == 0 || in.Active == nil {
		return "", errAllFieldsRequired
	}
	u, err := s.users.FindByID(in.ID)
	if err != nil {
		return "", err
	}
	if u == nil {
		return "", errUserNotFound
	}
	dup, err := s.users.FindByUsername(in.Username)
	if err != nil {
		return "", err
	}
	if dup != nil && dup.ID != in.ID {
		return "", errDuplicateUsername
	}

	u.Username = in.Username
	u.Roles = in.Roles
	u.Active = *in.Active
	if in.Password != "" {
		u.PasswordHash = utils.HashPassword(in.Password)
	}
	if err := s.users.Update(u); err != nil {
		return "", err
	}
	s.invalidate(ctx)
	return fmt.Sprintf("%s updated", u.Username), nil
}

// Delete 还挂着笔记的用户不许删；笔记检查和删除之间无事务（接受竞态窗口）
func (s *UserAdminService) Delete(ctx context.Context, id string) (string, error) {
	if id == "" {
		return "", errUserIDRequired
	}
	has, err := s.notes.ExistsForUser(id)
	if err != nil {
		return "", err
	}
	if has {
		return "", errUserHasNotes
	}
	u, err := s.users.FindByID(id)
	if err != nil {
		return "", err
	}
	if u == nil {
		return "", errUserNotFound
	}
	if err := s.users.Delete(id); err != nil {
		return "", err
	}
	s.invalidate(ctx)
	return fmt.Sprintf("Username %s with ID %s deleted", u.Username, id), nil
}

func (s *UserAdminService) invalidate(ctx context.Context) {
	if s.cache != nil {
		s.cache.Invalidate(ctx, usersCacheKey)
	}
}

func isDupKey(err error) bool {
	// 不依赖 gorm.ErrDuplicatedKey，避免驱动差异
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate") ||
		strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "unique violation") ||
		strings.Contains(msg, "duplicate key")
}
