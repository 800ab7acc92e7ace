package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-notes-admin/internal/domain"
	"go-notes-admin/internal/service"
)

type memUserRepo struct {
	byID  map[string]*domain.User
	order []string
}

func (r *memUserRepo) Create(u *domain.User) error {
	cp := *u
	r.byID[u.ID] = &cp
	r.order = append(r.order, u.ID)
	return nil
}

func (r *memUserRepo) FindByID(id string) (*domain.User, error) {
	u, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *memUserRepo) FindByUsername(username string) (*domain.User, error) {
	for _, id := range r.order {
		if u := r.byID[id]; u != nil && u.Username == username {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memUserRepo) List() ([]domain.User, error) {
	out := make([]domain.User, 0, len(r.order))
	for _, id := range r.order {
		if u := r.byID[id]; u != nil {
			out = append(out, *u)
		}
	}
	return out, nil
}

func (r *memUserRepo) Update(u *domain.User) error {
	cp := *u
	r.byID[u.ID] = &cp
	return nil
}

func (r *memUserRepo) Delete(id string) error {
	delete(r.byID, id)
	return nil
}

type memNoteRepo struct{ userIDs map[string]bool }

func (r *memNoteRepo) ExistsForUser(userID string) (bool, error) { return r.userIDs[userID], nil }

func newTestRouter(users *memUserRepo, notes *memNoteRepo) *gin.Engine {
	gin.SetMode(gin.TestMode)
	svc := service.NewUserAdminService(users, notes, nil)
	r := gin.New()
	NewUserHandler(svc).MountAPI(r.Group(""))
	return r
}

func emptyRepos() (*memUserRepo, *memNoteRepo) {
	return &memUserRepo{byID: map[string]*domain.User{}}, &memNoteRepo{userIDs: map[string]bool{}}
}

func do(r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func message(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var m struct {
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &m))
	return m.Message
}

func TestUsersFlow(t *testing.T) {
	users, notes := emptyRepos()
	r := newTestRouter(users, notes)

	// 空表：List 报客户端错误（兼容行为）
	w := do(r, http.MethodGet, "/users", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "No user found", message(t, w))

	// 创建 alice
	w = do(r, http.MethodPost, "/users", gin.H{
		"username": "alice", "password": "secret123", "roles": []string{"Employee"},
	})
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "New user alice was created", message(t, w))

	// 同名再建 → 409
	w = do(r, http.MethodPost, "/users", gin.H{
		"username": "alice", "password": "other", "roles": []string{"Manager"},
	})
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "Duplicate Username", message(t, w))

	// List 返回裸数组，且无密码字段
	w = do(r, http.MethodGet, "/users", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	var list []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list, 1)
	assert.Equal(t, "alice", list[0]["username"])
	assert.NotContains(t, list[0], "password")
	assert.NotContains(t, list[0], "passwordHash")

	id, _ := list[0]["id"].(string)
	require.NotEmpty(t, id)

	// 改名（无密码字段）
	w = do(r, http.MethodPatch, "/users", gin.H{
		"id": id, "username": "alice2", "roles": []string{"Employee"}, "active": true,
	})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "alice2 updated", message(t, w))

	u, _ := users.FindByID(id)
	require.NotNil(t, u)
	assert.Equal(t, "alice2", u.Username)

	// 挂了笔记的用户不许删
	notes.userIDs[id] = true
	w = do(r, http.MethodDelete, "/users", gin.H{"id": id})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "User has assigned notes", message(t, w))
	u, _ = users.FindByID(id)
	assert.NotNil(t, u)

	// 笔记清掉之后可删
	notes.userIDs[id] = false
	w = do(r, http.MethodDelete, "/users", gin.H{"id": id})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Username alice2 with ID "+id+" deleted", message(t, w))
}

func TestCreate_MissingFields(t *testing.T) {
	users, notes := emptyRepos()
	r := newTestRouter(users, notes)

	w := do(r, http.MethodPost, "/users", gin.H{"username": "alice"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "All fields are required", message(t, w))
}

func TestCreate_MalformedBody(t *testing.T) {
	users, notes := emptyRepos()
	r := newTestRouter(users, notes)

	req := httptest.NewRequest(http.MethodPost, "/users", bytes.NewBufferString("{not json"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "All fields are required", message(t, w))
}

func TestUpdate_MissingActive(t *testing.T) {
	users, notes := emptyRepos()
	users.Create(&domain.User{ID: "u1", Username: "alice", Roles: []string{"Employee"}, Active: true})
	r := newTestRouter(users, notes)

	w := do(r, http.MethodPatch, "/users", gin.H{
		"id": "u1", "username": "alice", "roles": []string{"Employee"},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "All fields are required", message(t, w))
}

func TestUpdate_UserNotFound(t *testing.T) {
	users, notes := emptyRepos()
	r := newTestRouter(users, notes)

	w := do(r, http.MethodPatch, "/users", gin.H{
		"id": "missing", "username": "x", "roles": []string{"Employee"}, "active": true,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "User not found", message(t, w))
}

func TestDelete_IDRequired(t *testing.T) {
	users, notes := emptyRepos()
	r := newTestRouter(users, notes)

	w := do(r, http.MethodDelete, "/users", gin.H{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "User ID Required", message(t, w))
}
