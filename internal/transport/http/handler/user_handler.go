package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"go-notes-admin/internal/service"
	resp "go-notes-admin/internal/transport/http/response"
)

// UserHandler 用户管理四件套：GET/POST/PATCH/DELETE /users。
// id 走请求体（PATCH/DELETE），沿用老后端的路由约定。
type UserHandler struct {
	svc *service.UserAdminService
}

func NewUserHandler(svc *service.UserAdminService) *UserHandler {
	return &UserHandler{svc: svc}
}

func (h *UserHandler) MountAPI(g *gin.RouterGroup) {
	g.GET("/users", h.List)
	g.POST("/users", h.Create)
	g.PATCH("/users", h.Update)
	g.DELETE("/users", h.Delete)
}

func (h *UserHandler) List(c *gin.Context) {
	views, err := h.svc.List(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	resp.Data(c, resp.CodeOK, views)
}

type createUserReq struct {
	Username string   `json:"username"`
	Password string   `json:"password"`
	Roles    []string `json:"roles"`
}

func (h *UserHandler) Create(c *gin.Context) {
	var req createUserReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.Message(c, resp.CodeBadRequest, "All fields are required")
		return
	}
	msg, err := h.svc.Create(c.Request.Context(), service.CreateUserInput{
		Username: req.Username,
		Password: req.Password,
		Roles:    req.Roles,
	})
	if err != nil {
		h.fail(c, err)
		return
	}
	resp.Message(c, resp.CodeCreated, msg)
}

type updateUserReq struct {
	ID       string   `json:"id"`
	Username string   `json:"username"`
	Roles    []string `json:"roles"`
	Active   *bool    `json:"active"` // 指针区分“缺字段”和 false
	Password string   `json:"password"`
}

func (h *UserHandler) Update(c *gin.Context) {
	var req updateUserReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.Message(c, resp.CodeBadRequest, "All fields are required")
		return
	}
	msg, err := h.svc.Update(c.Request.Context(), service.UpdateUserInput{
		ID:       req.ID,
		Username: req.Username,
		Roles:    req.Roles,
		Active:   req.Active,
		Password: req.Password,
	})
	if err != nil {
		h.fail(c, err)
		return
	}
	resp.Message(c, resp.CodeOK, msg)
}

type deleteUserReq struct {
	ID string `json:"id"`
}

func (h *UserHandler) Delete(c *gin.Context) {
	var req deleteUserReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.Message(c, resp.CodeBadRequest, "User ID Required")
		return
	}
	msg, err := h.svc.Delete(c.Request.Context(), req.ID)
	if err != nil {
		h.fail(c, err)
		return
	}
	resp.Message(c, resp.CodeOK, msg)
}

// fail 业务错误带状态直出；其余算存储层故障，交给统一 500
func (h *UserHandler) fail(c *gin.Context, err error) {
	var se *service.Error
	if errors.As(err, &se) {
		resp.Message(c, se.Status, se.Message)
		return
	}
	_ = c.Error(err)
	resp.Message(c, resp.CodeServerError, "")
}
