package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"go-notes-admin/internal/core/auth"
	"go-notes-admin/internal/domain"
	httpez "go-notes-admin/internal/transport/http/ez"
	"go-notes-admin/pkg/utils"
)

// mountAuthActions 登录发 token + 回显当前用户；用户的增删改查走 UserHandler
func mountAuthActions(api, authed *gin.RouterGroup, db *gorm.DB, jwter *auth.JWTer) {
	ezPublic := httpez.New(api)

	type loginIn struct {
		Username string `json:"username" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	type loginOut struct {
		AccessToken string          `json:"accessToken"`
		User        domain.UserView `json:"user"`
	}
	httpez.RegisterAction[loginIn, loginOut](ezPublic, db, httpez.Action[loginIn, loginOut]{
		Method: http.MethodPost,
		Path:   "/auth/login",
		Binder: httpez.BindJSON,
		Handler: func(c *gin.Context, tx *gorm.DB, in *loginIn) (loginOut, error) {
			var u domain.User
			if err := tx.First(&u, "username = ?", in.Username).Error; err != nil {
				return loginOut{}, httpez.Unauthorized("invalid credentials")
			}
			if !u.Active {
				return loginOut{}, httpez.Unauthorized("account disabled")
			}
			if !utils.CheckPassword(in.Password, u.PasswordHash) {
				return loginOut{}, httpez.Unauthorized("invalid credentials")
			}
			tok, err := jwter.Issue(u.ID, u.Username, u.Roles)
			if err != nil || tok == "" {
				return loginOut{}, httpez.Internal("issue token failed", err)
			}
			return loginOut{AccessToken: tok, User: u.View()}, nil
		},
	})

	ezAuth := httpez.New(authed)

	httpez.RegisterAction[struct{}, domain.UserView](ezAuth, db, httpez.Action[struct{}, domain.UserView]{
		Method: http.MethodGet,
		Path:   "/me",
		Binder: httpez.BindNone,
		Handler: func(c *gin.Context, tx *gorm.DB, _ *struct{}) (domain.UserView, error) {
			uid := c.GetString("userId")
			if uid == "" {
				return domain.UserView{}, httpez.Unauthorized("unauthorized")
			}
			var u domain.User
			if err := tx.First(&u, "id = ?", uid).Error; err != nil {
				return domain.UserView{}, httpez.NotFound("user not found")
			}
			return u.View(), nil
		},
	})
}
