package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"pca_admin_v1/internal/api/dto"
	"pca_admin_v1/internal/client"
	"pca_admin_v1/internal/service"
)

// AuthController 认证控制器
type AuthController struct {
	svc *service.AuthService
}

// NewAuthController 创建认证控制器
func NewAuthController(svc *service.AuthService) *AuthController {
	return &AuthController{svc: svc}
}

// Login 登录
// POST /login
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := c.svc.Login(ctx, req.Phone, req.Password)
	if err != nil {
		// 登录接口的 401 语义是凭证错误，不走强制下线文案
		if client.IsUnauthorized(err) {
			ctx.JSON(http.StatusUnauthorized, gin.H{"error": "手机号或密码错误"})
			return
		}
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"data":    user,
		"message": "登录成功",
	})
}

// Logout 登出
// POST /logout
func (c *AuthController) Logout(ctx *gin.Context) {
	if err := c.svc.Logout(); err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "已登出"})
}
