package middleware

import (
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"pca_admin_v1/internal/model"
)

// ==================== 角色读取接口 ====================

// RoleSource 当前会话角色来源
type RoleSource interface {
	Role() model.Role
}

// ==================== 路由门卫 ====================

// LoginPath 登录路由
const LoginPath = "/login"

// RequireRole 角色准入中间件
// 每次导航实时判定，不缓存：角色存在且在白名单内放行，否则跳登录页
// 跳转时带上原始目标路径（from），登录流程目前并不消费它——与原设计保持一致
func RequireRole(session RoleSource, allowed ...model.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := session.Role()

		if role != "" && roleAllowed(role, allowed) {
			c.Next()
			return
		}

		target := LoginPath + "?from=" + url.QueryEscape(c.Request.URL.RequestURI())
		c.Redirect(http.StatusFound, target)
		c.Abort()
	}
}

// roleAllowed 角色是否在白名单内
func roleAllowed(role model.Role, allowed []model.Role) bool {
	for _, r := range allowed {
		if role == r {
			return true
		}
	}
	return false
}
