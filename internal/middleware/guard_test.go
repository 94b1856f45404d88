package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"pca_admin_v1/internal/model"
)

// fakeRoleSource 固定角色的会话源
type fakeRoleSource struct {
	role model.Role
}

func (f *fakeRoleSource) Role() model.Role { return f.role }

func setupGuardRouter(role model.Role) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	session := &fakeRoleSource{role: role}
	r.GET("/superadmin/dashboard",
		RequireRole(session, model.RoleSuperAdmin),
		func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"message": "ok"})
		})
	return r
}

func TestRequireRole_AllowsListedRole(t *testing.T) {
	r := setupGuardRouter(model.RoleSuperAdmin)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/superadmin/dashboard", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("白名单角色应放行, 实际状态码 %d", w.Code)
	}
}

func TestRequireRole_DeniesWrongRole(t *testing.T) {
	// SHOPADMIN 访问仅限 SUPERADMIN 的路由：必须跳登录页
	r := setupGuardRouter(model.RoleShopAdmin)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/superadmin/dashboard", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusFound {
		t.Fatalf("越权访问应重定向, 实际状态码 %d", w.Code)
	}

	loc := w.Header().Get("Location")
	if !strings.HasPrefix(loc, LoginPath) {
		t.Fatalf("应跳转登录页, 实际 %q", loc)
	}
	// 原始目标路径随跳转携带（登录流程目前不消费，与原设计一致）
	if !strings.Contains(loc, "from=") {
		t.Fatalf("跳转应携带原始路径, 实际 %q", loc)
	}
}

func TestRequireRole_DeniesEmptySession(t *testing.T) {
	r := setupGuardRouter("")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/superadmin/dashboard", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusFound {
		t.Fatalf("未登录应重定向, 实际状态码 %d", w.Code)
	}
}
