package controller

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"pca_admin_v1/internal/client"
	"pca_admin_v1/internal/model"
	"pca_admin_v1/internal/service"
	"pca_admin_v1/internal/store"
)

// ==================== 测试辅助 ====================

// setupOrderRouter 搭建订单控制器测试环境：伪远端 + 真实会话存储与缓存
func setupOrderRouter(t *testing.T, remote http.HandlerFunc) (*gin.Engine, *store.SessionStore, *store.OrderCache) {
	gin.SetMode(gin.TestMode)

	srv := httptest.NewServer(remote)
	t.Cleanup(srv.Close)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("连接测试数据库失败: %v", err)
	}
	session, err := store.NewSessionStore(db)
	if err != nil {
		t.Fatalf("创建会话存储失败: %v", err)
	}
	session.SetAuth("tok-1", model.RoleShopAdmin, "shop-1", &model.User{
		ID: "u1", Name: "店长", Role: model.RoleShopAdmin,
	})

	cache := store.NewOrderCache()
	api := client.New(srv.URL, session, zap.NewNop())
	ctl := NewOrderController(service.NewOrderService(api, cache, 10), session)

	r := gin.New()
	r.GET("/shopadmin/orders", ctl.List)
	r.GET("/shopadmin/orders/:id", ctl.GetByID)
	return r, session, cache
}

func doRequest(r *gin.Engine, method, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, nil)
	r.ServeHTTP(w, req)
	return w
}

// ==================== 编辑页取数 ====================

func TestOrderController_GetByIDCacheMissRedirects(t *testing.T) {
	r, _, _ := setupOrderRouter(t, func(w http.ResponseWriter, req *http.Request) {
		t.Fatal("缓存未命中不应回源请求远端")
	})

	// 缓存为空（相当于刷新或深链直达编辑页）
	w := doRequest(r, http.MethodGet, "/shopadmin/orders/o1")
	if w.Code != http.StatusNotFound {
		t.Fatalf("缓存未命中应返回 404, 实际 %d", w.Code)
	}

	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("响应解析失败: %v", err)
	}
	if body["redirect"] != "/shopadmin/orders" {
		t.Fatalf("应指回订单列表页, 实际 %q", body["redirect"])
	}
	if body["error"] == "" {
		t.Fatal("应附带提示信息")
	}
}

func TestOrderController_GetByIDCacheHit(t *testing.T) {
	r, _, cache := setupOrderRouter(t, func(w http.ResponseWriter, req *http.Request) {
		t.Fatal("缓存命中不应回源请求远端")
	})

	cache.ReplaceAll([]model.Order{
		{ID: "o1", CustomerName: "张三", Status: model.OrderStatusPending, Amount: 100},
	})

	w := doRequest(r, http.MethodGet, "/shopadmin/orders/o1")
	if w.Code != http.StatusOK {
		t.Fatalf("缓存命中应返回 200, 实际 %d", w.Code)
	}

	var body struct {
		Data model.Order `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("响应解析失败: %v", err)
	}
	if body.Data.ID != "o1" || body.Data.CustomerName != "张三" {
		t.Fatalf("返回的订单内容错误: %+v", body.Data)
	}
}

// ==================== 错误分流 ====================

func TestOrderController_ListUnauthorizedClearsSession(t *testing.T) {
	r, session, _ := setupOrderRouter(t, func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	w := doRequest(r, http.MethodGet, "/shopadmin/orders")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("远端 401 应透传为 401, 实际 %d", w.Code)
	}

	var body map[string]string
	json.Unmarshal(w.Body.Bytes(), &body)
	if body["redirect"] != "/login?unauthorized=true" {
		t.Fatalf("401 应指回登录页, 实际 %q", body["redirect"])
	}

	// 拦截器必须已同步清除会话
	if session.Token() != "" {
		t.Fatal("401 后会话令牌应已清除")
	}
}

func TestOrderController_ListRemoteFailure(t *testing.T) {
	r, session, _ := setupOrderRouter(t, func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	w := doRequest(r, http.MethodGet, "/shopadmin/orders")
	if w.Code != http.StatusBadGateway {
		t.Fatalf("远端 5xx 应返回 502, 实际 %d", w.Code)
	}
	// 服务端故障不等于会话失效
	if session.Token() == "" {
		t.Fatal("5xx 不应清除会话")
	}
}
