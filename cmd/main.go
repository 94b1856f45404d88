package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"pca_admin_v1/internal/client"
	"pca_admin_v1/internal/config"
	"pca_admin_v1/internal/controller"
	"pca_admin_v1/internal/router"
	"pca_admin_v1/internal/service"
	"pca_admin_v1/internal/store"
	"pca_admin_v1/internal/task"
	"pca_admin_v1/pkg/utils"
)

func main() {
	cfg := config.Load()

	// 1. 初始化日志
	zlog, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("日志初始化失败: %v", err)
	}
	defer zlog.Sync()

	// 2. 初始化依赖
	deps, err := initDependencies(cfg, zlog)
	if err != nil {
		log.Fatalf("依赖初始化失败: %v", err)
	}

	// 3. 启动定时任务
	sweep := task.NewCacheSweepTask(deps.OrderCache, cfg.CacheTTL)
	sweep.Start()

	// 4. 初始化路由
	r := router.SetupRouter(deps.Controllers, deps.Session, zlog)

	// 5. 启动服务
	startServer(r, cfg.ServerPort, func() {
		sweep.Stop()
		deps.Services.Public.Shutdown()
	})
}

// ==================== 依赖容器 ====================

// Dependencies 依赖容器
type Dependencies struct {
	Session     *store.SessionStore
	OrderCache  *store.OrderCache
	API         *client.APIClient
	Services    *Services
	Controllers *router.Controllers
}

// Services 服务集合
type Services struct {
	Auth   *service.AuthService
	Shop   *service.ShopService
	Order  *service.OrderService
	Public *service.PublicService
}

// ==================== 初始化函数 ====================

// initDependencies 初始化所有依赖
func initDependencies(cfg *config.Config, zlog *zap.Logger) (*Dependencies, error) {
	// -------- 存储层 --------
	// 会话先于任何路由判定回灌，刷新/重启不会被误判为未登录
	db, err := gorm.Open(sqlite.Open(cfg.SessionDBPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	session, err := store.NewSessionStore(db)
	if err != nil {
		return nil, err
	}
	orderCache := store.NewOrderCache()

	// -------- API 客户端 --------
	api := client.New(cfg.APIBaseURL, session, zlog)
	// 强制下线钩子：会话已在拦截器内同步清空，这里异步清掉订单缓存
	api.SetForcedLogoutHook(func() {
		orderCache.Clear()
		zlog.Warn("会话已被远端判定失效，订单缓存已清空")
	})

	// -------- 业务服务 --------
	services := &Services{
		Auth:   service.NewAuthService(api, session, orderCache, zlog),
		Shop:   service.NewShopService(api, cfg.PageSize),
		Order:  service.NewOrderService(api, orderCache, cfg.PageSize),
		Public: service.NewPublicService(api, utils.NewDebouncer(cfg.SearchDelay), zlog),
	}

	// -------- Controller 层 --------
	controllers := &router.Controllers{
		Auth:   controller.NewAuthController(services.Auth),
		Shop:   controller.NewShopController(services.Shop),
		Order:  controller.NewOrderController(services.Order, session),
		Public: controller.NewPublicController(services.Public),
	}

	return &Dependencies{
		Session:     session,
		OrderCache:  orderCache,
		API:         api,
		Services:    services,
		Controllers: controllers,
	}, nil
}

// ==================== 服务启动 ====================

// startServer 启动服务
func startServer(r *gin.Engine, port string, onShutdown func()) {
	srv := &http.Server{
		Addr:    ":" + port,
		Handler: r,
	}

	// 异步启动服务
	go func() {
		log.Printf("服务启动在 :%s", port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("服务启动失败: %v", err)
		}
	}()

	// 等待退出信号
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("正在关闭服务...")
	onShutdown()

	// 优雅关闭，最多等待 10 秒
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("服务强制关闭: %v", err)
	}

	log.Println("服务已退出")
}
