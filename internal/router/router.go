package router

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "pca_admin_v1/docs"
	"pca_admin_v1/internal/controller"
	"pca_admin_v1/internal/middleware"
	"pca_admin_v1/internal/model"
	"pca_admin_v1/internal/store"
)

// Controllers 控制器集合
type Controllers struct {
	Auth   *controller.AuthController
	Shop   *controller.ShopController
	Order  *controller.OrderController
	Public *controller.PublicController
}

// SetupRouter 注册所有路由
func SetupRouter(ctls *Controllers, session *store.SessionStore, logger *zap.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger(logger))

	// Swagger 文档路由
	// 访问 http://localhost:8080/swagger/index.html 即可查看
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// 认证
	r.POST("/login", ctls.Auth.Login)
	r.POST("/logout", ctls.Auth.Logout)

	// 超管组：整组只许 SUPERADMIN 进入，每次导航实时判定
	superadmin := r.Group("/superadmin",
		middleware.RequireRole(session, model.RoleSuperAdmin))
	{
		superadmin.GET("/dashboard", ctls.Shop.Dashboard)

		shops := superadmin.Group("/shops")
		{
			shops.GET("", ctls.Shop.List)
			shops.POST("", ctls.Shop.Create)
			shops.GET("/:id", ctls.Shop.GetByID)
			shops.PATCH("/:id", ctls.Shop.Update)
			shops.DELETE("/:id", ctls.Shop.Delete)
		}
	}

	// 店铺管理员组：整组只许 SHOPADMIN 进入
	shopadmin := r.Group("/shopadmin",
		middleware.RequireRole(session, model.RoleShopAdmin))
	{
		shopadmin.GET("/dashboard", ctls.Order.Dashboard)

		orders := shopadmin.Group("/orders")
		{
			orders.GET("", ctls.Order.List)
			orders.POST("", ctls.Order.Create)
			orders.GET("/:id", ctls.Order.GetByID)
			orders.PATCH("/:id", ctls.Order.Update)
			orders.DELETE("/:id", ctls.Order.Delete)
		}
	}

	// 公开组：顾客免登录访问
	public := r.Group("/shop")
	{
		public.GET("/:shopId", ctls.Public.GetShop)
		public.GET("/:shopId/orders", ctls.Public.ListOrders)
	}

	return r
}
