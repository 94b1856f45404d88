package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"pca_admin_v1/internal/api/dto"
	"pca_admin_v1/internal/service"
	"pca_admin_v1/internal/store"
)

// ordersListPath 订单列表路由（缓存未命中时的回退目标）
const ordersListPath = "/shopadmin/orders"

// OrderController 订单控制器（店铺管理员侧）
// 租户 ID 一律取自当前会话，不信任请求参数
type OrderController struct {
	svc     *service.OrderService
	session *store.SessionStore
}

// NewOrderController 创建订单控制器
func NewOrderController(svc *service.OrderService, session *store.SessionStore) *OrderController {
	return &OrderController{svc: svc, session: session}
}

// ==================== 看板 ====================

// Dashboard 店铺看板
// GET /shopadmin/dashboard
func (c *OrderController) Dashboard(ctx *gin.Context) {
	board, err := c.svc.Dashboard(ctx, c.session.ShopID())
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"data": board})
}

// ==================== 列表与编辑页取数 ====================

// List 订单列表
// GET /shopadmin/orders
func (c *OrderController) List(ctx *gin.Context) {
	var query dto.OrderListQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := c.svc.List(ctx, c.session.ShopID(), &query)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"data": resp})
}

// GetByID 编辑页取单条订单（只读缓存，不回源）
// GET /shopadmin/orders/:id
// 缓存未命中（刷新或深链直达）视为本次导航终止：提示并跳回列表页
func (c *OrderController) GetByID(ctx *gin.Context) {
	order, ok := c.svc.GetCached(ctx.Param("id"))
	if !ok {
		ctx.JSON(http.StatusNotFound, gin.H{
			"error":    "订单数据不可用，请回到列表页重新进入",
			"redirect": ordersListPath,
		})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"data": order})
}

// ==================== 变更操作 ====================

// Create 创建订单
// POST /shopadmin/orders
func (c *OrderController) Create(ctx *gin.Context) {
	var req dto.CreateOrderRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	order, err := c.svc.Create(ctx, c.session.ShopID(), &req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{
		"data":    order,
		"message": "订单创建成功",
	})
}

// Update 更新订单
// PATCH /shopadmin/orders/:id
func (c *OrderController) Update(ctx *gin.Context) {
	var req dto.UpdateOrderRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	order, err := c.svc.Update(ctx, c.session.ShopID(), ctx.Param("id"), &req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{
		"data":    order,
		"message": "订单已更新",
	})
}

// Delete 删除订单
// DELETE /shopadmin/orders/:id
func (c *OrderController) Delete(ctx *gin.Context) {
	if err := c.svc.Delete(ctx, c.session.ShopID(), ctx.Param("id")); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "订单已删除"})
}
