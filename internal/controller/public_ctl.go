package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"pca_admin_v1/internal/service"
	"pca_admin_v1/pkg/utils"
)

// PublicController 公开页控制器（顾客免登录访问）
type PublicController struct {
	svc *service.PublicService
}

// NewPublicController 创建公开页控制器
func NewPublicController(svc *service.PublicService) *PublicController {
	return &PublicController{svc: svc}
}

// GetShop 公开店铺信息（含 UPI 收款信息）
// GET /shop/:shopId
func (c *PublicController) GetShop(ctx *gin.Context) {
	shop, err := c.svc.GetShop(ctx, ctx.Param("shopId"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"data": shop})
}

// ListOrders 公开订单列表（搜索经防抖）
// GET /shop/:shopId/orders
// 被更新输入覆盖的请求返回 204，调用方保留当前视图即可
func (c *PublicController) ListOrders(ctx *gin.Context) {
	orders, err := c.svc.SearchOrders(ctx, ctx.Param("shopId"), ctx.Query("search"))
	if err != nil {
		if errors.Is(err, utils.ErrSuperseded) || errors.Is(err, utils.ErrStopped) {
			ctx.Status(http.StatusNoContent)
			return
		}
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"data": orders})
}
