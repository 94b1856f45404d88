package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"pca_admin_v1/internal/api/dto"
	"pca_admin_v1/internal/service"
)

// ShopController 店铺控制器（超管侧）
type ShopController struct {
	svc *service.ShopService
}

// NewShopController 创建店铺控制器
func NewShopController(svc *service.ShopService) *ShopController {
	return &ShopController{svc: svc}
}

// ==================== 看板 ====================

// Dashboard 超管看板
// GET /superadmin/dashboard
func (c *ShopController) Dashboard(ctx *gin.Context) {
	board, err := c.svc.Dashboard(ctx)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"data": board})
}

// ==================== 列表与详情 ====================

// List 店铺列表
// GET /superadmin/shops
func (c *ShopController) List(ctx *gin.Context) {
	var query dto.ShopListQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := c.svc.List(ctx, &query)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"data": resp})
}

// GetByID 店铺详情
// GET /superadmin/shops/:id
func (c *ShopController) GetByID(ctx *gin.Context) {
	shop, err := c.svc.Get(ctx, ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"data": shop})
}

// ==================== 变更操作 ====================

// Create 创建店铺
// POST /superadmin/shops
func (c *ShopController) Create(ctx *gin.Context) {
	var req dto.CreateShopRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	shop, err := c.svc.Create(ctx, &req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{
		"data":    shop,
		"message": "店铺创建成功",
	})
}

// Update 更新店铺
// PATCH /superadmin/shops/:id
func (c *ShopController) Update(ctx *gin.Context) {
	var req dto.UpdateShopRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	shop, err := c.svc.Update(ctx, ctx.Param("id"), &req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{
		"data":    shop,
		"message": "店铺已更新",
	})
}

// Delete 删除店铺
// DELETE /superadmin/shops/:id
func (c *ShopController) Delete(ctx *gin.Context) {
	if err := c.svc.Delete(ctx, ctx.Param("id")); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "店铺已删除"})
}
