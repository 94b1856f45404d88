package dto

import "pca_admin_v1/internal/model"

// ==================== 请求 ====================

// CreateShopRequest 创建店铺
type CreateShopRequest struct {
	Name           string `json:"name" binding:"required"`
	Address        string `json:"address" binding:"required"`
	OwnerPhone     string `json:"ownerPhone" binding:"required"`
	OwnerPassword  string `json:"ownerPassword" binding:"required"`
	OwnerEmail     string `json:"ownerEmail" binding:"required,email"`
	UpiID          string `json:"upiId" binding:"required"`
	QRCodeImageURL string `json:"qrCodeImageUrl,omitempty"`
}

// UpdateShopRequest 更新店铺（PATCH 语义，零值字段不下发）
type UpdateShopRequest struct {
	Name           *string `json:"name,omitempty"`
	Address        *string `json:"address,omitempty"`
	UpiID          *string `json:"upiId,omitempty"`
	QRCodeImageURL *string `json:"qrCodeImageUrl,omitempty"`
	IsActive       *bool   `json:"isActive,omitempty"`
}

// ShopListQuery 店铺列表查询
// active: "" 不筛选 / "true" / "false"
type ShopListQuery struct {
	Search string `form:"search"`
	Active string `form:"active" binding:"omitempty,oneof=true false"`
	Page   int    `form:"page"`
}

// ==================== 响应 ====================

// ShopListResponse 店铺列表响应
type ShopListResponse struct {
	Shops      []model.Shop `json:"shops"`
	TotalCount int          `json:"totalCount"`
	Page       int          `json:"page"`
	TotalPages int          `json:"totalPages"`
}

// ShopStats 店铺统计
type ShopStats struct {
	TotalShops        int `json:"totalShops"`
	ActiveShops       int `json:"activeShops"`
	InactiveShops     int `json:"inactiveShops"`
	NewShopsThisMonth int `json:"newShopsThisMonth"`
	ShopGrowthRate    int `json:"shopGrowthRate"`
}

// ShopDashboard 超管看板
type ShopDashboard struct {
	Stats       ShopStats    `json:"shopStats"`
	RecentShops []model.Shop `json:"recentShops"`
}
