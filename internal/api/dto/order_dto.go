package dto

import "pca_admin_v1/internal/model"

// ==================== 请求 ====================

// CreateOrderRequest 创建订单
type CreateOrderRequest struct {
	CustomerName string            `json:"customerName" binding:"required"`
	Items        []model.OrderItem `json:"items" binding:"required,min=1,dive"`
	Amount       float64           `json:"amount" binding:"required,gt=0"`
	DueDate      string            `json:"dueDate" binding:"required"`
}

// UpdateOrderRequest 更新订单（PATCH 语义）
type UpdateOrderRequest struct {
	CustomerName *string            `json:"customerName,omitempty"`
	Items        []model.OrderItem  `json:"items,omitempty"`
	Amount       *float64           `json:"amount,omitempty"`
	Status       *model.OrderStatus `json:"status,omitempty"`
	DueDate      *string            `json:"dueDate,omitempty"`
}

// OrderListQuery 订单列表查询
type OrderListQuery struct {
	Search string `form:"search"`
	Status string `form:"status" binding:"omitempty,oneof=PENDING IN_PROGRESS COMPLETED CANCELLED"`
	Page   int    `form:"page"`
}

// ==================== 响应 ====================

// OrderListResponse 订单列表响应
type OrderListResponse struct {
	Orders     []model.Order `json:"orders"`
	TotalCount int           `json:"totalCount"`
	Page       int           `json:"page"`
	TotalPages int           `json:"totalPages"`
}

// OrderStats 订单统计
// 不变式：TotalOrders 恒等于各状态计数之和；TotalRevenue 只累计 COMPLETED
type OrderStats struct {
	TotalOrders      int     `json:"totalOrders"`
	PendingOrders    int     `json:"pendingOrders"`
	InProgressOrders int     `json:"inProgressOrders"`
	CompletedOrders  int     `json:"completedOrders"`
	CancelledOrders  int     `json:"cancelledOrders"`
	TotalRevenue     float64 `json:"totalRevenue"`
}

// OrderDashboard 店铺看板
type OrderDashboard struct {
	Stats        OrderStats    `json:"stats"`
	RecentOrders []model.Order `json:"recentOrders"`
}
