package model

import "time"

// ==================== 订单状态常量 ====================

// OrderStatus 订单状态
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "PENDING"     // 待处理
	OrderStatusInProgress OrderStatus = "IN_PROGRESS" // 制作中
	OrderStatusCompleted  OrderStatus = "COMPLETED"   // 已完成
	OrderStatusCancelled  OrderStatus = "CANCELLED"   // 已取消
)

// AllOrderStatuses 全部合法状态
var AllOrderStatuses = []OrderStatus{
	OrderStatusPending,
	OrderStatusInProgress,
	OrderStatusCompleted,
	OrderStatusCancelled,
}

// Valid 校验状态取值
func (s OrderStatus) Valid() bool {
	for _, st := range AllOrderStatuses {
		if s == st {
			return true
		}
	}
	return false
}

// ==================== 订单 ====================

// OrderItem 订单条目
type OrderItem struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

// Order 订单（远端服务为数据属主，本地只持有非权威副本）
type Order struct {
	ID           string      `json:"_id"`
	ShopID       string      `json:"shopId"`
	CustomerName string      `json:"customerName"`
	Items        []OrderItem `json:"items"`
	Amount       float64     `json:"amount"`
	Status       OrderStatus `json:"status"`
	DueDate      string      `json:"dueDate"`
	CreatedAt    time.Time   `json:"createdAt"`
	UpdatedAt    time.Time   `json:"updatedAt"`
}
