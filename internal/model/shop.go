package model

import "time"

// Shop 店铺（租户）
type Shop struct {
	ID             string    `json:"_id"`
	Name           string    `json:"name"`
	Slug           string    `json:"slug"`
	Address        string    `json:"address"`
	OwnerEmail     string    `json:"ownerEmail"`
	OwnerPhone     string    `json:"ownerPhone"`
	UpiID          string    `json:"upiId"`
	QRCodeImageURL string    `json:"qrCodeImageUrl"`
	IsActive       bool      `json:"isActive"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}
