package dto

import "pca_admin_v1/internal/model"

// LoginRequest 登录请求
type LoginRequest struct {
	Phone    string `json:"phone" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse 远端登录响应
// access_token 为不透明字符串，本地不做任何解析
type LoginResponse struct {
	AccessToken string      `json:"access_token"`
	User        *model.User `json:"user"`
}
