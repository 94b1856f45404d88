package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"pca_admin_v1/internal/api/dto"
	"pca_admin_v1/internal/model"
)

// ==================== 依赖接口 ====================

// SessionSource 会话读写接口
// 客户端发请求前读当前 token，收到 401 时触发清空
// 只依赖这两个行为，不反向引入任何路由/页面逻辑，避免循环依赖
type SessionSource interface {
	Token() string
	ClearAuth() error
}

// ==================== APIClient ====================

// APIClient 远端订单服务的统一出口
// 出站：发请求时实时读取会话 token 挂到 Authorization 头
// 入站：任何 401 先同步清会话，再异步通知强制下线钩子，
// 保证调用方先收到本次调用的错误，跳转信号不会抢跑
// 其余非 2xx 原样分类透传；不重试、不去重、不缓存响应
type APIClient struct {
	http    *resty.Client
	session SessionSource
	logger  *zap.Logger

	onForcedLogout func()
}

// New 创建 API 客户端
func New(baseURL string, session SessionSource, logger *zap.Logger) *APIClient {
	c := &APIClient{
		session: session,
		logger:  logger,
	}

	c.http = resty.New().
		SetBaseURL(baseURL).
		SetTimeout(20 * time.Second).
		SetHeader("User-Agent", "PCA-Admin-Go/1.0")

	// 出站拦截：每次请求实时取 token，登出后不会带着陈旧 token 出门
	c.http.OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
		if token := c.session.Token(); token != "" {
			req.SetHeader("Authorization", "Bearer "+token)
		}
		return nil
	})

	// 入站拦截：统一处理 401 与错误分类
	c.http.OnAfterResponse(func(_ *resty.Client, resp *resty.Response) error {
		return c.interceptResponse(resp)
	})

	return c
}

// SetForcedLogoutHook 注册强制下线钩子（401 后异步触发一次）
func (c *APIClient) SetForcedLogoutHook(hook func()) {
	c.onForcedLogout = hook
}

// interceptResponse 入站响应拦截
func (c *APIClient) interceptResponse(resp *resty.Response) error {
	code := resp.StatusCode()
	if code < 400 {
		return nil
	}

	if code == 401 {
		c.logger.Warn("检测到未授权响应，执行强制下线",
			zap.String("path", resp.Request.RawRequest.URL.Path))

		// 先同步清会话：本次调用返回之后的任何读取都已看不到旧凭证
		if err := c.session.ClearAuth(); err != nil {
			c.logger.Error("强制下线时清除会话失败", zap.Error(err))
		}

		// 再异步通知跳转：让本次调用的错误先送达调用方
		if hook := c.onForcedLogout; hook != nil {
			go hook()
		}
		return ErrUnauthorized
	}

	msg := parseErrorMessage(resp.Body())
	if code >= 500 {
		return &RemoteError{Status: code, Message: msg}
	}
	return &ValidationError{Status: code, Message: msg}
}

// parseErrorMessage 提取远端错误消息（兼容 message / error 两种字段）
func parseErrorMessage(body []byte) string {
	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		if payload.Message != "" {
			return payload.Message
		}
		if payload.Error != "" {
			return payload.Error
		}
	}
	if len(body) > 0 {
		return string(body)
	}
	return "未知错误"
}

// wrapTransport 统一封装传输层错误（无响应场景）
func wrapTransport(err error) error {
	if err == nil {
		return nil
	}

	var (
		ve *ValidationError
		re *RemoteError
	)
	if IsUnauthorized(err) || errors.As(err, &ve) || errors.As(err, &re) {
		return err
	}
	return &RemoteError{Status: 0, Message: err.Error()}
}

// ==================== 认证 ====================

// Login 登录
// POST /auth/login
func (c *APIClient) Login(ctx context.Context, phone, password string) (*dto.LoginResponse, error) {
	var out dto.LoginResponse
	_, err := c.http.R().
		SetContext(ctx).
		SetBody(dto.LoginRequest{Phone: phone, Password: password}).
		SetResult(&out).
		Post("/auth/login")
	if err != nil {
		return nil, wrapTransport(err)
	}
	if out.User == nil {
		return nil, &RemoteError{Status: 0, Message: "登录响应缺少用户档案"}
	}
	return &out, nil
}

// ==================== 店铺 CRUD ====================

// ListShops 全量拉取店铺列表
// GET /shops
func (c *APIClient) ListShops(ctx context.Context) ([]model.Shop, error) {
	var out []model.Shop
	_, err := c.http.R().
		SetContext(ctx).
		SetResult(&out).
		Get("/shops")
	if err != nil {
		return nil, wrapTransport(err)
	}
	return out, nil
}

// GetShop 店铺详情
// GET /shops/:id
func (c *APIClient) GetShop(ctx context.Context, id string) (*model.Shop, error) {
	var out model.Shop
	_, err := c.http.R().
		SetContext(ctx).
		SetResult(&out).
		Get("/shops/" + id)
	if err != nil {
		return nil, wrapTransport(err)
	}
	return &out, nil
}

// CreateShop 创建店铺
// POST /shops
func (c *APIClient) CreateShop(ctx context.Context, req *dto.CreateShopRequest) (*model.Shop, error) {
	var out model.Shop
	_, err := c.http.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&out).
		Post("/shops")
	if err != nil {
		return nil, wrapTransport(err)
	}
	return &out, nil
}

// UpdateShop 更新店铺
// PATCH /shops/:id
func (c *APIClient) UpdateShop(ctx context.Context, id string, req *dto.UpdateShopRequest) (*model.Shop, error) {
	var out model.Shop
	_, err := c.http.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&out).
		Patch("/shops/" + id)
	if err != nil {
		return nil, wrapTransport(err)
	}
	return &out, nil
}

// DeleteShop 删除店铺
// DELETE /shops/:id
func (c *APIClient) DeleteShop(ctx context.Context, id string) error {
	_, err := c.http.R().
		SetContext(ctx).
		Delete("/shops/" + id)
	return wrapTransport(err)
}

// ==================== 订单 CRUD（租户内） ====================

// ListOrders 全量拉取店铺订单
// GET /orders/shops/:shopId/orders
func (c *APIClient) ListOrders(ctx context.Context, shopID string) ([]model.Order, error) {
	var out []model.Order
	_, err := c.http.R().
		SetContext(ctx).
		SetResult(&out).
		Get(fmt.Sprintf("/orders/shops/%s/orders", shopID))
	if err != nil {
		return nil, wrapTransport(err)
	}
	return out, nil
}

// CreateOrder 创建订单
// POST /orders/shops/:shopId/orders
func (c *APIClient) CreateOrder(ctx context.Context, shopID string, req *dto.CreateOrderRequest) (*model.Order, error) {
	var out model.Order
	_, err := c.http.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&out).
		Post(fmt.Sprintf("/orders/shops/%s/orders", shopID))
	if err != nil {
		return nil, wrapTransport(err)
	}
	return &out, nil
}

// UpdateOrder 更新订单
// PATCH /orders/shops/:shopId/orders/:id
func (c *APIClient) UpdateOrder(ctx context.Context, shopID, orderID string, req *dto.UpdateOrderRequest) (*model.Order, error) {
	var out model.Order
	_, err := c.http.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&out).
		Patch(fmt.Sprintf("/orders/shops/%s/orders/%s", shopID, orderID))
	if err != nil {
		return nil, wrapTransport(err)
	}
	return &out, nil
}

// DeleteOrder 删除订单
// DELETE /orders/shops/:shopId/orders/:id
func (c *APIClient) DeleteOrder(ctx context.Context, shopID, orderID string) error {
	_, err := c.http.R().
		SetContext(ctx).
		Delete(fmt.Sprintf("/orders/shops/%s/orders/%s", shopID, orderID))
	return wrapTransport(err)
}

// ==================== 公开接口（免认证） ====================

// GetPublicShop 公开店铺信息（含收款信息）
// GET /public/:shopId
func (c *APIClient) GetPublicShop(ctx context.Context, shopID string) (*model.Shop, error) {
	var out model.Shop
	_, err := c.http.R().
		SetContext(ctx).
		SetResult(&out).
		Get("/public/" + shopID)
	if err != nil {
		return nil, wrapTransport(err)
	}
	return &out, nil
}

// ListPublicOrders 公开订单列表（搜索词透传远端）
// GET /public/:shopId/orders
func (c *APIClient) ListPublicOrders(ctx context.Context, shopID, search string) ([]model.Order, error) {
	req := c.http.R().
		SetContext(ctx)
	if search != "" {
		req.SetQueryParam("search", search)
	}

	var out []model.Order
	_, err := req.
		SetResult(&out).
		Get(fmt.Sprintf("/public/%s/orders", shopID))
	if err != nil {
		return nil, wrapTransport(err)
	}
	return out, nil
}
