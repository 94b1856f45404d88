package client

import (
	"errors"
	"fmt"
)

// ==================== 错误分类 ====================

// ErrUnauthorized 远端判定未授权（401）
// 全局统一处理：清会话 + 延迟跳转，绝不作为普通表单错误呈现
var ErrUnauthorized = errors.New("未授权，请重新登录")

// ValidationError 业务校验失败（4xx，携带远端消息）
// 以提示形式就地呈现，表单内容保留待修正
type ValidationError struct {
	Status  int
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("请求校验失败 [%d]: %s", e.Status, e.Message)
}

// RemoteError 网络或远端服务故障（5xx 或无响应）
// 呈现通用错误提示，操作放弃，不做重试
type RemoteError struct {
	Status  int
	Message string
}

func (e *RemoteError) Error() string {
	if e.Status == 0 {
		return fmt.Sprintf("远端服务不可达: %s", e.Message)
	}
	return fmt.Sprintf("远端服务错误 [%d]: %s", e.Status, e.Message)
}

// ==================== 判定辅助 ====================

// IsUnauthorized 是否为未授权错误
func IsUnauthorized(err error) bool {
	return errors.Is(err, ErrUnauthorized)
}

// AsValidation 提取校验错误
func AsValidation(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
