package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"pca_admin_v1/internal/client"
	"pca_admin_v1/internal/middleware"
)

// unauthorizedRedirect 强制下线后的跳转目标（带标记，供登录页提示）
const unauthorizedRedirect = middleware.LoginPath + "?unauthorized=true"

// respondError 统一错误出口
// 401：会话已被客户端拦截器清空，这里只负责把跳转目标告知前端
// 4xx：透传远端校验消息，表单内容由前端保留待修正
// 其余：通用提示，不重试
func respondError(ctx *gin.Context, err error) {
	if client.IsUnauthorized(err) {
		ctx.JSON(http.StatusUnauthorized, gin.H{
			"error":    "登录状态已失效，请重新登录",
			"redirect": unauthorizedRedirect,
		})
		return
	}

	if ve, ok := client.AsValidation(err); ok {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": ve.Message})
		return
	}

	ctx.JSON(http.StatusBadGateway, gin.H{"error": "远端服务暂不可用，请稍后重试"})
}
