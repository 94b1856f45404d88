package utils

import "strings"

// Paginate 对已过滤的集合做分页切片
// 返回当前页数据、钳制后的页码和总页数
// 页码越界时必须钳回最后一个有效页（集合为空则钳到第 1 页），
// 否则筛选收窄后会停留在一个看似无数据的空页上
func Paginate[T any](items []T, page, pageSize int) ([]T, int, int) {
	if pageSize <= 0 {
		pageSize = 10
	}

	total := len(items)
	totalPages := (total + pageSize - 1) / pageSize

	// 钳制页码
	if page < 1 {
		page = 1
	}
	if totalPages > 0 && page > totalPages {
		page = totalPages
	}
	if total == 0 {
		return []T{}, 1, totalPages
	}

	start := (page - 1) * pageSize
	end := start + pageSize
	if end > total {
		end = total
	}

	return items[start:end], page, totalPages
}

// MatchFold 大小写不敏感的子串匹配（无模糊匹配）
func MatchFold(s, substr string) bool {
	if substr == "" {
		return true
	}
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
