package repository

import (
	"strings"

	"gorm.io/gorm"
)

const (
	DefaultLimit = 10
	MaxLimit     = 100
)

// Page is one slice of a paginated list.
type Page[T any] struct {
	Items      []T   `json:"items"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
}

func NewPage[T any](items []T, page, limit int, total int64) Page[T] {
	if items == nil {
		items = []T{}
	}
	pages := int((total + int64(limit) - 1) / int64(limit))
	return Page[T]{Items: items, Page: page, Limit: limit, Total: total, TotalPages: pages}
}

// NormalizePage clamps page to >= 1 and limit to 1..MaxLimit.
func NormalizePage(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit <= 0 || limit > MaxLimit {
		limit = DefaultLimit
	}
	return page, limit
}

func paginate(page, limit int) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Offset((page - 1) * limit).Limit(limit)
	}
}

func likePattern(q string) string {
	return "%" + strings.ToLower(strings.TrimSpace(q)) + "%"
}
