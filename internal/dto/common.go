package dto

import "github.com/witoldp/petcare-backend/internal/repository"

// ErrorResponse is the error envelope every failed request returns.
type ErrorResponse struct {
	Status    int    `json:"status"`
	Error     string `json:"error"`
	Message   string `json:"message"`
	Path      string `json:"path"`
	Timestamp string `json:"timestamp"`
}

// Page is a window of a list endpoint.
type Page[T any] struct {
	Items []T   `json:"items"`
	Page  int   `json:"page"`
	Size  int   `json:"size"`
	Total int64 `json:"total"`
}

func NewPage[T any](items []T, page repository.Page, total int64) Page[T] {
	page = page.Normalized()
	if items == nil {
		items = []T{}
	}
	return Page[T]{Items: items, Page: page.Number, Size: page.Size, Total: total}
}

type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	DB        string `json:"db"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
