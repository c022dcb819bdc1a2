package dto

import (
	"time"

	"github.com/roblesfd/helpdesk-backend/internal/domain/category"
)

// CreateCategoryRequest represents HTTP request to create a category
type CreateCategoryRequest struct {
	Name string `json:"name" binding:"required,max=100"`
}

type CategoryResponse struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

func NewCategoryResponse(c *category.Category) CategoryResponse {
	return CategoryResponse{
		ID:        c.ID(),
		Name:      c.Name(),
		CreatedAt: c.CreatedAt(),
	}
}

func NewCategoryResponseList(categories []*category.Category) []CategoryResponse {
	out := make([]CategoryResponse, len(categories))
	for i, c := range categories {
		out[i] = NewCategoryResponse(c)
	}
	return out
}
