package dto

import (
	"time"

	articleUC "github.com/roblesfd/helpdesk-backend/internal/application/article/usecases"
	"github.com/roblesfd/helpdesk-backend/internal/domain/article"
)

// CreateArticleRequest represents HTTP request to create a knowledge-base
// article. The author is taken from the authenticated session.
type CreateArticleRequest struct {
	Title      string `json:"title" binding:"required,max=200"`
	Content    string `json:"content" binding:"required"`
	CategoryID uint   `json:"categoryId" binding:"required"`
	TagIDs     []uint `json:"tagIds" binding:"required,min=1"`
}

func (r *CreateArticleRequest) ToCommand(authorID uint) articleUC.CreateArticleCommand {
	return articleUC.CreateArticleCommand{
		AuthorID:   authorID,
		Title:      r.Title,
		Content:    r.Content,
		CategoryID: r.CategoryID,
		TagIDs:     r.TagIDs,
	}
}

// UpdateArticleRequest represents HTTP request to update an article. ID
// carries the target id for clients that send "undefined" in the path.
// A null tagIds keeps the stored tag set.
type UpdateArticleRequest struct {
	ID         uint   `json:"id"`
	Title      string `json:"title" binding:"required,max=200"`
	Content    string `json:"content" binding:"required"`
	CategoryID uint   `json:"categoryId" binding:"required"`
	AuthorID   uint   `json:"authorId" binding:"required"`
	TagIDs     []uint `json:"tagIds"`
}

func (r *UpdateArticleRequest) ToCommand(articleID uint) articleUC.UpdateArticleCommand {
	return articleUC.UpdateArticleCommand{
		ArticleID:  articleID,
		Title:      r.Title,
		Content:    r.Content,
		CategoryID: r.CategoryID,
		AuthorID:   r.AuthorID,
		TagIDs:     r.TagIDs,
	}
}

type ArticleResponse struct {
	ID           uint      `json:"id"`
	AuthorID     uint      `json:"authorId"`
	Title        string    `json:"title"`
	Content      string    `json:"content"`
	RenderedHTML string    `json:"renderedHtml,omitempty"`
	CategoryID   *uint     `json:"categoryId,omitempty"`
	TagIDs       []uint    `json:"tagIds"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func NewArticleResponse(a *article.Article) ArticleResponse {
	return ArticleResponse{
		ID:         a.ID(),
		AuthorID:   a.AuthorID(),
		Title:      a.Title(),
		Content:    a.Content(),
		CategoryID: a.CategoryID(),
		TagIDs:     a.TagIDs(),
		CreatedAt:  a.CreatedAt(),
		UpdatedAt:  a.UpdatedAt(),
	}
}

func NewArticleResponseList(articles []*article.Article) []ArticleResponse {
	out := make([]ArticleResponse, len(articles))
	for i, a := range articles {
		out[i] = NewArticleResponse(a)
	}
	return out
}
