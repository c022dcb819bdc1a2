package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/roblesfd/helpdesk-backend/internal/application/article/usecases"
	"github.com/roblesfd/helpdesk-backend/internal/interfaces/dto"
	"github.com/roblesfd/helpdesk-backend/internal/shared/errors"
	"github.com/roblesfd/helpdesk-backend/internal/shared/logger"
	"github.com/roblesfd/helpdesk-backend/internal/shared/utils"
)

type ArticleHandler struct {
	createArticleUC  *usecases.CreateArticleUseCase
	updateArticleUC  *usecases.UpdateArticleUseCase
	getArticleUC     *usecases.GetArticleUseCase
	listArticlesUC   *usecases.ListArticlesUseCase
	searchArticlesUC *usecases.SearchArticlesUseCase
	deleteArticleUC  *usecases.DeleteArticleUseCase
	logger           logger.Interface
}

func NewArticleHandler(
	createArticleUC *usecases.CreateArticleUseCase,
	updateArticleUC *usecases.UpdateArticleUseCase,
	getArticleUC *usecases.GetArticleUseCase,
	listArticlesUC *usecases.ListArticlesUseCase,
	searchArticlesUC *usecases.SearchArticlesUseCase,
	deleteArticleUC *usecases.DeleteArticleUseCase,
) *ArticleHandler {
	return &ArticleHandler{
		createArticleUC:  createArticleUC,
		updateArticleUC:  updateArticleUC,
		getArticleUC:     getArticleUC,
		listArticlesUC:   listArticlesUC,
		searchArticlesUC: searchArticlesUC,
		deleteArticleUC:  deleteArticleUC,
		logger:           logger.NewLogger(),
	}
}

// CreateArticle handles POST /articulos
func (h *ArticleHandler) CreateArticle(c *gin.Context) {
	var req dto.CreateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create article", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	userID, ok := c.Get("user_id")
	if !ok {
		utils.ErrorResponseWithError(c, errors.NewUnauthorizedError("authentication required"))
		return
	}

	result, err := h.createArticleUC.Execute(c.Request.Context(), req.ToCommand(userID.(uint)))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Article created successfully")
}

// GetArticle handles GET /articulos/:id
func (h *ArticleHandler) GetArticle(c *gin.Context) {
	articleID, err := utils.ParseIDParam(c, "id", "article")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getArticleUC.Execute(c.Request.Context(), usecases.GetArticleQuery{ArticleID: articleID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	resp := dto.NewArticleResponse(result.Article)
	resp.RenderedHTML = result.RenderedHTML

	utils.SuccessResponse(c, http.StatusOK, "", resp)
}

// ListArticles handles GET /articulos
func (h *ArticleHandler) ListArticles(c *gin.Context) {
	articles, err := h.listArticlesUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", dto.NewArticleResponseList(articles))
}

// SearchArticles handles GET /articulos/buscar?q=...&tags=1,2
func (h *ArticleHandler) SearchArticles(c *gin.Context) {
	query := usecases.SearchArticlesQuery{
		Query: c.Query("q"),
	}

	if rawTags := c.Query("tags"); rawTags != "" {
		for _, part := range strings.Split(rawTags, ",") {
			id, err := strconv.ParseUint(strings.TrimSpace(part), 10, 32)
			if err != nil || id == 0 {
				utils.ErrorResponseWithError(c, errors.NewValidationError("invalid tags parameter"))
				return
			}
			query.TagIDs = append(query.TagIDs, uint(id))
		}
	}

	articles, err := h.searchArticlesUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", dto.NewArticleResponseList(articles))
}

// UpdateArticle handles PATCH /articulos/:id
func (h *ArticleHandler) UpdateArticle(c *gin.Context) {
	var req dto.UpdateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update article", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	articleID, err := utils.ResolveIDParam(c, "id", "article", req.ID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.updateArticleUC.Execute(c.Request.Context(), req.ToCommand(articleID))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Article updated successfully", result)
}

// DeleteArticle handles DELETE /articulos/:id
func (h *ArticleHandler) DeleteArticle(c *gin.Context) {
	articleID, err := utils.ParseIDParam(c, "id", "article")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.deleteArticleUC.Execute(c.Request.Context(), usecases.DeleteArticleCommand{ArticleID: articleID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Article deleted successfully", result)
}
