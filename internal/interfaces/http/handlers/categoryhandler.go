package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/roblesfd/helpdesk-backend/internal/application/category/usecases"
	"github.com/roblesfd/helpdesk-backend/internal/interfaces/dto"
	"github.com/roblesfd/helpdesk-backend/internal/shared/logger"
	"github.com/roblesfd/helpdesk-backend/internal/shared/utils"
)

type CategoryHandler struct {
	createCategoryUC *usecases.CreateCategoryUseCase
	listCategoriesUC *usecases.ListCategoriesUseCase
	deleteCategoryUC *usecases.DeleteCategoryUseCase
	logger           logger.Interface
}

func NewCategoryHandler(
	createCategoryUC *usecases.CreateCategoryUseCase,
	listCategoriesUC *usecases.ListCategoriesUseCase,
	deleteCategoryUC *usecases.DeleteCategoryUseCase,
) *CategoryHandler {
	return &CategoryHandler{
		createCategoryUC: createCategoryUC,
		listCategoriesUC: listCategoriesUC,
		deleteCategoryUC: deleteCategoryUC,
		logger:           logger.NewLogger(),
	}
}

// CreateCategory handles POST /categorias
func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	var req dto.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create category", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.createCategoryUC.Execute(c.Request.Context(), usecases.CreateCategoryCommand{Name: req.Name})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Category created successfully")
}

// ListCategories handles GET /categorias
func (h *CategoryHandler) ListCategories(c *gin.Context) {
	categories, err := h.listCategoriesUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", dto.NewCategoryResponseList(categories))
}

// DeleteCategory handles DELETE /categorias/:id
func (h *CategoryHandler) DeleteCategory(c *gin.Context) {
	categoryID, err := utils.ParseIDParam(c, "id", "category")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.deleteCategoryUC.Execute(c.Request.Context(), usecases.DeleteCategoryCommand{CategoryID: categoryID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Category deleted successfully", result)
}
