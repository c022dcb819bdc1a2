package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/roblesfd/helpdesk-backend/internal/application/tag/usecases"
	"github.com/roblesfd/helpdesk-backend/internal/interfaces/dto"
	"github.com/roblesfd/helpdesk-backend/internal/shared/logger"
	"github.com/roblesfd/helpdesk-backend/internal/shared/utils"
)

type TagHandler struct {
	createTagUC *usecases.CreateTagUseCase
	listTagsUC  *usecases.ListTagsUseCase
	deleteTagUC *usecases.DeleteTagUseCase
	logger      logger.Interface
}

func NewTagHandler(
	createTagUC *usecases.CreateTagUseCase,
	listTagsUC *usecases.ListTagsUseCase,
	deleteTagUC *usecases.DeleteTagUseCase,
) *TagHandler {
	return &TagHandler{
		createTagUC: createTagUC,
		listTagsUC:  listTagsUC,
		deleteTagUC: deleteTagUC,
		logger:      logger.NewLogger(),
	}
}

// CreateTag handles POST /tags. Creating an existing name succeeds and
// returns the stored tag, so the endpoint answers 200 rather than 201 in
// that case.
func (h *TagHandler) CreateTag(c *gin.Context) {
	var req dto.CreateTagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create tag", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.createTagUC.Execute(c.Request.Context(), usecases.CreateTagCommand{Name: req.Name})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if !result.Created {
		utils.SuccessResponse(c, http.StatusOK, "Tag already exists", result)
		return
	}

	utils.CreatedResponse(c, result, "Tag created successfully")
}

// ListTags handles GET /tags
func (h *TagHandler) ListTags(c *gin.Context) {
	tags, err := h.listTagsUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", dto.NewTagResponseList(tags))
}

// DeleteTag handles DELETE /tags/:id
func (h *TagHandler) DeleteTag(c *gin.Context) {
	tagID, err := utils.ParseIDParam(c, "id", "tag")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.deleteTagUC.Execute(c.Request.Context(), usecases.DeleteTagCommand{TagID: tagID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Tag deleted successfully", result)
}
