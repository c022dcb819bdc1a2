package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/roblesfd/helpdesk-backend/internal/application/auth/usecases"
	"github.com/roblesfd/helpdesk-backend/internal/interfaces/dto"
	"github.com/roblesfd/helpdesk-backend/internal/shared/logger"
	"github.com/roblesfd/helpdesk-backend/internal/shared/utils"
)

type AuthHandler struct {
	loginUC          *usecases.LoginUseCase
	confirmAccountUC *usecases.ConfirmAccountUseCase
	logger           logger.Interface
}

func NewAuthHandler(
	loginUC *usecases.LoginUseCase,
	confirmAccountUC *usecases.ConfirmAccountUseCase,
) *AuthHandler {
	return &AuthHandler{
		loginUC:          loginUC,
		confirmAccountUC: confirmAccountUC,
		logger:           logger.NewLogger(),
	}
}

// Login handles POST /auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for login", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.loginUC.Execute(c.Request.Context(), usecases.LoginCommand{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", dto.LoginResponse{
		UserID:      result.UserID,
		Username:    result.Username,
		Role:        result.Role,
		AccessToken: result.AccessToken,
	})
}

// ConfirmAccount handles GET /usuarios/confirmar/:token
func (h *AuthHandler) ConfirmAccount(c *gin.Context) {
	token := c.Param("token")

	result, err := h.confirmAccountUC.Execute(c.Request.Context(), usecases.ConfirmAccountCommand{Token: token})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Account confirmed successfully", result)
}
