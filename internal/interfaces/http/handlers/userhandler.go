package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/roblesfd/helpdesk-backend/internal/application/user/usecases"
	"github.com/roblesfd/helpdesk-backend/internal/interfaces/dto"
	"github.com/roblesfd/helpdesk-backend/internal/shared/logger"
	"github.com/roblesfd/helpdesk-backend/internal/shared/utils"
)

type UserHandler struct {
	createUserUC *usecases.CreateUserUseCase
	updateUserUC *usecases.UpdateUserUseCase
	deleteUserUC *usecases.DeleteUserUseCase
	getUserUC    *usecases.GetUserUseCase
	listUsersUC  *usecases.ListUsersUseCase
	logger       logger.Interface
}

func NewUserHandler(
	createUserUC *usecases.CreateUserUseCase,
	updateUserUC *usecases.UpdateUserUseCase,
	deleteUserUC *usecases.DeleteUserUseCase,
	getUserUC *usecases.GetUserUseCase,
	listUsersUC *usecases.ListUsersUseCase,
) *UserHandler {
	return &UserHandler{
		createUserUC: createUserUC,
		updateUserUC: updateUserUC,
		deleteUserUC: deleteUserUC,
		getUserUC:    getUserUC,
		listUsersUC:  listUsersUC,
		logger:       logger.NewLogger(),
	}
}

// CreateUser handles POST /usuarios
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create user", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	// Unauthenticated signups are client accounts: they stay inactive
	// until the mailed confirmation link is visited.
	isClient := !isStaffRequest(c)

	result, err := h.createUserUC.Execute(c.Request.Context(), req.ToCommand(isClient))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "User created successfully")
}

// GetUser handles GET /usuarios/:id
func (h *UserHandler) GetUser(c *gin.Context) {
	userID, err := utils.ParseIDParam(c, "id", "user")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	u, err := h.getUserUC.Execute(c.Request.Context(), usecases.GetUserQuery{UserID: userID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", dto.NewUserResponse(u))
}

// ListUsers handles GET /usuarios
func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.listUsersUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", dto.NewUserResponseList(users))
}

// UpdateUser handles PATCH /usuarios/:id
func (h *UserHandler) UpdateUser(c *gin.Context) {
	var req dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update user", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	userID, err := utils.ResolveIDParam(c, "id", "user", req.IDUser)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.updateUserUC.Execute(c.Request.Context(), req.ToCommand(userID))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "User updated successfully", result)
}

// DeleteUser handles DELETE /usuarios/:id
func (h *UserHandler) DeleteUser(c *gin.Context) {
	userID, err := utils.ParseIDParam(c, "id", "user")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.deleteUserUC.Execute(c.Request.Context(), usecases.DeleteUserCommand{UserID: userID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "User deleted successfully", result)
}

// isStaffRequest reports whether the request carries an authenticated
// agent or admin session.
func isStaffRequest(c *gin.Context) bool {
	role, ok := c.Get("role")
	if !ok {
		return false
	}
	r, _ := role.(string)
	return r == "agente" || r == "admin"
}
