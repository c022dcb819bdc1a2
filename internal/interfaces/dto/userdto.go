package dto

import (
	"time"

	userUC "github.com/roblesfd/helpdesk-backend/internal/application/user/usecases"
	"github.com/roblesfd/helpdesk-backend/internal/domain/user"
)

// CreateUserRequest represents HTTP request to create a user
type CreateUserRequest struct {
	Username    string `json:"username" binding:"required,min=3,max=50"`
	Password    string `json:"password" binding:"required,min=8,max=128"`
	Email       string `json:"email" binding:"required,email"`
	Name        string `json:"name" binding:"omitempty,max=100"`
	Lastname    string `json:"lastname" binding:"omitempty,max=100"`
	PhoneNumber string `json:"phoneNumber" binding:"omitempty,max=30"`
	Active      bool   `json:"active"`
	Role        string `json:"role" binding:"omitempty,oneof=usuario agente admin"`
}

func (r *CreateUserRequest) ToCommand(isClient bool) userUC.CreateUserCommand {
	role := r.Role
	if role == "" {
		role = user.RoleUsuario.String()
	}
	return userUC.CreateUserCommand{
		Username:    r.Username,
		Password:    r.Password,
		Email:       r.Email,
		Name:        r.Name,
		Lastname:    r.Lastname,
		PhoneNumber: r.PhoneNumber,
		Active:      r.Active,
		Role:        role,
		IsClient:    isClient,
	}
}

// UpdateUserRequest represents HTTP request to update a user. IDUser
// carries the target id for clients that send "undefined" in the path.
type UpdateUserRequest struct {
	IDUser      uint   `json:"idUser"`
	Username    string `json:"username" binding:"required,min=3,max=50"`
	Password    string `json:"password" binding:"omitempty,min=8,max=128"`
	Email       string `json:"email" binding:"required,email"`
	Name        string `json:"name" binding:"omitempty,max=100"`
	Lastname    string `json:"lastname" binding:"omitempty,max=100"`
	PhoneNumber string `json:"phoneNumber" binding:"omitempty,max=30"`
	Active      bool   `json:"active"`
	Role        string `json:"role" binding:"required,oneof=usuario agente admin"`
}

func (r *UpdateUserRequest) ToCommand(userID uint) userUC.UpdateUserCommand {
	return userUC.UpdateUserCommand{
		UserID:      userID,
		Username:    r.Username,
		Password:    r.Password,
		Email:       r.Email,
		Name:        r.Name,
		Lastname:    r.Lastname,
		PhoneNumber: r.PhoneNumber,
		Active:      r.Active,
		Role:        r.Role,
	}
}

// UserResponse is the API shape of a user. The password hash never leaves
// the persistence boundary.
type UserResponse struct {
	ID           uint       `json:"id"`
	Username     string     `json:"username"`
	Email        string     `json:"email"`
	Name         string     `json:"name,omitempty"`
	Lastname     string     `json:"lastname,omitempty"`
	PhoneNumber  string     `json:"phoneNumber,omitempty"`
	Active       bool       `json:"active"`
	Role         string     `json:"role"`
	ProfileImage string     `json:"profileImage,omitempty"`
	LastLogin    *time.Time `json:"lastLogin,omitempty"`
	CreatedAt    time.Time  `json:"createdAt"`
}

func NewUserResponse(u *user.User) UserResponse {
	return UserResponse{
		ID:           u.ID(),
		Username:     u.Username(),
		Email:        u.Email(),
		Name:         u.Name(),
		Lastname:     u.Lastname(),
		PhoneNumber:  u.PhoneNumber(),
		Active:       u.Active(),
		Role:         u.Role().String(),
		ProfileImage: u.ProfileImage(),
		LastLogin:    u.LastLogin(),
		CreatedAt:    u.CreatedAt(),
	}
}

func NewUserResponseList(users []*user.User) []UserResponse {
	out := make([]UserResponse, len(users))
	for i, u := range users {
		out[i] = NewUserResponse(u)
	}
	return out
}
