package mappers

import (
	"github.com/roblesfd/helpdesk-backend/internal/domain/user"
	"github.com/roblesfd/helpdesk-backend/internal/infrastructure/persistence/models"
	"github.com/roblesfd/helpdesk-backend/internal/shared/collation"
)

// UserMapper handles the conversion between User domain entities and persistence models.
type UserMapper interface {
	// ToModel converts a user domain entity to a persistence model.
	ToModel(u *user.User) *models.UserModel

	// ToDomain converts a user persistence model to a domain entity.
	ToDomain(model *models.UserModel) (*user.User, error)
}

type UserMapperImpl struct{}

func NewUserMapper() UserMapper {
	return &UserMapperImpl{}
}

// ToModel converts a user domain entity to a persistence model. The folded
// username key is derived here so every write keeps it in sync with the
// displayed username.
func (m *UserMapperImpl) ToModel(u *user.User) *models.UserModel {
	return &models.UserModel{
		ID:                u.ID(),
		Username:          u.Username(),
		UsernameKey:       collation.Fold(u.Username()),
		PasswordHash:      u.PasswordHash(),
		Email:             u.Email(),
		Name:              u.Name(),
		Lastname:          u.Lastname(),
		PhoneNumber:       u.PhoneNumber(),
		Active:            u.Active(),
		Role:              u.Role().String(),
		ProfileImage:      u.ProfileImage(),
		LastLogin:         timeToMillisPtr(u.LastLogin()),
		ConfirmationToken: u.ConfirmationToken(),
		CreatedAt:         u.CreatedAt().UnixMilli(),
	}
}

// ToDomain converts a user persistence model to a domain entity.
func (m *UserMapperImpl) ToDomain(model *models.UserModel) (*user.User, error) {
	return user.ReconstructUser(
		model.ID,
		model.Username,
		model.PasswordHash,
		model.Email,
		model.Name,
		model.Lastname,
		model.PhoneNumber,
		model.Active,
		user.Role(model.Role),
		model.ProfileImage,
		millisToTimePtr(model.LastLogin),
		model.ConfirmationToken,
		millisToTime(model.CreatedAt),
	)
}
