package mappers

import (
	"github.com/roblesfd/helpdesk-backend/internal/domain/category"
	"github.com/roblesfd/helpdesk-backend/internal/infrastructure/persistence/models"
	"github.com/roblesfd/helpdesk-backend/internal/shared/collation"
)

// CategoryMapper handles the conversion between Category domain entities and persistence models.
type CategoryMapper interface {
	ToModel(c *category.Category) *models.CategoryModel
	ToDomain(model *models.CategoryModel) (*category.Category, error)
}

type CategoryMapperImpl struct{}

func NewCategoryMapper() CategoryMapper {
	return &CategoryMapperImpl{}
}

func (m *CategoryMapperImpl) ToModel(c *category.Category) *models.CategoryModel {
	return &models.CategoryModel{
		ID:        c.ID(),
		Name:      c.Name(),
		NameKey:   collation.Fold(c.Name()),
		CreatedAt: c.CreatedAt().UnixMilli(),
	}
}

func (m *CategoryMapperImpl) ToDomain(model *models.CategoryModel) (*category.Category, error) {
	return category.ReconstructCategory(
		model.ID,
		model.Name,
		millisToTime(model.CreatedAt),
	)
}
