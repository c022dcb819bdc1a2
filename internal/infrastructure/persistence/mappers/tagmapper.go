package mappers

import (
	"github.com/roblesfd/helpdesk-backend/internal/domain/tag"
	"github.com/roblesfd/helpdesk-backend/internal/infrastructure/persistence/models"
	"github.com/roblesfd/helpdesk-backend/internal/shared/collation"
)

// TagMapper handles the conversion between Tag domain entities and persistence models.
type TagMapper interface {
	ToModel(t *tag.Tag) *models.TagModel
	ToDomain(model *models.TagModel) (*tag.Tag, error)
}

type TagMapperImpl struct{}

func NewTagMapper() TagMapper {
	return &TagMapperImpl{}
}

func (m *TagMapperImpl) ToModel(t *tag.Tag) *models.TagModel {
	return &models.TagModel{
		ID:        t.ID(),
		Name:      t.Name(),
		NameKey:   collation.Fold(t.Name()),
		CreatedAt: t.CreatedAt().UnixMilli(),
	}
}

func (m *TagMapperImpl) ToDomain(model *models.TagModel) (*tag.Tag, error) {
	return tag.ReconstructTag(
		model.ID,
		model.Name,
		millisToTime(model.CreatedAt),
	)
}
