package tag

import (
	"fmt"
	"strings"
	"time"
)

// Tag labels knowledge-base articles. Names are unique under locale
// folding; creating a duplicate yields the existing tag instead of an
// error.
type Tag struct {
	id        uint
	name      string
	createdAt time.Time
}

func NewTag(name string) (*Tag, error) {
	if len(strings.TrimSpace(name)) == 0 {
		return nil, fmt.Errorf("name is required")
	}

	return &Tag{
		name:      strings.TrimSpace(name),
		createdAt: time.Now(),
	}, nil
}

func ReconstructTag(id uint, name string, createdAt time.Time) (*Tag, error) {
	if id == 0 {
		return nil, fmt.Errorf("tag ID cannot be zero")
	}
	if len(name) == 0 {
		return nil, fmt.Errorf("name is required")
	}

	return &Tag{
		id:        id,
		name:      name,
		createdAt: createdAt,
	}, nil
}

func (t *Tag) ID() uint {
	return t.id
}

func (t *Tag) Name() string {
	return t.name
}

func (t *Tag) CreatedAt() time.Time {
	return t.createdAt
}

func (t *Tag) SetID(id uint) error {
	if t.id != 0 {
		return fmt.Errorf("tag ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("tag ID cannot be zero")
	}
	t.id = id
	return nil
}
