package category

import (
	"fmt"
	"strings"
	"time"
)

// Category labels knowledge-base articles. Names are unique under locale
// folding.
type Category struct {
	id        uint
	name      string
	createdAt time.Time
}

func NewCategory(name string) (*Category, error) {
	if len(strings.TrimSpace(name)) == 0 {
		return nil, fmt.Errorf("name is required")
	}

	return &Category{
		name:      strings.TrimSpace(name),
		createdAt: time.Now(),
	}, nil
}

func ReconstructCategory(id uint, name string, createdAt time.Time) (*Category, error) {
	if id == 0 {
		return nil, fmt.Errorf("category ID cannot be zero")
	}
	if len(name) == 0 {
		return nil, fmt.Errorf("name is required")
	}

	return &Category{
		id:        id,
		name:      name,
		createdAt: createdAt,
	}, nil
}

func (c *Category) ID() uint {
	return c.id
}

func (c *Category) Name() string {
	return c.name
}

func (c *Category) CreatedAt() time.Time {
	return c.createdAt
}

func (c *Category) SetID(id uint) error {
	if c.id != 0 {
		return fmt.Errorf("category ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("category ID cannot be zero")
	}
	c.id = id
	return nil
}
