package article

import (
	"fmt"
	"time"
)

// Article is a knowledge-base entry. The category reference is nullable:
// deleting a category detaches its articles instead of deleting them.
type Article struct {
	id         uint
	authorID   uint
	title      string
	content    string
	categoryID *uint
	tagIDs     []uint
	createdAt  time.Time
	updatedAt  time.Time
}

func NewArticle(authorID uint, title, content string, categoryID uint, tagIDs []uint) (*Article, error) {
	if authorID == 0 {
		return nil, fmt.Errorf("author ID is required")
	}
	if len(title) == 0 {
		return nil, fmt.Errorf("title is required")
	}
	if len(content) == 0 {
		return nil, fmt.Errorf("content is required")
	}
	if categoryID == 0 {
		return nil, fmt.Errorf("category ID is required")
	}
	if len(tagIDs) == 0 {
		return nil, fmt.Errorf("at least one tag is required")
	}

	now := time.Now()
	return &Article{
		authorID:   authorID,
		title:      title,
		content:    content,
		categoryID: &categoryID,
		tagIDs:     dedupe(tagIDs),
		createdAt:  now,
		updatedAt:  now,
	}, nil
}

func ReconstructArticle(
	id uint,
	authorID uint,
	title string,
	content string,
	categoryID *uint,
	tagIDs []uint,
	createdAt, updatedAt time.Time,
) (*Article, error) {
	if id == 0 {
		return nil, fmt.Errorf("article ID cannot be zero")
	}
	if len(title) == 0 {
		return nil, fmt.Errorf("title is required")
	}

	if tagIDs == nil {
		tagIDs = []uint{}
	}

	return &Article{
		id:         id,
		authorID:   authorID,
		title:      title,
		content:    content,
		categoryID: categoryID,
		tagIDs:     tagIDs,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}, nil
}

func (a *Article) ID() uint {
	return a.id
}

func (a *Article) AuthorID() uint {
	return a.authorID
}

func (a *Article) Title() string {
	return a.title
}

func (a *Article) Content() string {
	return a.content
}

func (a *Article) CategoryID() *uint {
	return a.categoryID
}

func (a *Article) TagIDs() []uint {
	ids := make([]uint, len(a.tagIDs))
	copy(ids, a.tagIDs)
	return ids
}

func (a *Article) CreatedAt() time.Time {
	return a.createdAt
}

func (a *Article) UpdatedAt() time.Time {
	return a.updatedAt
}

func (a *Article) SetID(id uint) error {
	if a.id != 0 {
		return fmt.Errorf("article ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("article ID cannot be zero")
	}
	a.id = id
	return nil
}

// Revise replaces the article body fields, stamping updatedAt. Tags are
// replaced wholesale; nil keeps the stored set.
func (a *Article) Revise(title, content string, categoryID, authorID uint, tagIDs []uint) error {
	if len(title) == 0 {
		return fmt.Errorf("title is required")
	}
	if len(content) == 0 {
		return fmt.Errorf("content is required")
	}
	if categoryID == 0 {
		return fmt.Errorf("category ID is required")
	}
	if authorID == 0 {
		return fmt.Errorf("author ID is required")
	}

	a.title = title
	a.content = content
	a.categoryID = &categoryID
	a.authorID = authorID
	if tagIDs != nil {
		a.tagIDs = dedupe(tagIDs)
	}
	a.updatedAt = time.Now()
	return nil
}

// DetachCategory clears the category reference, leaving the article in
// place. Used by the category deletion cascade.
func (a *Article) DetachCategory() {
	a.categoryID = nil
	a.updatedAt = time.Now()
}

func dedupe(ids []uint) []uint {
	seen := make(map[uint]struct{}, len(ids))
	out := make([]uint, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
