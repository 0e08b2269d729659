package models

import (
	"encoding/json"
	"time"
)

// TagType is the category of a post.
type TagType int

const (
	TagTech TagType = iota + 1
)

var tagTypes = newEnumTable[TagType]("tag type", "tech")

func TagTypes() []TagType { return tagTypes.values() }

func (t TagType) String() string { return tagTypes.name(t) }

func (t TagType) IsValid() bool { return tagTypes.valid(t) }

func (t TagType) MarshalText() ([]byte, error) { return tagTypes.marshalText(t) }

func (t *TagType) UnmarshalJSON(data []byte) error {
	v, err := tagTypes.unmarshalJSON(data)
	if err != nil {
		return err
	}
	*t = v
	return nil
}

type Post struct {
	ID        string         `json:"id" validate:"required"`
	Title     string         `json:"title" validate:"required"`
	Username  string         `json:"username" validate:"required"`
	UserLink  string         `json:"userLink,omitempty"`
	Contents  []ContentBlock `json:"contents" validate:"required"`
	CreatedAt time.Time      `json:"createdAt" validate:"required"`
	UpdatedAt time.Time      `json:"updatedAt" validate:"required,gtefield=CreatedAt"`
	// Tags is a set; order carries no meaning.
	Tags []TagType `json:"tags,omitempty" validate:"omitempty,unique,dive,enum"`
}

// postWire mirrors Post with pointers on the required keys so decoding can report
// which one is absent.
type postWire struct {
	ID        *string         `json:"id"`
	Title     *string         `json:"title"`
	Username  *string         `json:"username"`
	UserLink  string          `json:"userLink"`
	Contents  *[]ContentBlock `json:"contents"`
	CreatedAt *time.Time      `json:"createdAt"`
	UpdatedAt *time.Time      `json:"updatedAt"`
	Tags      []TagType       `json:"tags"`
}

func (p *Post) UnmarshalJSON(data []byte) error {
	var w postWire
	if err := json.Unmarshal(data, &w); err != nil {
		return asDecodeError(err)
	}
	switch {
	case w.ID == nil:
		return &MissingFieldError{Field: "id"}
	case w.Title == nil:
		return &MissingFieldError{Field: "title"}
	case w.Username == nil:
		return &MissingFieldError{Field: "username"}
	case w.Contents == nil:
		return &MissingFieldError{Field: "contents"}
	case w.CreatedAt == nil:
		return &MissingFieldError{Field: "createdAt"}
	case w.UpdatedAt == nil:
		return &MissingFieldError{Field: "updatedAt"}
	}

	*p = Post{
		ID:        *w.ID,
		Title:     *w.Title,
		Username:  *w.Username,
		UserLink:  w.UserLink,
		Contents:  *w.Contents,
		CreatedAt: *w.CreatedAt,
		UpdatedAt: *w.UpdatedAt,
	}
	if len(w.Tags) > 0 {
		p.Tags = w.Tags
	}
	return nil
}
