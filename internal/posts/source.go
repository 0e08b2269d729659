package posts

import (
	"context"
	"fmt"
	"time"

	"github.com/xiaoqianling/ReiAlgoAPI/internal/models"
)

// Source looks up a post by id.
type Source interface {
	GetPost(ctx context.Context, id string) (*models.Post, error)
}

// NotFoundError is returned by a Source that has no post with the given id.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("post %q not found", e.ID)
}

// MockSource serves the sample post for every id. It holds no state beyond its
// clock, so one value can be shared by all requests.
type MockSource struct {
	now func() time.Time
}

func NewMockSource(now func() time.Time) *MockSource {
	if now == nil {
		now = time.Now
	}
	return &MockSource{now: now}
}

func (s *MockSource) GetPost(ctx context.Context, id string) (*models.Post, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	post := Sample(s.now().UTC())
	return &post, nil
}
