package posts

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/xiaoqianling/ReiAlgoAPI/internal/models"
)

func TestSampleSerialization(t *testing.T) {
	post := Sample(time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC))

	data, err := models.Serialize(&post)
	if err != nil {
		t.Fatalf("Serialize returned error: %v", err)
	}

	var doc struct {
		ID       string           `json:"id"`
		Title    string           `json:"title"`
		Contents []map[string]any `json:"contents"`
		Tags     []string         `json:"tags"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("decode: %v", err)
	}

	if doc.ID != "mock-id-2" {
		t.Fatalf("expected id mock-id-2, got %q", doc.ID)
	}
	if !strings.Contains(doc.Title, "React Hooks") {
		t.Fatalf("expected title to mention React Hooks, got %q", doc.Title)
	}
	wantTypes := []string{"markdown", "tip", "tip", "tip", "code", "fold"}
	if len(doc.Contents) != len(wantTypes) {
		t.Fatalf("expected %d content blocks, got %d", len(wantTypes), len(doc.Contents))
	}
	for i, want := range wantTypes {
		if doc.Contents[i]["type"] != want {
			t.Fatalf("block %d: expected type %q, got %v", i, want, doc.Contents[i]["type"])
		}
	}

	levels := []any{doc.Contents[1]["level"], doc.Contents[2]["level"], doc.Contents[3]["level"]}
	if levels[0] != "tip" || levels[1] != "warning" || levels[2] != "error" {
		t.Fatalf("unexpected tip levels %v", levels)
	}
	if code, ok := doc.Contents[4]["metadata"].([]any); !ok || len(code) != 2 {
		t.Fatalf("expected two code entries, got %v", doc.Contents[4]["metadata"])
	}
	fold := doc.Contents[len(doc.Contents)-1]
	if fold["title"] != "测试标题" || fold["content"] != "测试文本" {
		t.Fatalf("unexpected fold block %v", fold)
	}
	if md, _ := doc.Contents[0]["content"].(string); !strings.Contains(md, "```jsx") || strings.Contains(md, "~~~") {
		t.Fatalf("expected markdown with backtick fences")
	}
	if len(doc.Tags) != 1 || doc.Tags[0] != "tech" {
		t.Fatalf("unexpected tags %v", doc.Tags)
	}
}

func TestSampleRoundTrip(t *testing.T) {
	post := Sample(time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC))
	data, err := models.Serialize(&post)
	if err != nil {
		t.Fatalf("Serialize returned error: %v", err)
	}
	back, err := models.Deserialize(data)
	if err != nil {
		t.Fatalf("Deserialize returned error: %v", err)
	}
	again, err := models.Serialize(back)
	if err != nil {
		t.Fatalf("Serialize returned error: %v", err)
	}
	if string(again) != string(data) {
		t.Fatalf("expected stable serialization")
	}
}

func TestSampleReturnsFreshValues(t *testing.T) {
	now := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
	a := Sample(now)
	b := Sample(now)
	a.Contents[0] = models.Block(models.Markdown{Content: "changed"})
	a.Tags[0] = models.TagType(0)
	if b.Contents[0].Content.(models.Markdown).Content == "changed" || b.Tags[0] != models.TagTech {
		t.Fatalf("expected independent values per call")
	}
}

func TestSampleClampsUpdatedAt(t *testing.T) {
	post := Sample(time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC))
	if post.UpdatedAt.Before(post.CreatedAt) {
		t.Fatalf("updatedAt %v precedes createdAt %v", post.UpdatedAt, post.CreatedAt)
	}
	if err := post.Validate(); err != nil {
		t.Fatalf("expected clamped sample to validate: %v", err)
	}
}

func TestMockSourceIgnoresID(t *testing.T) {
	now := time.Date(2025, 3, 4, 5, 6, 7, 0, time.UTC)
	src := NewMockSource(func() time.Time { return now })

	for _, id := range []string{"mock-id-2", "anything", ""} {
		post, err := src.GetPost(context.Background(), id)
		if err != nil {
			t.Fatalf("GetPost(%q) returned error: %v", id, err)
		}
		if post.ID != SampleID {
			t.Fatalf("GetPost(%q): expected sample id, got %q", id, post.ID)
		}
		if !post.UpdatedAt.Equal(now) {
			t.Fatalf("expected updatedAt from clock, got %v", post.UpdatedAt)
		}
	}
}

func TestMockSourceCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := NewMockSource(nil).GetPost(ctx, "x"); err == nil {
		t.Fatalf("expected error for canceled context")
	}
}

func TestNotFoundErrorMessage(t *testing.T) {
	err := &NotFoundError{ID: "abc"}
	if err.Error() != `post "abc" not found` {
		t.Fatalf("unexpected message %q", err.Error())
	}
}
