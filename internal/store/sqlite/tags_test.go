package sqlite

import (
	"context"
	"errors"
	"testing"

	"github.com/shelftalk/shelftalk-server/internal/domain"
	"github.com/shelftalk/shelftalk-server/internal/store"
)

func TestGetTagByName(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	seedUser(t, s, "user-1", "alice")
	if err := s.CreateRecommendation(ctx, makeTestRecommendation("rec-1", "user-1", "novel"), []domain.ResolvedTag{{Name: "Sci-Fi"}}); err != nil {
		t.Fatalf("CreateRecommendation: %v", err)
	}

	got, err := s.GetTagByName(ctx, "Sci-Fi")
	if err != nil {
		t.Fatalf("GetTagByName: %v", err)
	}
	if got.Name != "Sci-Fi" {
		t.Errorf("Name: got %q", got.Name)
	}
	if got.ID == "" {
		t.Error("expected generated tag id")
	}
}

func TestGetTagByName_CaseSensitive(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	seedUser(t, s, "user-1", "alice")
	if err := s.CreateRecommendation(ctx, makeTestRecommendation("rec-1", "user-1", "novel"), []domain.ResolvedTag{{Name: "Sci-Fi"}}); err != nil {
		t.Fatalf("CreateRecommendation: %v", err)
	}

	if _, err := s.GetTagByName(ctx, "sci-fi"); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for different case, got %v", err)
	}
}

func TestGetTagByName_NotFound(t *testing.T) {
	s := newTestStore(t)

	_, err := s.GetTagByName(context.Background(), "nonexistent")
	if !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestListTags(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	tags, err := s.ListTags(ctx)
	if err != nil {
		t.Fatalf("ListTags: %v", err)
	}
	if len(tags) != 0 {
		t.Fatalf("expected empty slice, got %d", len(tags))
	}

	seedUser(t, s, "user-1", "alice")
	resolved := []domain.ResolvedTag{{Name: "Zeta"}, {Name: "Alpha"}}
	if err := s.CreateRecommendation(ctx, makeTestRecommendation("rec-1", "user-1", "novel"), resolved); err != nil {
		t.Fatalf("CreateRecommendation: %v", err)
	}

	tags, err = s.ListTags(ctx)
	if err != nil {
		t.Fatalf("ListTags: %v", err)
	}
	if len(tags) != 2 {
		t.Fatalf("expected 2 tags, got %d", len(tags))
	}
	if tags[0].Name != "Alpha" || tags[1].Name != "Zeta" {
		t.Errorf("expected name order, got [%s %s]", tags[0].Name, tags[1].Name)
	}
}
