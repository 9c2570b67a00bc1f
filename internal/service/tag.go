package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/shelftalk/shelftalk-server/internal/domain"
	domainerrors "github.com/shelftalk/shelftalk-server/internal/errors"
	"github.com/shelftalk/shelftalk-server/internal/normalize"
	"github.com/shelftalk/shelftalk-server/internal/store"
)

// TagResolver maps raw tag input to existing tag rows or new names.
// It never writes: persistence of new tags happens inside the transaction
// that creates the owning recommendation.
type TagResolver struct {
	store store.Store
}

// NewTagResolver creates a tag resolver backed by the given store.
func NewTagResolver(store store.Store) *TagResolver {
	return &TagResolver{store: store}
}

// Resolve normalizes each raw tag and resolves it against the stored tag set.
// The result is order-preserving with one entry per input string; repeated
// names within one call resolve to the first occurrence. A tag that is empty
// after normalization is a validation error.
func (r *TagResolver) Resolve(ctx context.Context, raw []string) ([]domain.ResolvedTag, error) {
	resolved := make([]domain.ResolvedTag, 0, len(raw))
	seen := make(map[string]domain.ResolvedTag, len(raw))

	for _, input := range raw {
		name := normalize.TagName(input)
		if name == "" {
			return nil, domainerrors.Validation("tags must not be empty")
		}

		if prior, ok := seen[name]; ok {
			resolved = append(resolved, prior)
			continue
		}

		tag, err := r.store.GetTagByName(ctx, name)
		switch {
		case err == nil:
			rt := domain.ResolvedTag{TagID: tag.ID, Name: tag.Name, Existing: true}
			seen[name] = rt
			resolved = append(resolved, rt)
		case errors.Is(err, store.ErrNotFound):
			rt := domain.ResolvedTag{Name: name}
			seen[name] = rt
			resolved = append(resolved, rt)
		default:
			return nil, fmt.Errorf("lookup tag %q: %w", name, err)
		}
	}

	return resolved, nil
}
