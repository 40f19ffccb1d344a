package catalog

import (
	"context"
	"strings"

	"github.com/roycode360/theglamstore-sub001/models"
	"go.mongodb.org/mongo-driver/v2/bson"
)

// CategoryStore is the slice of the category collection the resolver needs.
// Implementations return (nil, nil) when no document matches.
type CategoryStore interface {
	FindBySlug(ctx context.Context, slug string) (*models.Category, error)
	FindBySlugPattern(ctx context.Context, p Pattern) (*models.Category, error)
	FindByParent(ctx context.Context, parentID bson.ObjectID) ([]models.Category, error)
}

// ResolveHierarchy looks the token up as a slug (exact, then normalized) and,
// on a hit, collects every descendant category by walking the parent-pointer
// relation breadth-first. A token that matches nothing is not an error: the
// caller falls back to matching the raw token as literal text.
func ResolveHierarchy(ctx context.Context, store CategoryStore, token string) (*models.Category, []models.Category, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, nil, nil
	}

	matched, err := store.FindBySlug(ctx, token)
	if err != nil {
		return nil, nil, err
	}
	if matched == nil {
		if p, ok := Strict(token); ok {
			matched, err = store.FindBySlugPattern(ctx, p)
			if err != nil {
				return nil, nil, err
			}
		}
	}
	if matched == nil {
		return nil, nil, nil
	}

	// Explicit queue + visited set: terminates even if stored parent
	// pointers somehow form a cycle.
	var descendants []models.Category
	visited := map[bson.ObjectID]struct{}{matched.Id: {}}
	queue := []bson.ObjectID{matched.Id}
	for len(queue) > 0 {
		parent := queue[0]
		queue = queue[1:]

		children, err := store.FindByParent(ctx, parent)
		if err != nil {
			return nil, nil, err
		}
		for _, child := range children {
			if _, seen := visited[child.Id]; seen {
				continue
			}
			visited[child.Id] = struct{}{}
			descendants = append(descendants, child)
			queue = append(queue, child.Id)
		}
	}

	return matched, descendants, nil
}
