package catalog

import (
	"context"
	"strings"

	"github.com/roycode360/theglamstore-sub001/models"
	"go.mongodb.org/mongo-driver/v2/bson"
	"golang.org/x/sync/errgroup"
)

// ProductStore is the slice of the product collection the engine needs.
type ProductStore interface {
	Find(ctx context.Context, filter bson.M, sort bson.D, skip, limit int64) ([]models.Product, error)
	Count(ctx context.Context, filter bson.M) (int64, error)
}

// Engine resolves listing filters into a composed store predicate and runs
// the paged read. It is stateless; one instance serves all requests.
type Engine struct {
	categories CategoryStore
	products   ProductStore
}

func NewEngine(categories CategoryStore, products ProductStore) *Engine {
	return &Engine{categories: categories, products: products}
}

// ListProductsPage runs one catalog query: category resolution, predicate
// composition, then the page fetch and total count issued concurrently.
// Either both reads succeed or the call fails as a whole.
func (e *Engine) ListProductsPage(ctx context.Context, page, pageSize int, f Filters) (*Page, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 1
	}

	var patterns []Pattern
	if token := strings.TrimSpace(f.Category); token != "" {
		matched, descendants, err := ResolveHierarchy(ctx, e.categories, token)
		if err != nil {
			return nil, err
		}
		patterns = BuildMatchSet(token, matched, descendants)
	}

	filter := ComposeFilter(f, patterns)
	sort := sortSpec(f.SortBy, f.SortDir)
	skip := int64(page-1) * int64(pageSize)

	var (
		items []models.Product
		total int64
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		items, err = e.products.Find(gctx, filter, sort, skip, int64(pageSize))
		return err
	})
	g.Go(func() error {
		var err error
		total, err = e.products.Count(gctx, filter)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return projectPage(items, total, page, pageSize), nil
}

func sortSpec(sortBy, sortDir string) bson.D {
	dir := 1
	if strings.EqualFold(strings.TrimSpace(sortDir), "desc") {
		dir = -1
	}
	switch strings.TrimSpace(sortBy) {
	case "price":
		return bson.D{{Key: "price", Value: dir}}
	case "name":
		return bson.D{{Key: "name", Value: dir}}
	case "createdAt":
		return bson.D{{Key: "createdAt", Value: dir}}
	default:
		// newest first when no (or an unknown) sort field is given
		return bson.D{{Key: "createdAt", Value: -1}}
	}
}
