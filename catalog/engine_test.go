package catalog

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/roycode360/theglamstore-sub001/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
)

// mockProductStore serves a canned product list, applying skip/limit the way
// the collection would, and captures the call arguments.
type mockProductStore struct {
	products []models.Product
	findErr  error
	countErr error

	lastFilter bson.M
	lastSort   bson.D
	lastSkip   int64
	lastLimit  int64
}

func (m *mockProductStore) Find(_ context.Context, filter bson.M, sort bson.D, skip, limit int64) ([]models.Product, error) {
	m.lastFilter = filter
	m.lastSort = sort
	m.lastSkip = skip
	m.lastLimit = limit

	if m.findErr != nil {
		return nil, m.findErr
	}

	start := int(skip)
	if start > len(m.products) {
		start = len(m.products)
	}
	end := start + int(limit)
	if end > len(m.products) {
		end = len(m.products)
	}
	return m.products[start:end], nil
}

func (m *mockProductStore) Count(_ context.Context, filter bson.M) (int64, error) {
	if m.countErr != nil {
		return 0, m.countErr
	}
	return int64(len(m.products)), nil
}

func sampleProducts(n int) []models.Product {
	out := make([]models.Product, 0, n)
	for i := 1; i <= n; i++ {
		var oid bson.ObjectID
		oid[10] = byte(i >> 8)
		oid[11] = byte(i)
		out = append(out, models.Product{
			Id:       oid,
			Name:     fmt.Sprintf("Product %02d", i),
			Price:    float64(i) * 10,
			IsActive: true,
		})
	}
	return out
}

func TestListProductsPage_Pagination(t *testing.T) {
	products := &mockProductStore{products: sampleProducts(25)}
	engine := NewEngine(&mockCategoryStore{}, products)

	page, err := engine.ListProductsPage(context.Background(), 2, 10, Filters{})
	require.NoError(t, err)

	assert.Equal(t, int64(25), page.Total)
	assert.Equal(t, 2, page.Page)
	assert.Equal(t, 10, page.PageSize)
	assert.Equal(t, 3, page.TotalPages)
	require.Len(t, page.Items, 10)
	assert.Equal(t, "Product 11", page.Items[0].Name)
	assert.Equal(t, "Product 20", page.Items[9].Name)

	assert.Equal(t, int64(10), products.lastSkip)
	assert.Equal(t, int64(10), products.lastLimit)
}

func TestListProductsPage_EmptyResultStillHasOnePage(t *testing.T) {
	engine := NewEngine(&mockCategoryStore{}, &mockProductStore{})

	page, err := engine.ListProductsPage(context.Background(), 1, 20, Filters{})
	require.NoError(t, err)

	assert.Equal(t, int64(0), page.Total)
	assert.Equal(t, 1, page.TotalPages)
	assert.NotNil(t, page.Items)
	assert.Empty(t, page.Items)
}

func TestListProductsPage_ClampsPageAndPageSize(t *testing.T) {
	products := &mockProductStore{products: sampleProducts(3)}
	engine := NewEngine(&mockCategoryStore{}, products)

	page, err := engine.ListProductsPage(context.Background(), 0, -5, Filters{})
	require.NoError(t, err)

	assert.Equal(t, 1, page.Page)
	assert.Equal(t, 1, page.PageSize)
	assert.Equal(t, int64(0), products.lastSkip)
	assert.Equal(t, int64(1), products.lastLimit)
	assert.Equal(t, 3, page.TotalPages)
}

func TestListProductsPage_DefaultSortIsNewestFirst(t *testing.T) {
	products := &mockProductStore{products: sampleProducts(1)}
	engine := NewEngine(&mockCategoryStore{}, products)

	_, err := engine.ListProductsPage(context.Background(), 1, 10, Filters{})
	require.NoError(t, err)
	assert.Equal(t, bson.D{{Key: "createdAt", Value: -1}}, products.lastSort)

	_, err = engine.ListProductsPage(context.Background(), 1, 10, Filters{SortBy: "price", SortDir: "desc"})
	require.NoError(t, err)
	assert.Equal(t, bson.D{{Key: "price", Value: -1}}, products.lastSort)

	_, err = engine.ListProductsPage(context.Background(), 1, 10, Filters{SortBy: "bogus", SortDir: "asc"})
	require.NoError(t, err)
	assert.Equal(t, bson.D{{Key: "createdAt", Value: -1}}, products.lastSort)
}

func TestListProductsPage_CategoryFilterComposesMatchSet(t *testing.T) {
	shoes := cat(1, "Women's Shoes", "womens-shoes", nil)
	sneakers := cat(2, "Sneakers", "sneakers", oidOf(shoes))
	categories := &mockCategoryStore{categories: []models.Category{shoes, sneakers}}
	products := &mockProductStore{products: sampleProducts(1)}

	engine := NewEngine(categories, products)
	_, err := engine.ListProductsPage(context.Background(), 1, 10, Filters{Category: "womens-shoes"})
	require.NoError(t, err)

	matched, descendants, err := ResolveHierarchy(context.Background(), categories, "womens-shoes")
	require.NoError(t, err)
	want := ComposeFilter(Filters{Category: "womens-shoes"}, BuildMatchSet("womens-shoes", matched, descendants))
	assert.Equal(t, want, products.lastFilter)
}

func TestListProductsPage_UnresolvedCategoryFallsBackToLiteral(t *testing.T) {
	products := &mockProductStore{products: sampleProducts(1)}
	engine := NewEngine(&mockCategoryStore{}, products)

	_, err := engine.ListProductsPage(context.Background(), 1, 10, Filters{Category: "mystery"})
	require.NoError(t, err)

	want := ComposeFilter(Filters{}, BuildMatchSet("mystery", nil, nil))
	assert.Equal(t, want, products.lastFilter)
}

func TestListProductsPage_StoreFailuresPropagate(t *testing.T) {
	findErr := errors.New("find: socket closed")
	countErr := errors.New("count: timeout")

	_, err := NewEngine(&mockCategoryStore{}, &mockProductStore{findErr: findErr}).
		ListProductsPage(context.Background(), 1, 10, Filters{})
	assert.ErrorIs(t, err, findErr)

	_, err = NewEngine(&mockCategoryStore{}, &mockProductStore{countErr: countErr}).
		ListProductsPage(context.Background(), 1, 10, Filters{})
	assert.ErrorIs(t, err, countErr)

	catErr := errors.New("categories down")
	_, err = NewEngine(&mockCategoryStore{err: catErr}, &mockProductStore{}).
		ListProductsPage(context.Background(), 1, 10, Filters{Category: "heels"})
	assert.ErrorIs(t, err, catErr)
}
