package catalog

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/roycode360/theglamstore-sub001/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
)

// mockCategoryStore serves categories from a slice, resolving parent links
// in memory the way the collection would.
type mockCategoryStore struct {
	categories []models.Category
	err        error
}

func (m *mockCategoryStore) FindBySlug(_ context.Context, slug string) (*models.Category, error) {
	if m.err != nil {
		return nil, m.err
	}
	for i := range m.categories {
		if m.categories[i].Slug == slug {
			return &m.categories[i], nil
		}
	}
	return nil, nil
}

func (m *mockCategoryStore) FindBySlugPattern(_ context.Context, p Pattern) (*models.Category, error) {
	if m.err != nil {
		return nil, m.err
	}
	rx, err := regexp.Compile("(?i)" + p.Expr)
	if err != nil {
		return nil, err
	}
	for i := range m.categories {
		if rx.MatchString(m.categories[i].Slug) {
			return &m.categories[i], nil
		}
	}
	return nil, nil
}

func (m *mockCategoryStore) FindByParent(_ context.Context, parentID bson.ObjectID) ([]models.Category, error) {
	if m.err != nil {
		return nil, m.err
	}
	var out []models.Category
	for _, c := range m.categories {
		if c.ParentId != nil && *c.ParentId == parentID {
			out = append(out, c)
		}
	}
	return out, nil
}

func cat(id byte, name, slug string, parent *bson.ObjectID) models.Category {
	var oid bson.ObjectID
	oid[11] = id
	return models.Category{Id: oid, Name: name, Slug: slug, ParentId: parent, IsActive: true}
}

func oidOf(c models.Category) *bson.ObjectID {
	id := c.Id
	return &id
}

func TestResolveHierarchy_CollectsAllDescendants(t *testing.T) {
	women := cat(1, "Women", "women", nil)
	shoes := cat(2, "Women's Shoes", "womens-shoes", oidOf(women))
	sneakers := cat(3, "Sneakers", "sneakers", oidOf(shoes))
	heels := cat(4, "Heels", "heels", oidOf(shoes))
	running := cat(5, "Running", "running", oidOf(sneakers))
	men := cat(6, "Men", "men", nil)

	store := &mockCategoryStore{categories: []models.Category{women, shoes, sneakers, heels, running, men}}

	matched, descendants, err := ResolveHierarchy(context.Background(), store, "womens-shoes")
	require.NoError(t, err)
	require.NotNil(t, matched)
	assert.Equal(t, "womens-shoes", matched.Slug)

	slugs := make([]string, 0, len(descendants))
	for _, d := range descendants {
		slugs = append(slugs, d.Slug)
	}
	assert.ElementsMatch(t, []string{"sneakers", "heels", "running"}, slugs)
}

func TestResolveHierarchy_NormalizedSlugFallback(t *testing.T) {
	shoes := cat(1, "Women's Shoes", "womens-shoes", nil)
	store := &mockCategoryStore{categories: []models.Category{shoes}}

	matched, _, err := ResolveHierarchy(context.Background(), store, "Womens Shoes")
	require.NoError(t, err)
	require.NotNil(t, matched)
	assert.Equal(t, "womens-shoes", matched.Slug)
}

func TestResolveHierarchy_NotFoundIsSoft(t *testing.T) {
	store := &mockCategoryStore{}

	matched, descendants, err := ResolveHierarchy(context.Background(), store, "no-such-category")
	require.NoError(t, err)
	assert.Nil(t, matched)
	assert.Empty(t, descendants)
}

func TestResolveHierarchy_EmptyToken(t *testing.T) {
	store := &mockCategoryStore{}

	matched, descendants, err := ResolveHierarchy(context.Background(), store, "   ")
	require.NoError(t, err)
	assert.Nil(t, matched)
	assert.Empty(t, descendants)
}

func TestResolveHierarchy_CycleTerminates(t *testing.T) {
	// a -> b -> c -> a: pathological parent pointers must not hang and
	// must not produce duplicates.
	a := cat(1, "A", "a", nil)
	b := cat(2, "B", "b", oidOf(a))
	c := cat(3, "C", "c", oidOf(b))
	a.ParentId = oidOf(c)

	store := &mockCategoryStore{categories: []models.Category{a, b, c}}

	matched, descendants, err := ResolveHierarchy(context.Background(), store, "a")
	require.NoError(t, err)
	require.NotNil(t, matched)

	slugs := make([]string, 0, len(descendants))
	for _, d := range descendants {
		slugs = append(slugs, d.Slug)
	}
	assert.ElementsMatch(t, []string{"b", "c"}, slugs)
}

func TestResolveHierarchy_StoreErrorPropagates(t *testing.T) {
	storeErr := errors.New("connection reset")
	store := &mockCategoryStore{err: storeErr}

	_, _, err := ResolveHierarchy(context.Background(), store, "women")
	assert.ErrorIs(t, err, storeErr)
}
