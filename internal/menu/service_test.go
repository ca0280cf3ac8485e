package menu_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"gameopolis-api/internal/menu"
	"gameopolis-api/internal/models"
)

type MockDBLayer struct {
	mock.Mock
}

func (m *MockDBLayer) ListMenuItems(ctx context.Context, category string, available *bool) ([]models.MenuItem, error) {
	args := m.Called(ctx, category, available)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.MenuItem), args.Error(1)
}

func (m *MockDBLayer) GetMenuItemByID(ctx context.Context, id string) (*models.MenuItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.MenuItem), args.Error(1)
}

func (m *MockDBLayer) CreateMenuItem(ctx context.Context, item models.MenuItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockDBLayer) UpdateMenuItem(ctx context.Context, item models.MenuItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockDBLayer) DeleteMenuItem(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func strPtr(s string) *string { return &s }
func intPtr(n int) *int       { return &n }

func TestListGroupsIntoAllCategories(t *testing.T) {
	items := []models.MenuItem{
		{ID: "1", Name: "Masala Chai", Category: "hot-beverages", Price: 40},
		{ID: "2", Name: "Filter Coffee", Category: "hot-beverages", Price: 50},
		{ID: "3", Name: "Cheese Maggi", Category: "quick-meals", Price: 90},
	}

	mockDB := new(MockDBLayer)
	mockDB.On("ListMenuItems", mock.Anything, "", (*bool)(nil)).Return(items, nil)

	svc := menu.NewService(mockDB)
	grouped, count, err := svc.List(context.Background(), "", nil)
	require.NoError(t, err)

	assert.Equal(t, 3, count)
	// Every category key is present even when empty.
	for _, category := range models.MenuCategories {
		_, ok := grouped[category]
		assert.True(t, ok, "missing category key %s", category)
	}
	assert.Len(t, grouped["hot-beverages"], 2)
	assert.Len(t, grouped["quick-meals"], 1)
	assert.Empty(t, grouped["cold-beverages"])
	assert.Empty(t, grouped["snacks"])
}

func TestListRejectsUnknownCategory(t *testing.T) {
	svc := menu.NewService(new(MockDBLayer))
	_, _, err := svc.List(context.Background(), "desserts", nil)
	assert.True(t, models.IsValidation(err))
}

func TestCreateMenuItemDefaultsAvailable(t *testing.T) {
	mockDB := new(MockDBLayer)
	mockDB.On("CreateMenuItem", mock.Anything, mock.AnythingOfType("models.MenuItem")).Return(nil)

	svc := menu.NewService(mockDB)
	item, err := svc.Create(context.Background(), models.MenuItemInput{
		Name:     strPtr("Cold Coffee"),
		Price:    intPtr(110),
		Category: strPtr("cold-beverages"),
	})
	require.NoError(t, err)

	assert.NotEmpty(t, item.ID)
	assert.True(t, item.Available)
	mockDB.AssertExpectations(t)
}

func TestCreateMenuItemValidation(t *testing.T) {
	svc := menu.NewService(new(MockDBLayer))
	ctx := context.Background()

	_, err := svc.Create(ctx, models.MenuItemInput{
		Price:    intPtr(110),
		Category: strPtr("cold-beverages"),
	})
	assert.True(t, models.IsValidation(err), "missing name should fail")

	_, err = svc.Create(ctx, models.MenuItemInput{
		Name:     strPtr("Cold Coffee"),
		Price:    intPtr(-5),
		Category: strPtr("cold-beverages"),
	})
	assert.True(t, models.IsValidation(err), "negative price should fail")

	_, err = svc.Create(ctx, models.MenuItemInput{
		Name:     strPtr("Cold Coffee"),
		Price:    intPtr(110),
		Category: strPtr("desserts"),
	})
	assert.True(t, models.IsValidation(err), "unknown category should fail")
}

func TestUpdateMenuItemPartialPatch(t *testing.T) {
	existing := &models.MenuItem{
		ID:        "item-1",
		Name:      "Veg Sandwich",
		Price:     80,
		Category:  "snacks",
		Available: true,
	}

	mockDB := new(MockDBLayer)
	mockDB.On("GetMenuItemByID", mock.Anything, "item-1").Return(existing, nil)
	mockDB.On("UpdateMenuItem", mock.Anything, mock.AnythingOfType("models.MenuItem")).Return(nil)

	svc := menu.NewService(mockDB)
	available := false
	item, err := svc.Update(context.Background(), "item-1", models.MenuItemInput{
		Available: &available,
	})
	require.NoError(t, err)

	assert.False(t, item.Available)
	assert.Equal(t, "Veg Sandwich", item.Name)
	assert.Equal(t, 80, item.Price)
}
