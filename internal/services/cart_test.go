package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/anuraag-firstaid/storefront/internal/models"
	service "github.com/anuraag-firstaid/storefront/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockCartRepository struct {
	mock.Mock
}

func (m *mockCartRepository) Load(ctx context.Context, userID string) (*models.CartState, error) {
	args := m.Called(ctx, userID)

	state, _ := args.Get(0).(*models.CartState)

	return state, args.Error(1)
}

func (m *mockCartRepository) Save(ctx context.Context, userID string, state models.CartState) error {
	args := m.Called(ctx, userID, state)

	return args.Error(0)
}

func (m *mockCartRepository) Delete(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)

	return args.Error(0)
}

func gauze() models.CartLineItem {
	return models.CartLineItem{
		Name:     "Sterile Gauze",
		Price:    149,
		Category: "consumables",
		Size:     "100ml",
	}
}

func TestCartServiceAnonymous(t *testing.T) {
	mockRepo := new(mockCartRepository)
	cartService := service.NewCartService(mockRepo)
	ctx := context.Background()

	t.Run("Fresh Session Starts Empty", func(t *testing.T) {
		state := cartService.GetCart(ctx, "s1")

		assert.Empty(t, state.Items)
		assert.Zero(t, state.Total)
		assert.Zero(t, state.ItemCount)
	})

	t.Run("Mutations Stay In Memory", func(t *testing.T) {
		// No identity attached, so no Save may reach the repository.
		state := cartService.AddItem(ctx, "s1", gauze())

		require.Len(t, state.Items, 1)
		assert.Equal(t, 1, state.ItemCount)
		mockRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Sessions Are Independent", func(t *testing.T) {
		other := cartService.GetCart(ctx, "s2")

		assert.Empty(t, other.Items)
	})
}

func TestCartServiceAttach(t *testing.T) {
	ctx := context.Background()

	t.Run("Saved Record Overwrites Guest Cart", func(t *testing.T) {
		// Scenario: the anonymous session holds two items, the stored record
		// holds one item with quantity 3. After sign-in the stored record
		// wins wholesale.
		mockRepo := new(mockCartRepository)
		cartService := service.NewCartService(mockRepo)

		cartService.AddItem(ctx, "s1", gauze())

		tape := gauze()
		tape.Name = "Adhesive Tape"
		tape.Price = 79
		cartService.AddItem(ctx, "s1", tape)

		saved := models.EmptyCart().
			AddItem(models.CartLineItem{Name: "Pain Relievers", Price: 99, Category: "specialty", Size: "10 Tablets"}).
			UpdateQuantity("specialty-Pain Relievers-10 Tablets", 3)

		mockRepo.On("Load", ctx, "u1").Return(&saved, nil).Once()

		state := cartService.Attach(ctx, "s1", "u1")

		assert.Equal(t, saved, state)
		assert.Equal(t, 3, state.ItemCount)
		assert.Equal(t, float64(297), state.Total)
		mockRepo.AssertExpectations(t)
	})

	t.Run("No Saved Record Leaves Cart As Is", func(t *testing.T) {
		mockRepo := new(mockCartRepository)
		cartService := service.NewCartService(mockRepo)

		before := cartService.AddItem(ctx, "s1", gauze())

		mockRepo.On("Load", ctx, "u1").Return(nil, nil).Once()
		mockRepo.On("Save", ctx, "u1", mock.Anything).Return(nil).Maybe()

		state := cartService.Attach(ctx, "s1", "u1")

		assert.Equal(t, before, state)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Load Failure Is Swallowed", func(t *testing.T) {
		mockRepo := new(mockCartRepository)
		cartService := service.NewCartService(mockRepo)

		before := cartService.AddItem(ctx, "s1", gauze())

		mockRepo.On("Load", ctx, "u1").Return(nil, errors.New("redis unreachable")).Once()

		state := cartService.Attach(ctx, "s1", "u1")

		assert.Equal(t, before, state)
		mockRepo.AssertExpectations(t)
	})
}

func TestCartServiceFlush(t *testing.T) {
	ctx := context.Background()

	t.Run("Mutation While Attached Writes Snapshot", func(t *testing.T) {
		mockRepo := new(mockCartRepository)
		cartService := service.NewCartService(mockRepo)

		mockRepo.On("Load", ctx, "u1").Return(nil, nil).Once()
		cartService.Attach(ctx, "s1", "u1")

		expected := models.EmptyCart().AddItem(gauze())
		mockRepo.On("Save", ctx, "u1", expected).Return(nil).Once()

		state := cartService.AddItem(ctx, "s1", gauze())

		assert.Equal(t, expected, state)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Emptying The Cart Skips The Write", func(t *testing.T) {
		mockRepo := new(mockCartRepository)
		cartService := service.NewCartService(mockRepo)

		mockRepo.On("Load", ctx, "u1").Return(nil, nil).Once()
		cartService.Attach(ctx, "s1", "u1")

		mockRepo.On("Save", ctx, "u1", mock.Anything).Return(nil).Once()
		cartService.AddItem(ctx, "s1", gauze())

		// Dropping the last item leaves an empty cart, which is never
		// flushed; the previous snapshot stays in place.
		state := cartService.UpdateQuantity(ctx, "s1", "consumables-Sterile Gauze-100ml", 0)

		assert.Empty(t, state.Items)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Save Failure Never Surfaces", func(t *testing.T) {
		mockRepo := new(mockCartRepository)
		cartService := service.NewCartService(mockRepo)

		mockRepo.On("Load", ctx, "u1").Return(nil, nil).Once()
		cartService.Attach(ctx, "s1", "u1")

		mockRepo.On("Save", ctx, "u1", mock.Anything).Return(errors.New("redis unreachable")).Once()

		state := cartService.AddItem(ctx, "s1", gauze())

		require.Len(t, state.Items, 1)
		mockRepo.AssertExpectations(t)
	})
}

func TestCartServiceClear(t *testing.T) {
	ctx := context.Background()

	t.Run("ClearCart Leaves The Record In Place", func(t *testing.T) {
		mockRepo := new(mockCartRepository)
		cartService := service.NewCartService(mockRepo)

		mockRepo.On("Load", ctx, "u1").Return(nil, nil).Once()
		mockRepo.On("Save", ctx, "u1", mock.Anything).Return(nil).Once()

		cartService.Attach(ctx, "s1", "u1")
		cartService.AddItem(ctx, "s1", gauze())

		state := cartService.ClearCart(ctx, "s1")

		assert.Empty(t, state.Items)
		mockRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("ClearCartCompletely Erases The Record", func(t *testing.T) {
		mockRepo := new(mockCartRepository)
		cartService := service.NewCartService(mockRepo)

		mockRepo.On("Load", ctx, "u1").Return(nil, nil).Once()
		mockRepo.On("Save", ctx, "u1", mock.Anything).Return(nil).Once()
		mockRepo.On("Delete", ctx, "u1").Return(nil).Once()

		cartService.Attach(ctx, "s1", "u1")
		cartService.AddItem(ctx, "s1", gauze())

		state := cartService.ClearCartCompletely(ctx, "s1")

		assert.Empty(t, state.Items)
		mockRepo.AssertExpectations(t)
	})

	t.Run("ClearCartCompletely Anonymous Touches Nothing", func(t *testing.T) {
		mockRepo := new(mockCartRepository)
		cartService := service.NewCartService(mockRepo)

		cartService.AddItem(ctx, "s1", gauze())

		state := cartService.ClearCartCompletely(ctx, "s1")

		assert.Empty(t, state.Items)
		mockRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})
}

func TestCartServiceDetach(t *testing.T) {
	ctx := context.Background()

	mockRepo := new(mockCartRepository)
	cartService := service.NewCartService(mockRepo)

	mockRepo.On("Load", ctx, "u1").Return(nil, nil).Once()
	mockRepo.On("Save", ctx, "u1", mock.Anything).Return(nil).Once()

	cartService.Attach(ctx, "s1", "u1")
	cartService.AddItem(ctx, "s1", gauze())

	state := cartService.Detach(ctx, "s1")

	assert.Empty(t, state.Items, "sign-out clears the session cart")
	mockRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)

	// Mutations after detach are anonymous again.
	cartService.AddItem(ctx, "s1", gauze())
	mockRepo.AssertNumberOfCalls(t, "Save", 1)
}

func TestCartServiceLoadCart(t *testing.T) {
	ctx := context.Background()

	mockRepo := new(mockCartRepository)
	cartService := service.NewCartService(mockRepo)

	cartService.AddItem(ctx, "s1", gauze())

	replacement := models.EmptyCart().
		AddItem(models.CartLineItem{Name: "Family Kit", Price: 599, Category: "kits", Size: "M"})

	state := cartService.LoadCart(ctx, "s1", replacement)

	assert.Equal(t, replacement, state, "load replaces state wholesale")
	assert.Equal(t, replacement, cartService.GetCart(ctx, "s1"))
}
