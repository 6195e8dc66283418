package tests

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"tastebite/internal/domain"
	"tastebite/internal/mocks"
	"tastebite/internal/service"
)

func TestFavoriteService_ToggleTwiceRestoresState(t *testing.T) {
	store := mocks.NewStateStore(t)
	store.On("Save", mock.Anything, "favorites", mock.Anything).Return(nil).Times(2)

	svc := service.NewFavoriteService(store)
	ctx := context.Background()

	assert.True(t, svc.Toggle(ctx, "1"))
	assert.True(t, svc.IsFavorite("1"))

	assert.False(t, svc.Toggle(ctx, "1"))
	assert.False(t, svc.IsFavorite("1"))
	assert.Empty(t, svc.List())
}

func TestFavoriteService_UniqueMembership(t *testing.T) {
	store := mocks.NewStateStore(t)
	store.On("Save", mock.Anything, "favorites", mock.Anything).Return(nil)

	svc := service.NewFavoriteService(store)
	ctx := context.Background()

	svc.Toggle(ctx, "1")
	svc.Toggle(ctx, "2")
	svc.Toggle(ctx, "1")
	svc.Toggle(ctx, "1")

	assert.Equal(t, []string{"2", "1"}, svc.List())
}

func TestReviewService_AddPrependsNewestFirst(t *testing.T) {
	store := mocks.NewStateStore(t)
	store.On("Save", mock.Anything, "reviews", mock.Anything).Return(nil).Times(2)

	ids := mocks.NewIDProvider(t)
	ids.On("ReviewID").Return("rev-1").Once()
	ids.On("ReviewID").Return("rev-2").Once()

	svc := service.NewReviewService(store, ids)
	ctx := context.Background()

	_, err := svc.Add(ctx, domain.Review{RestaurantID: "1", UserName: "Alice", Rating: 5, Comment: "Great!"})
	assert.NoError(t, err)
	_, err = svc.Add(ctx, domain.Review{RestaurantID: "1", UserName: "Bob", Rating: 3, Comment: "Okay"})
	assert.NoError(t, err)

	reviews := svc.ListByRestaurant("1")
	assert.Len(t, reviews, 2)
	assert.Equal(t, "rev-2", reviews[0].ID)
	assert.Equal(t, "rev-1", reviews[1].ID)
	assert.Empty(t, svc.ListByRestaurant("2"))
}

func TestReviewService_RejectsInvalidRating(t *testing.T) {
	svc := service.NewReviewService(mocks.NewStateStore(t), mocks.NewIDProvider(t))
	ctx := context.Background()

	for _, rating := range []int{0, -1, 6} {
		_, err := svc.Add(ctx, domain.Review{RestaurantID: "1", Rating: rating})
		assert.ErrorIs(t, err, service.ErrInvalidRating)
	}
}

func TestAccountService_LoginLogout(t *testing.T) {
	store := mocks.NewStateStore(t)
	store.On("Save", mock.Anything, "user", mock.Anything).Return(nil).Once()
	store.On("Delete", mock.Anything, "user").Return(nil).Once()

	svc := service.NewAccountService(store)
	ctx := context.Background()

	user, err := svc.Login(ctx, "Alice Smith", "alice@example.com")
	assert.NoError(t, err)
	assert.Equal(t, "Alice Smith", user.Name)
	assert.Contains(t, user.Avatar, "alice@example.com")

	current := svc.Current()
	assert.NotNil(t, current)
	assert.Equal(t, "alice@example.com", current.Email)

	svc.Logout(ctx)
	assert.Nil(t, svc.Current())
}

func TestAccountService_LoginRequiresNameAndEmail(t *testing.T) {
	svc := service.NewAccountService(mocks.NewStateStore(t))

	_, err := svc.Login(context.Background(), "", "alice@example.com")
	assert.ErrorIs(t, err, service.ErrInvalidCredentials)
	_, err = svc.Login(context.Background(), "Alice", "")
	assert.ErrorIs(t, err, service.ErrInvalidCredentials)
}

// A failed load for one collection must not block the others from
// hydrating: each starts empty on its own.
func TestHydration_FailureIsIsolatedPerCollection(t *testing.T) {
	store := mocks.NewStateStore(t)
	store.On("Load", mock.Anything, "favorites").Return(nil, errors.New("corrupt")).Once()
	store.On("Load", mock.Anything, "reviews").Return([]byte(`[]`), nil).Once()

	favorites := service.NewFavoriteService(store)
	reviews := service.NewReviewService(store, mocks.NewIDProvider(t))

	assert.Error(t, favorites.Hydrate(context.Background()))
	assert.NoError(t, reviews.Hydrate(context.Background()))
	assert.Empty(t, favorites.List())
}
