package service

import (
	"context"
	"strings"
	"testing"

	"shanyraq/internal/models"
	"shanyraq/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListingService_CreateListing_Validation(t *testing.T) {
	t.Parallel()

	svc := NewListingService(noopListingRepo())
	ctx := context.Background()

	negative := -1
	negativeArea := -12.5

	tests := []struct {
		name  string
		input CreateListingInput
	}{
		{"missing type", CreateListingInput{OwnerID: 1, Price: 100, Address: "Almaty"}},
		{"missing address", CreateListingInput{OwnerID: 1, Type: "sell", Price: 100}},
		{"negative price", CreateListingInput{OwnerID: 1, Type: "sell", Price: -1, Address: "Almaty"}},
		{"type too long", CreateListingInput{OwnerID: 1, Type: strings.Repeat("x", 501), Price: 100, Address: "Almaty"}},
		{"negative rooms", CreateListingInput{OwnerID: 1, Type: "sell", Price: 100, Address: "Almaty", RoomsCount: &negative}},
		{"negative area", CreateListingInput{OwnerID: 1, Type: "sell", Price: 100, Address: "Almaty", Area: &negativeArea}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := svc.CreateListing(ctx, tt.input)
			assertValidationError(t, err)
		})
	}
}

func TestListingService_CreateListing_Success(t *testing.T) {
	t.Parallel()

	repo := noopListingRepo()
	repo.createFn = func(_ context.Context, l *models.Listing) error {
		l.ID = 42
		return nil
	}
	svc := NewListingService(repo)

	rooms := 2
	listing, err := svc.CreateListing(context.Background(), CreateListingInput{
		OwnerID:    7,
		Type:       "rent",
		Price:      180_000,
		Address:    "Almaty, Abay 10",
		RoomsCount: &rooms,
	})
	require.NoError(t, err)
	assert.Equal(t, uint(42), listing.ID)
	assert.Equal(t, uint(7), listing.UserID)
	assert.Equal(t, "rent", listing.Type)
}

func TestListingService_ListListings_Pagination(t *testing.T) {
	t.Parallel()

	svc := NewListingService(noopListingRepo())
	ctx := context.Background()

	t.Run("zero limit is rejected", func(t *testing.T) {
		t.Parallel()
		_, err := svc.ListListings(ctx, ListListingsInput{Limit: 0})
		assertValidationError(t, err)
	})

	t.Run("limit above maximum is rejected", func(t *testing.T) {
		t.Parallel()
		_, err := svc.ListListings(ctx, ListListingsInput{Limit: 101})
		assertValidationError(t, err)
	})

	t.Run("negative offset is rejected", func(t *testing.T) {
		t.Parallel()
		_, err := svc.ListListings(ctx, ListListingsInput{Limit: 10, Offset: -1})
		assertValidationError(t, err)
	})

	t.Run("filters and bounds are passed through", func(t *testing.T) {
		t.Parallel()
		repo := noopListingRepo()
		var gotFilter repository.ListingFilter
		var gotLimit, gotOffset int
		repo.listFn = func(_ context.Context, f repository.ListingFilter, limit, offset int) ([]models.ListingSummary, int64, error) {
			gotFilter, gotLimit, gotOffset = f, limit, offset
			return []models.ListingSummary{{ID: 1}}, 25, nil
		}
		svc2 := NewListingService(repo)

		rooms := 3
		page, err := svc2.ListListings(ctx, ListListingsInput{
			Filter: repository.ListingFilter{Type: "sell", RoomsCount: &rooms},
			Limit:  20,
			Offset: 40,
		})
		require.NoError(t, err)
		assert.Equal(t, int64(25), page.Total)
		assert.Len(t, page.Items, 1)
		assert.Equal(t, "sell", gotFilter.Type)
		assert.Equal(t, 20, gotLimit)
		assert.Equal(t, 40, gotOffset)
	})
}

func TestListingService_UpdateListing(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("non-owner cannot update", func(t *testing.T) {
		t.Parallel()
		repo := noopListingRepo()
		repo.getByIDFn = func(_ context.Context, id uint) (*models.Listing, error) {
			return &models.Listing{ID: id, UserID: 10}, nil
		}
		svc := NewListingService(repo)
		newType := "rent"
		_, err := svc.UpdateListing(ctx, UpdateListingInput{ActorID: 1, ListingID: 1, Type: &newType})
		assertForbiddenError(t, err)
	})

	t.Run("missing listing propagates not found", func(t *testing.T) {
		t.Parallel()
		repo := noopListingRepo()
		repo.getByIDFn = func(_ context.Context, id uint) (*models.Listing, error) {
			return nil, models.NewNotFoundError("Listing", id)
		}
		svc := NewListingService(repo)
		_, err := svc.UpdateListing(ctx, UpdateListingInput{ActorID: 1, ListingID: 99})
		assertNotFoundError(t, err)
	})

	t.Run("nil fields are left untouched", func(t *testing.T) {
		t.Parallel()
		area := 54.5
		repo := noopListingRepo()
		repo.getByIDFn = func(_ context.Context, id uint) (*models.Listing, error) {
			return &models.Listing{ID: id, UserID: 1, Type: "sell", Price: 100, Address: "Almaty", Area: &area}, nil
		}
		var saved *models.Listing
		repo.updateFn = func(_ context.Context, l *models.Listing) error {
			saved = l
			return nil
		}
		svc := NewListingService(repo)

		newPrice := 200
		listing, err := svc.UpdateListing(ctx, UpdateListingInput{ActorID: 1, ListingID: 1, Price: &newPrice})
		require.NoError(t, err)
		assert.Equal(t, 200, listing.Price)
		assert.Equal(t, "sell", listing.Type)
		assert.Equal(t, "Almaty", listing.Address)
		require.NotNil(t, saved.Area)
		assert.Equal(t, 54.5, *saved.Area)
	})

	t.Run("empty type in update is invalid", func(t *testing.T) {
		t.Parallel()
		svc := NewListingService(noopListingRepo())
		empty := ""
		_, err := svc.UpdateListing(ctx, UpdateListingInput{ActorID: 1, ListingID: 1, Type: &empty})
		assertValidationError(t, err)
	})

	t.Run("negative price in update is invalid", func(t *testing.T) {
		t.Parallel()
		svc := NewListingService(noopListingRepo())
		price := -5
		_, err := svc.UpdateListing(ctx, UpdateListingInput{ActorID: 1, ListingID: 1, Price: &price})
		assertValidationError(t, err)
	})
}

func TestListingService_DeleteListing(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("owner can delete", func(t *testing.T) {
		t.Parallel()
		repo := noopListingRepo()
		deleted := false
		repo.deleteFn = func(_ context.Context, _ uint) error {
			deleted = true
			return nil
		}
		svc := NewListingService(repo)
		require.NoError(t, svc.DeleteListing(ctx, 1, 5))
		assert.True(t, deleted)
	})

	t.Run("non-owner is forbidden", func(t *testing.T) {
		t.Parallel()
		repo := noopListingRepo()
		repo.getByIDFn = func(_ context.Context, id uint) (*models.Listing, error) {
			return &models.Listing{ID: id, UserID: 10}, nil
		}
		svc := NewListingService(repo)
		err := svc.DeleteListing(ctx, 1, 5)
		assertForbiddenError(t, err)
	})
}
