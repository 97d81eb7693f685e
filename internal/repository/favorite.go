package repository

import (
	"context"
	"errors"

	"shanyraq/internal/models"

	"gorm.io/gorm"
)

// FavoriteRepository defines persistence operations for the user-listing
// bookmark relation. Add and Remove are idempotent.
type FavoriteRepository interface {
	Add(ctx context.Context, userID, listingID uint) error
	Remove(ctx context.Context, userID, listingID uint) error
	ListByUser(ctx context.Context, userID uint) ([]models.FavoriteListing, error)
}

type favoriteRepository struct {
	db *gorm.DB
}

// NewFavoriteRepository returns a new FavoriteRepository implementation.
func NewFavoriteRepository(db *gorm.DB) FavoriteRepository {
	return &favoriteRepository{db: db}
}

// Add creates the relation if it does not exist yet; re-adding is a no-op.
func (r *favoriteRepository) Add(ctx context.Context, userID, listingID uint) error {
	var existing models.Favorite
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND listing_id = ?", userID, listingID).
		First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return models.NewInternalError(err)
	}

	favorite := &models.Favorite{UserID: userID, ListingID: listingID}
	if createErr := r.db.WithContext(ctx).Create(favorite).Error; createErr != nil {
		// A concurrent Add can win the race; the unique index makes that a no-op too.
		if isUniqueConstraintError(createErr) {
			return nil
		}
		return models.NewInternalError(createErr)
	}
	return nil
}

// Remove deletes the relation; removing an absent favorite is a no-op.
func (r *favoriteRepository) Remove(ctx context.Context, userID, listingID uint) error {
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND listing_id = ?", userID, listingID).
		Delete(&models.Favorite{}).Error
	if err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

// ListByUser returns {id, address} projections of the user's bookmarked
// listings, oldest bookmark first.
func (r *favoriteRepository) ListByUser(ctx context.Context, userID uint) ([]models.FavoriteListing, error) {
	items := make([]models.FavoriteListing, 0)
	err := r.db.WithContext(ctx).
		Model(&models.Favorite{}).
		Select("listings.id, listings.address").
		Joins("JOIN listings ON listings.id = favorites.listing_id").
		Where("favorites.user_id = ?", userID).
		Order("favorites.created_at asc").
		Scan(&items).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return items, nil
}
