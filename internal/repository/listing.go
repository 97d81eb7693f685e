package repository

import (
	"context"
	"errors"

	"shanyraq/internal/cache"
	"shanyraq/internal/models"
	"shanyraq/internal/observability"

	"gorm.io/gorm"
)

// ListingFilter holds the optional browse filters; all present filters are
// AND-combined.
type ListingFilter struct {
	Type       string
	RoomsCount *int
	PriceFrom  *int
	PriceUntil *int
}

// ListingRepository defines the interface for listing data operations
type ListingRepository interface {
	Create(ctx context.Context, listing *models.Listing) error
	GetByID(ctx context.Context, id uint) (*models.Listing, error)
	List(ctx context.Context, filter ListingFilter, limit, offset int) ([]models.ListingSummary, int64, error)
	Update(ctx context.Context, listing *models.Listing) error
	Delete(ctx context.Context, id uint) error
}

type listingRepository struct {
	db *gorm.DB
}

// NewListingRepository creates a new listing repository
func NewListingRepository(db *gorm.DB) ListingRepository {
	return &listingRepository{db: db}
}

func (r *listingRepository) Create(ctx context.Context, listing *models.Listing) error {
	defer observability.TrackQuery("insert", "listings")()
	if err := r.db.WithContext(ctx).Create(listing).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

// GetByID loads the listing and recomputes TotalComments on every call.
// Only the row itself goes through the cache; the comment count is always
// a fresh query so the detail view never shows a stale count.
func (r *listingRepository) GetByID(ctx context.Context, id uint) (*models.Listing, error) {
	var listing models.Listing
	key := cache.ListingKey(id)

	err := cache.Aside(ctx, key, &listing, cache.ListingTTL, func() error {
		if err := r.db.WithContext(ctx).First(&listing, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.NewNotFoundError("Listing", id)
			}
			return models.NewInternalError(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	var total int64
	if err := r.db.WithContext(ctx).Model(&models.Comment{}).
		Where("listing_id = ?", id).
		Count(&total).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	listing.TotalComments = int(total)

	return &listing, nil
}

// applyFilter appends WHERE clauses for every filter that is present.
func (r *listingRepository) applyFilter(db *gorm.DB, filter ListingFilter) *gorm.DB {
	if filter.Type != "" {
		db = db.Where("type = ?", filter.Type)
	}
	if filter.RoomsCount != nil {
		db = db.Where("rooms_count = ?", *filter.RoomsCount)
	}
	if filter.PriceFrom != nil {
		db = db.Where("price >= ?", *filter.PriceFrom)
	}
	if filter.PriceUntil != nil {
		db = db.Where("price <= ?", *filter.PriceUntil)
	}
	return db
}

// List returns one page of listing summaries plus the total number of rows
// matching the filter before pagination.
func (r *listingRepository) List(ctx context.Context, filter ListingFilter, limit, offset int) ([]models.ListingSummary, int64, error) {
	defer observability.TrackQuery("select", "listings")()

	var total int64
	if err := r.applyFilter(r.db.WithContext(ctx).Model(&models.Listing{}), filter).
		Count(&total).Error; err != nil {
		return nil, 0, models.NewInternalError(err)
	}

	items := make([]models.ListingSummary, 0, limit)
	err := r.applyFilter(r.db.WithContext(ctx).Model(&models.Listing{}), filter).
		Select("id, type, price, address, area, rooms_count, user_id").
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Scan(&items).Error
	if err != nil {
		return nil, 0, models.NewInternalError(err)
	}

	return items, total, nil
}

func (r *listingRepository) Update(ctx context.Context, listing *models.Listing) error {
	if err := r.db.WithContext(ctx).Save(listing).Error; err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidateListing(ctx, listing.ID)
	return nil
}

// Delete removes the listing, its comments and its favorite relations in one
// transaction.
func (r *listingRepository) Delete(ctx context.Context, id uint) error {
	defer observability.TrackQuery("delete", "listings")()

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("listing_id = ?", id).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("listing_id = ?", id).Delete(&models.Favorite{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Listing{}, id).Error
	})
	if err != nil {
		return models.NewInternalError(err)
	}

	cache.InvalidateListing(ctx, id)
	return nil
}
