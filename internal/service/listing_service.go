package service

import (
	"context"

	"shanyraq/internal/models"
	"shanyraq/internal/repository"
)

const (
	// Browse pagination bounds. Out-of-range values are rejected, not clamped.
	DefaultListLimit = 10
	MaxListLimit     = 100

	maxListingFieldLen = 500
)

type ListingService struct {
	listingRepo repository.ListingRepository
}

type CreateListingInput struct {
	OwnerID     uint
	Type        string
	Price       int
	Address     string
	Area        *float64
	RoomsCount  *int
	Description *string
}

// UpdateListingInput carries a partial listing update. Nil fields are left
// untouched.
type UpdateListingInput struct {
	ActorID     uint
	ListingID   uint
	Type        *string
	Price       *int
	Address     *string
	Area        *float64
	RoomsCount  *int
	Description *string
}

type ListListingsInput struct {
	Filter repository.ListingFilter
	Limit  int
	Offset int
}

func NewListingService(listingRepo repository.ListingRepository) *ListingService {
	return &ListingService{listingRepo: listingRepo}
}

func (s *ListingService) CreateListing(ctx context.Context, in CreateListingInput) (*models.Listing, error) {
	if in.Type == "" {
		return nil, models.NewValidationError("Type is required")
	}
	if in.Address == "" {
		return nil, models.NewValidationError("Address is required")
	}
	if in.Price < 0 {
		return nil, models.NewValidationError("Price must not be negative")
	}
	if len(in.Type) > maxListingFieldLen || len(in.Address) > maxListingFieldLen {
		return nil, models.NewValidationError("Type and address must not exceed 500 characters")
	}
	if in.RoomsCount != nil && *in.RoomsCount < 0 {
		return nil, models.NewValidationError("Rooms count must not be negative")
	}
	if in.Area != nil && *in.Area < 0 {
		return nil, models.NewValidationError("Area must not be negative")
	}

	listing := &models.Listing{
		Type:        in.Type,
		Price:       in.Price,
		Address:     in.Address,
		Area:        in.Area,
		RoomsCount:  in.RoomsCount,
		Description: in.Description,
		UserID:      in.OwnerID,
	}
	if err := s.listingRepo.Create(ctx, listing); err != nil {
		return nil, err
	}

	return listing, nil
}

func (s *ListingService) GetListing(ctx context.Context, id uint) (*models.Listing, error) {
	return s.listingRepo.GetByID(ctx, id)
}

func (s *ListingService) ListListings(ctx context.Context, in ListListingsInput) (*models.ListingPage, error) {
	if in.Limit < 1 || in.Limit > MaxListLimit {
		return nil, models.NewValidationError("Limit must be between 1 and 100")
	}
	if in.Offset < 0 {
		return nil, models.NewValidationError("Offset must not be negative")
	}

	items, total, err := s.listingRepo.List(ctx, in.Filter, in.Limit, in.Offset)
	if err != nil {
		return nil, err
	}

	return &models.ListingPage{Total: total, Items: items}, nil
}

func (s *ListingService) UpdateListing(ctx context.Context, in UpdateListingInput) (*models.Listing, error) {
	listing, err := s.listingRepo.GetByID(ctx, in.ListingID)
	if err != nil {
		return nil, err
	}

	if listing.UserID != in.ActorID {
		return nil, models.NewForbiddenError("You can only update your own listings")
	}

	if in.Type != nil {
		if *in.Type == "" {
			return nil, models.NewValidationError("Type must not be empty")
		}
		listing.Type = *in.Type
	}
	if in.Price != nil {
		if *in.Price < 0 {
			return nil, models.NewValidationError("Price must not be negative")
		}
		listing.Price = *in.Price
	}
	if in.Address != nil {
		if *in.Address == "" {
			return nil, models.NewValidationError("Address must not be empty")
		}
		listing.Address = *in.Address
	}
	if in.Area != nil {
		if *in.Area < 0 {
			return nil, models.NewValidationError("Area must not be negative")
		}
		listing.Area = in.Area
	}
	if in.RoomsCount != nil {
		if *in.RoomsCount < 0 {
			return nil, models.NewValidationError("Rooms count must not be negative")
		}
		listing.RoomsCount = in.RoomsCount
	}
	if in.Description != nil {
		listing.Description = in.Description
	}

	if err := s.listingRepo.Update(ctx, listing); err != nil {
		return nil, err
	}

	return listing, nil
}

func (s *ListingService) DeleteListing(ctx context.Context, actorID, listingID uint) error {
	listing, err := s.listingRepo.GetByID(ctx, listingID)
	if err != nil {
		return err
	}

	if listing.UserID != actorID {
		return models.NewForbiddenError("You can only delete your own listings")
	}

	return s.listingRepo.Delete(ctx, listingID)
}
