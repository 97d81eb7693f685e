package service

import (
	"context"

	"shanyraq/internal/models"
	"shanyraq/internal/repository"
)

type FavoriteService struct {
	favoriteRepo repository.FavoriteRepository
	listingRepo  repository.ListingRepository
}

func NewFavoriteService(
	favoriteRepo repository.FavoriteRepository,
	listingRepo repository.ListingRepository,
) *FavoriteService {
	return &FavoriteService{
		favoriteRepo: favoriteRepo,
		listingRepo:  listingRepo,
	}
}

// AddFavorite bookmarks the listing for the user. Re-adding succeeds without
// creating a duplicate relation.
func (s *FavoriteService) AddFavorite(ctx context.Context, userID, listingID uint) error {
	if _, err := s.listingRepo.GetByID(ctx, listingID); err != nil {
		return err
	}
	return s.favoriteRepo.Add(ctx, userID, listingID)
}

// RemoveFavorite drops the bookmark. Removing an absent favorite succeeds.
func (s *FavoriteService) RemoveFavorite(ctx context.Context, userID, listingID uint) error {
	if _, err := s.listingRepo.GetByID(ctx, listingID); err != nil {
		return err
	}
	return s.favoriteRepo.Remove(ctx, userID, listingID)
}

func (s *FavoriteService) ListFavorites(ctx context.Context, userID uint) ([]models.FavoriteListing, error) {
	return s.favoriteRepo.ListByUser(ctx, userID)
}
