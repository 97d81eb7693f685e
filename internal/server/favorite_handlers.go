package server

import (
	"shanyraq/internal/models"

	"github.com/gofiber/fiber/v2"
)

// AddFavorite bookmarks a listing for the authenticated user. Re-adding an
// existing favorite succeeds without a duplicate.
func (s *Server) AddFavorite(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return models.RespondWithError(c, fiber.StatusUnauthorized,
			models.NewUnauthorizedError("Authorization required"))
	}

	listingID, err := parseID(c, "id")
	if err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest, err)
	}

	if err := s.favoriteService.AddFavorite(c.Context(), userID, listingID); err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{"message": "Added to favorites"})
}

// GetFavorites returns the authenticated user's favorite listings in the
// order they were added.
func (s *Server) GetFavorites(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return models.RespondWithError(c, fiber.StatusUnauthorized,
			models.NewUnauthorizedError("Authorization required"))
	}

	favorites, err := s.favoriteService.ListFavorites(c.Context(), userID)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{"shanyraks": favorites})
}

// RemoveFavorite drops a bookmark. Removing an absent favorite succeeds.
func (s *Server) RemoveFavorite(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return models.RespondWithError(c, fiber.StatusUnauthorized,
			models.NewUnauthorizedError("Authorization required"))
	}

	listingID, err := parseID(c, "id")
	if err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest, err)
	}

	if err := s.favoriteService.RemoveFavorite(c.Context(), userID, listingID); err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{"message": "Removed from favorites"})
}
