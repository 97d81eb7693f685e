package server

import (
	"strconv"

	"shanyraq/internal/middleware"
	"shanyraq/internal/models"
	"shanyraq/internal/repository"
	"shanyraq/internal/service"

	"github.com/gofiber/fiber/v2"
)

type createListingRequest struct {
	Type        string   `json:"type"`
	Price       *int     `json:"price"`
	Address     string   `json:"address"`
	Area        *float64 `json:"area"`
	RoomsCount  *int     `json:"rooms_count"`
	Description *string  `json:"description"`
}

type updateListingRequest struct {
	Type        *string  `json:"type"`
	Price       *int     `json:"price"`
	Address     *string  `json:"address"`
	Area        *float64 `json:"area"`
	RoomsCount  *int     `json:"rooms_count"`
	Description *string  `json:"description"`
}

// CreateListing publishes a new listing owned by the authenticated user.
func (s *Server) CreateListing(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return models.RespondWithError(c, fiber.StatusUnauthorized,
			models.NewUnauthorizedError("Authorization required"))
	}

	var req createListingRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	if req.Price == nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Price is required"))
	}

	listing, err := s.listingService.CreateListing(c.Context(), service.CreateListingInput{
		OwnerID:     userID,
		Type:        req.Type,
		Price:       *req.Price,
		Address:     req.Address,
		Area:        req.Area,
		RoomsCount:  req.RoomsCount,
		Description: req.Description,
	})
	if err != nil {
		return respondServiceError(c, err)
	}

	middleware.Logger.InfoContext(c.UserContext(), "listing created",
		"listing_id", listing.ID, "user_id", userID)
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"id": listing.ID})
}

// GetListings returns a filtered, paginated page of listing summaries.
func (s *Server) GetListings(c *fiber.Ctx) error {
	limit, offset, err := parsePagination(c)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest, err)
	}

	filter := repository.ListingFilter{Type: c.Query("type")}
	if raw := c.Query("rooms_count"); raw != "" {
		n, convErr := strconv.Atoi(raw)
		if convErr != nil {
			return models.RespondWithError(c, fiber.StatusBadRequest,
				models.NewValidationError("Invalid rooms_count parameter"))
		}
		filter.RoomsCount = &n
	}
	if raw := c.Query("price_from"); raw != "" {
		n, convErr := strconv.Atoi(raw)
		if convErr != nil {
			return models.RespondWithError(c, fiber.StatusBadRequest,
				models.NewValidationError("Invalid price_from parameter"))
		}
		filter.PriceFrom = &n
	}
	if raw := c.Query("price_until"); raw != "" {
		n, convErr := strconv.Atoi(raw)
		if convErr != nil {
			return models.RespondWithError(c, fiber.StatusBadRequest,
				models.NewValidationError("Invalid price_until parameter"))
		}
		filter.PriceUntil = &n
	}

	page, err := s.listingService.ListListings(c.Context(), service.ListListingsInput{
		Filter: filter,
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(page)
}

// GetListing returns the full listing detail, including its comment count.
func (s *Server) GetListing(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest, err)
	}

	listing, err := s.listingService.GetListing(c.Context(), id)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(listing)
}

// UpdateListing applies a partial update to a listing. Only the owner may
// update.
func (s *Server) UpdateListing(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return models.RespondWithError(c, fiber.StatusUnauthorized,
			models.NewUnauthorizedError("Authorization required"))
	}

	id, err := parseID(c, "id")
	if err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest, err)
	}

	var req updateListingRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	listing, err := s.listingService.UpdateListing(c.Context(), service.UpdateListingInput{
		ActorID:     userID,
		ListingID:   id,
		Type:        req.Type,
		Price:       req.Price,
		Address:     req.Address,
		Area:        req.Area,
		RoomsCount:  req.RoomsCount,
		Description: req.Description,
	})
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(listing)
}

// DeleteListing removes a listing and its comments and favorites. Only the
// owner may delete.
func (s *Server) DeleteListing(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return models.RespondWithError(c, fiber.StatusUnauthorized,
			models.NewUnauthorizedError("Authorization required"))
	}

	id, err := parseID(c, "id")
	if err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest, err)
	}

	if err := s.listingService.DeleteListing(c.Context(), userID, id); err != nil {
		return respondServiceError(c, err)
	}

	middleware.Logger.InfoContext(c.UserContext(), "listing deleted",
		"listing_id", id, "user_id", userID)
	return c.SendStatus(fiber.StatusNoContent)
}
