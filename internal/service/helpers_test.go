package service

import (
	"context"
	"testing"

	"shanyraq/internal/models"
	"shanyraq/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertAppErrorCode(t *testing.T, err error, code string) {
	t.Helper()
	require.Error(t, err)
	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, code, appErr.Code)
}

func assertValidationError(t *testing.T, err error) {
	t.Helper()
	assertAppErrorCode(t, err, models.CodeValidation)
}

func assertForbiddenError(t *testing.T, err error) {
	t.Helper()
	assertAppErrorCode(t, err, models.CodeForbidden)
}

func assertNotFoundError(t *testing.T, err error) {
	t.Helper()
	assertAppErrorCode(t, err, models.CodeNotFound)
}

// userRepoStub is a stub for repository.UserRepository.
type userRepoStub struct {
	getByIDFn       func(context.Context, uint) (*models.User, error)
	getByUsernameFn func(context.Context, string) (*models.User, error)
	createFn        func(context.Context, *models.User) error
	updateFn        func(context.Context, *models.User) error
	deleteFn        func(context.Context, uint) error
}

func (s *userRepoStub) GetByID(ctx context.Context, id uint) (*models.User, error) {
	return s.getByIDFn(ctx, id)
}
func (s *userRepoStub) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	return s.getByUsernameFn(ctx, username)
}
func (s *userRepoStub) Create(ctx context.Context, user *models.User) error {
	return s.createFn(ctx, user)
}
func (s *userRepoStub) Update(ctx context.Context, user *models.User) error {
	return s.updateFn(ctx, user)
}
func (s *userRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}

func noopUserRepo() *userRepoStub {
	return &userRepoStub{
		getByIDFn:       func(_ context.Context, id uint) (*models.User, error) { return &models.User{ID: id}, nil },
		getByUsernameFn: func(_ context.Context, _ string) (*models.User, error) { return nil, nil },
		createFn:        func(_ context.Context, _ *models.User) error { return nil },
		updateFn:        func(_ context.Context, _ *models.User) error { return nil },
		deleteFn:        func(_ context.Context, _ uint) error { return nil },
	}
}

// listingRepoStub is a stub for repository.ListingRepository.
type listingRepoStub struct {
	createFn  func(context.Context, *models.Listing) error
	getByIDFn func(context.Context, uint) (*models.Listing, error)
	listFn    func(context.Context, repository.ListingFilter, int, int) ([]models.ListingSummary, int64, error)
	updateFn  func(context.Context, *models.Listing) error
	deleteFn  func(context.Context, uint) error
}

func (s *listingRepoStub) Create(ctx context.Context, listing *models.Listing) error {
	return s.createFn(ctx, listing)
}
func (s *listingRepoStub) GetByID(ctx context.Context, id uint) (*models.Listing, error) {
	return s.getByIDFn(ctx, id)
}
func (s *listingRepoStub) List(ctx context.Context, filter repository.ListingFilter, limit, offset int) ([]models.ListingSummary, int64, error) {
	return s.listFn(ctx, filter, limit, offset)
}
func (s *listingRepoStub) Update(ctx context.Context, listing *models.Listing) error {
	return s.updateFn(ctx, listing)
}
func (s *listingRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}

func noopListingRepo() *listingRepoStub {
	return &listingRepoStub{
		createFn: func(_ context.Context, _ *models.Listing) error { return nil },
		getByIDFn: func(_ context.Context, id uint) (*models.Listing, error) {
			return &models.Listing{ID: id, UserID: 1}, nil
		},
		listFn: func(_ context.Context, _ repository.ListingFilter, _, _ int) ([]models.ListingSummary, int64, error) {
			return nil, 0, nil
		},
		updateFn: func(_ context.Context, _ *models.Listing) error { return nil },
		deleteFn: func(_ context.Context, _ uint) error { return nil },
	}
}

// commentRepoStub is a stub for repository.CommentRepository.
type commentRepoStub struct {
	createFn        func(context.Context, *models.Comment) error
	getByListingFn  func(context.Context, uint, uint) (*models.Comment, error)
	listByListingFn func(context.Context, uint) ([]*models.Comment, error)
	updateFn        func(context.Context, *models.Comment) error
	deleteFn        func(context.Context, uint) error
}

func (s *commentRepoStub) Create(ctx context.Context, comment *models.Comment) error {
	return s.createFn(ctx, comment)
}
func (s *commentRepoStub) GetByListing(ctx context.Context, listingID, commentID uint) (*models.Comment, error) {
	return s.getByListingFn(ctx, listingID, commentID)
}
func (s *commentRepoStub) ListByListing(ctx context.Context, listingID uint) ([]*models.Comment, error) {
	return s.listByListingFn(ctx, listingID)
}
func (s *commentRepoStub) Update(ctx context.Context, comment *models.Comment) error {
	return s.updateFn(ctx, comment)
}
func (s *commentRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}

func noopCommentRepo() *commentRepoStub {
	return &commentRepoStub{
		createFn: func(_ context.Context, _ *models.Comment) error { return nil },
		getByListingFn: func(_ context.Context, listingID, commentID uint) (*models.Comment, error) {
			return &models.Comment{ID: commentID, ListingID: listingID, AuthorID: 1}, nil
		},
		listByListingFn: func(_ context.Context, _ uint) ([]*models.Comment, error) { return nil, nil },
		updateFn:        func(_ context.Context, _ *models.Comment) error { return nil },
		deleteFn:        func(_ context.Context, _ uint) error { return nil },
	}
}

// favoriteRepoStub is a stub for repository.FavoriteRepository.
type favoriteRepoStub struct {
	addFn        func(context.Context, uint, uint) error
	removeFn     func(context.Context, uint, uint) error
	listByUserFn func(context.Context, uint) ([]models.FavoriteListing, error)
}

func (s *favoriteRepoStub) Add(ctx context.Context, userID, listingID uint) error {
	return s.addFn(ctx, userID, listingID)
}
func (s *favoriteRepoStub) Remove(ctx context.Context, userID, listingID uint) error {
	return s.removeFn(ctx, userID, listingID)
}
func (s *favoriteRepoStub) ListByUser(ctx context.Context, userID uint) ([]models.FavoriteListing, error) {
	return s.listByUserFn(ctx, userID)
}

func noopFavoriteRepo() *favoriteRepoStub {
	return &favoriteRepoStub{
		addFn:        func(_ context.Context, _, _ uint) error { return nil },
		removeFn:     func(_ context.Context, _, _ uint) error { return nil },
		listByUserFn: func(_ context.Context, _ uint) ([]models.FavoriteListing, error) { return nil, nil },
	}
}
