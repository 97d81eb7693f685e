package service

import (
	"context"

	"shanyraq/internal/models"
	"shanyraq/internal/repository"
)

const maxCommentLen = 10000

type CommentService struct {
	commentRepo repository.CommentRepository
	listingRepo repository.ListingRepository
}

type AddCommentInput struct {
	AuthorID  uint
	ListingID uint
	Content   string
}

type UpdateCommentInput struct {
	ActorID   uint
	ListingID uint
	CommentID uint
	Content   string
}

type DeleteCommentInput struct {
	ActorID   uint
	ListingID uint
	CommentID uint
}

func NewCommentService(
	commentRepo repository.CommentRepository,
	listingRepo repository.ListingRepository,
) *CommentService {
	return &CommentService{
		commentRepo: commentRepo,
		listingRepo: listingRepo,
	}
}

func (s *CommentService) AddComment(ctx context.Context, in AddCommentInput) (*models.Comment, error) {
	if _, err := s.listingRepo.GetByID(ctx, in.ListingID); err != nil {
		return nil, err
	}

	if in.Content == "" {
		return nil, models.NewValidationError("Content is required")
	}
	if len(in.Content) > maxCommentLen {
		return nil, models.NewValidationError("Comment too long (max 10000 characters)")
	}

	comment := &models.Comment{
		Content:   in.Content,
		ListingID: in.ListingID,
		AuthorID:  in.AuthorID,
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}

	return comment, nil
}

func (s *CommentService) ListComments(ctx context.Context, listingID uint) ([]*models.Comment, error) {
	if _, err := s.listingRepo.GetByID(ctx, listingID); err != nil {
		return nil, err
	}
	return s.commentRepo.ListByListing(ctx, listingID)
}

// UpdateComment changes a comment's content. Only the author may edit.
func (s *CommentService) UpdateComment(ctx context.Context, in UpdateCommentInput) (*models.Comment, error) {
	comment, err := s.commentRepo.GetByListing(ctx, in.ListingID, in.CommentID)
	if err != nil {
		return nil, err
	}

	if comment.AuthorID != in.ActorID {
		return nil, models.NewForbiddenError("You can only update your own comments")
	}
	if in.Content == "" {
		return nil, models.NewValidationError("Content is required")
	}
	if len(in.Content) > maxCommentLen {
		return nil, models.NewValidationError("Comment too long (max 10000 characters)")
	}

	comment.Content = in.Content
	if err := s.commentRepo.Update(ctx, comment); err != nil {
		return nil, err
	}

	return comment, nil
}

// DeleteComment removes a comment. The author or the listing owner may delete.
func (s *CommentService) DeleteComment(ctx context.Context, in DeleteCommentInput) error {
	comment, err := s.commentRepo.GetByListing(ctx, in.ListingID, in.CommentID)
	if err != nil {
		return err
	}

	if comment.AuthorID != in.ActorID {
		listing, listingErr := s.listingRepo.GetByID(ctx, in.ListingID)
		if listingErr != nil {
			return listingErr
		}
		if listing.UserID != in.ActorID {
			return models.NewForbiddenError("You can only delete your own comments or comments on your listings")
		}
	}

	return s.commentRepo.Delete(ctx, in.CommentID)
}
