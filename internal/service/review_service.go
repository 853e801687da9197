package service

import (
	"errors"
	"time"

	"funkopop-api/internal/apperror"
	"funkopop-api/internal/model"
	"funkopop-api/internal/repository"
	"funkopop-api/internal/ws"
	"funkopop-api/pkg/validator"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Listing returns at most this many reviews per funko pop
const reviewListLimit = 10

var reviewRules = []validator.Field{
	{
		Name: "message",
		Checks: []validator.Check{
			{Tag: "required", Message: "Message cannot be empty"},
			{Tag: "min=4", Message: "Message has to be atleast 4 characters long"},
			{Tag: "max=500", Message: "Message cannot be more than 500 characters long"},
		},
	},
}

type ReviewService interface {
	Create(productID string, userID uuid.UUID, payload map[string]interface{}) (*model.Review, error)
	ListForProduct(productID string) ([]model.Review, error)
	Edit(productID, reviewID string, caller *model.User, payload map[string]interface{}) (*model.Review, error)
	Delete(productID, reviewID string, caller *model.User) (*model.Review, error)
}

type reviewService struct {
	reviewRepo repository.ReviewRepository
	popRepo    repository.FunkoPopRepository
	wsHub      *ws.Hub
}

func NewReviewService(reviewRepo repository.ReviewRepository, popRepo repository.FunkoPopRepository, hub *ws.Hub) ReviewService {
	return &reviewService{
		reviewRepo: reviewRepo,
		popRepo:    popRepo,
		wsHub:      hub,
	}
}

// Create checks the parent funko pop before validating the body; a missing
// parent wins over an invalid message.
func (s *reviewService) Create(productID string, userID uuid.UUID, payload map[string]interface{}) (*model.Review, error) {
	popID, err := s.lookupProduct(productID)
	if err != nil {
		return nil, err
	}

	if errs := validator.Validate(payload, reviewRules); len(errs) > 0 {
		return nil, apperror.Validation(errs)
	}

	review := &model.Review{
		ProductID: popID,
		UserID:    userID,
		Message:   trimmed(payload["message"]),
		Timestamp: time.Now().UnixMilli(),
	}

	if err := s.reviewRepo.Create(review); err != nil {
		return nil, err
	}

	s.wsHub.PublishEvent("review_created", review)
	return review, nil
}

func (s *reviewService) ListForProduct(productID string) ([]model.Review, error) {
	popID, err := s.lookupProduct(productID)
	if err != nil {
		return nil, err
	}
	return s.reviewRepo.FindByProduct(popID, reviewListLimit)
}

// Edit is author-only; not even an admin may edit another user's review.
func (s *reviewService) Edit(productID, reviewID string, caller *model.User, payload map[string]interface{}) (*model.Review, error) {
	if _, err := s.lookupProduct(productID); err != nil {
		return nil, err
	}

	review, err := s.lookupReview(reviewID)
	if err != nil {
		return nil, err
	}

	if review.UserID != caller.ID {
		return nil, apperror.Forbidden()
	}

	if errs := validator.Validate(payload, reviewRules); len(errs) > 0 {
		return nil, apperror.Validation(errs)
	}

	review.Message = trimmed(payload["message"])
	review.Timestamp = time.Now().UnixMilli()

	if err := s.reviewRepo.Update(review); err != nil {
		return nil, err
	}

	s.wsHub.PublishEvent("review_updated", review)
	return review, nil
}

// Delete permits the author or an admin. The funko pop's review list is not
// touched; listing queries by product reference and stops finding the record.
func (s *reviewService) Delete(productID, reviewID string, caller *model.User) (*model.Review, error) {
	if _, err := s.lookupProduct(productID); err != nil {
		return nil, err
	}

	review, err := s.lookupReview(reviewID)
	if err != nil {
		return nil, err
	}

	if !caller.IsAdmin() && review.UserID != caller.ID {
		return nil, apperror.Forbidden()
	}

	if err := s.reviewRepo.Delete(review.ID); err != nil {
		return nil, err
	}

	s.wsHub.PublishEvent("review_deleted", review)
	return review, nil
}

func (s *reviewService) lookupProduct(productID string) (uuid.UUID, error) {
	popID, err := parseID(productID)
	if err != nil {
		return uuid.Nil, err
	}
	if _, err := s.popRepo.FindByID(popID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return uuid.Nil, apperror.FunkoPopNotFound()
		}
		return uuid.Nil, err
	}
	return popID, nil
}

func (s *reviewService) lookupReview(reviewID string) (*model.Review, error) {
	id, err := parseID(reviewID)
	if err != nil {
		return nil, err
	}
	review, err := s.reviewRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.ReviewNotFound()
		}
		return nil, err
	}
	return review, nil
}
