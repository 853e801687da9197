package repository

import (
	"funkopop-api/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ReviewRepository interface {
	Create(review *model.Review) error
	FindByID(id uuid.UUID) (*model.Review, error)
	FindByProduct(productID uuid.UUID, limit int) ([]model.Review, error)
	Update(review *model.Review) error
	Delete(id uuid.UUID) error
}

type reviewRepo struct {
	db *gorm.DB
}

func NewReviewRepo(db *gorm.DB) ReviewRepository {
	return &reviewRepo{db}
}

func (r *reviewRepo) Create(review *model.Review) error {
	return r.db.Create(review).Error
}

func (r *reviewRepo) FindByID(id uuid.UUID) (*model.Review, error) {
	var review model.Review
	err := r.db.First(&review, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &review, nil
}

func (r *reviewRepo) FindByProduct(productID uuid.UUID, limit int) ([]model.Review, error) {
	var reviews []model.Review
	err := r.db.Where("product_id = ?", productID).Limit(limit).Find(&reviews).Error
	return reviews, err
}

func (r *reviewRepo) Update(review *model.Review) error {
	return r.db.Save(review).Error
}

func (r *reviewRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&model.Review{}, "id = ?", id).Error
}
