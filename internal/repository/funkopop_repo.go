package repository

import (
	"funkopop-api/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type FunkoPopRepository interface {
	Create(pop *model.FunkoPop) error
	FindAll() ([]model.FunkoPop, error)
	FindByID(id uuid.UUID) (*model.FunkoPop, error)
	Update(pop *model.FunkoPop) error
	Delete(id uuid.UUID) error
}

type funkoPopRepo struct {
	db *gorm.DB
}

func NewFunkoPopRepo(db *gorm.DB) FunkoPopRepository {
	return &funkoPopRepo{db}
}

func (r *funkoPopRepo) Create(pop *model.FunkoPop) error {
	return r.db.Create(pop).Error
}

func (r *funkoPopRepo) FindAll() ([]model.FunkoPop, error) {
	var pops []model.FunkoPop
	err := r.db.Preload("Reviews").Find(&pops).Error
	return pops, err
}

func (r *funkoPopRepo) FindByID(id uuid.UUID) (*model.FunkoPop, error) {
	var pop model.FunkoPop
	err := r.db.Preload("Reviews").First(&pop, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &pop, nil
}

func (r *funkoPopRepo) Update(pop *model.FunkoPop) error {
	return r.db.Save(pop).Error
}

// Delete removes the record only. Its reviews are left in place on purpose;
// review listing queries by product reference, not through this record.
func (r *funkoPopRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&model.FunkoPop{}, "id = ?", id).Error
}
