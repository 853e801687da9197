package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Review struct {
	BaseModel
	ProductID uuid.UUID `gorm:"type:uuid;not null;index" json:"productId"`
	UserID    uuid.UUID `gorm:"type:uuid;not null" json:"userId"`
	Message   string    `gorm:"type:varchar(500);not null" json:"message"`
	Timestamp int64     `gorm:"not null" json:"timestamp"` // epoch millis, regenerated on edit
}

func (r *Review) BeforeCreate(tx *gorm.DB) (err error) {
	if err = r.BaseModel.BeforeCreate(tx); err != nil {
		return err
	}
	if r.Timestamp == 0 {
		r.Timestamp = time.Now().UnixMilli()
	}
	return
}
