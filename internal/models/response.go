package models

import (
	"time"

	"github.com/magi8101/form-builder/internal/schema"
)

type Response struct {
	ID        uint              `gorm:"primaryKey" json:"id"`
	FormID    uint              `gorm:"not null;index" json:"form_id"`
	Form      Form              `gorm:"foreignKey:FormID;constraint:OnDelete:CASCADE" json:"-"`
	Answers   schema.AnswerList `gorm:"type:jsonb;not null;default:'[]'" json:"answers"`
	CreatedAt time.Time         `json:"created_at"`
}
