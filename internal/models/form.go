package models

import (
	"time"

	"github.com/magi8101/form-builder/internal/schema"
)

type Form struct {
	ID          uint                `gorm:"primaryKey" json:"id"`
	UserID      uint                `gorm:"not null;index" json:"user_id"`
	User        User                `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Title       string              `gorm:"size:255;not null" json:"title"`
	Description string              `gorm:"type:text" json:"description"`
	Questions   schema.QuestionList `gorm:"type:jsonb;not null;default:'[]'" json:"questions"`
	Published   bool                `gorm:"not null;default:false" json:"published"`
	CreatedAt   time.Time           `json:"created_at"`
	UpdatedAt   time.Time           `json:"updated_at"`
}
