package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LogEntry is one recorded eating event: a per-user, per-day row holding a
// macro snapshot scaled by quantity. Entries are immutable once created; the
// day key is assigned at write time and never recomputed.
type LogEntry struct {
	ID        uuid.UUID `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`

	UserID  uint   `gorm:"index:idx_log_user_day;not null" json:"userId"`
	DateKey string `gorm:"index:idx_log_user_day;not null" json:"dateKey"` // YYYY-MM-DD in the reference zone

	FoodID *uint  `json:"foodId,omitempty"` // optional catalog reference
	Name   string `json:"name"`

	Cal     float64 `json:"cal"`
	Protein float64 `json:"protein"`
	Carbs   float64 `json:"carbs"`
	Fat     float64 `json:"fat"`

	Qty      float64 `gorm:"default:1" json:"qty"`
	Servings float64 `gorm:"default:1" json:"servings"`
}

func (e *LogEntry) BeforeCreate(tx *gorm.DB) (err error) {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return
}
