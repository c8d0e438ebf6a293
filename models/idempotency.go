package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// IdempotencyKey stores the first completed response for a form post carrying
// an Idempotency-Key header, so retried submissions replay instead of
// inserting a second vendor row.
type IdempotencyKey struct {
	Id             string         `json:"id" gorm:"primaryKey"`
	Key            string         `json:"key" gorm:"size:128;uniqueIndex"` // header value
	RequestHash    string         `json:"request_hash" gorm:"size:64"`     // sha256 of method|path(|body)
	Method         string         `json:"method" gorm:"size:10"`
	Path           string         `json:"path" gorm:"size:255"`
	ResponseStatus int            `json:"response_status"` // 0 => not completed yet
	ResponseBody   datatypes.JSON `json:"-" gorm:"type:jsonb"`
	CreatedAt      time.Time      `json:"created_at"`
	CompletedAt    *time.Time     `json:"completed_at"`
}

func (k *IdempotencyKey) BeforeCreate(tx *gorm.DB) (err error) {
	// UUID version 4
	k.Id = uuid.NewString()
	return
}
