package domain_interaction

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ReviewEntry is one user's review of one game.
// Unique per (user_id, app_id). Score 0 means the user left no star rating,
// in which case IsPositive carries the signal.
type ReviewEntry struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	UserID     string             `bson:"user_id" json:"user_id"`
	AppID      int64              `bson:"app_id" json:"app_id"`
	IsPositive bool               `bson:"is_positive" json:"is_positive"`
	Score      int                `bson:"score" json:"score"` // 1-5, 0 = absent
	Body       string             `bson:"body" json:"body"`
	CreatedAt  time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt  time.Time          `bson:"updated_at" json:"updated_at"`
}
