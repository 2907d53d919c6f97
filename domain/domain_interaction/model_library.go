package domain_interaction

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	LibraryStatusWishlist  = "wishlist"
	LibraryStatusPlaying   = "playing"
	LibraryStatusCompleted = "completed"
	LibraryStatusDropped   = "dropped"
)

// LibraryEntry is one user's relationship to one game.
// Unique per (user_id, app_id), enforced by a compound index.
type LibraryEntry struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	UserID       string             `bson:"user_id" json:"user_id"`
	AppID        int64              `bson:"app_id" json:"app_id"`
	Status       string             `bson:"status" json:"status"`
	IsFavorite   bool               `bson:"is_favorite" json:"is_favorite"`
	IsPlatinumed bool               `bson:"is_platinumed" json:"is_platinumed"`
	HoursPlayed  float64            `bson:"hours_played" json:"hours_played"` // 0 = not reported
	UpdatedAt    time.Time          `bson:"updated_at" json:"updated_at"`
}

func ValidLibraryStatus(status string) bool {
	switch status {
	case LibraryStatusWishlist, LibraryStatusPlaying, LibraryStatusCompleted, LibraryStatusDropped:
		return true
	}
	return false
}
