package domain_catalog

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// GameRecord is one Steam catalog entry as synced from the storefront API.
// Numeric fields default to 0 when the storefront omits them.
type GameRecord struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	AppID           int64              `bson:"app_id" json:"app_id"`
	Title           string             `bson:"title" json:"title"`
	TitlePinyinFull string             `bson:"title_pinyin_full" json:"-"` // derived search key for CJK titles
	Genre           string             `bson:"genre" json:"genre"`         // free text, may be comma-joined
	Tags            []string           `bson:"tags" json:"tags"`
	ActivePlayers   int64              `bson:"active_players" json:"active_players"`
	CommunityRating int                `bson:"community_rating" json:"community_rating"` // percent 0-100
	PriceCents      int64              `bson:"price_cents" json:"price_cents"`
	Currency        string             `bson:"currency" json:"currency"`
	DiscountPercent int                `bson:"discount_percent" json:"discount_percent"`
	HeaderImage     string             `bson:"header_image" json:"header_image"`
	CapsuleImage    string             `bson:"capsule_image" json:"capsule_image"`
	ReleaseDate     string             `bson:"release_date" json:"release_date"`
	UpdatedAt       time.Time          `bson:"updated_at" json:"-"`
}
