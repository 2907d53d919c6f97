package domain_discover

import (
	"github.com/spotlight-app/spotlight-backend/domain/domain_catalog"
)

// CuratedEntry is one row of the shipped curation list. Match holds the
// lowercase substrings the entry may claim a catalog title by.
type CuratedEntry struct {
	Label string   `json:"label"`
	Match []string `json:"match"`
}

// RecommendedGame is a catalog record plus the affinity score that ranked it.
type RecommendedGame struct {
	domain_catalog.GameRecord
	RecommendationScore float64  `json:"recommendation_score"`
	MatchedTags         []string `json:"matched_tags"`
}

// RankedGame is a catalog record tagged with how it entered the ranking.
type RankedGame struct {
	domain_catalog.GameRecord
	IsCurated bool `json:"is_curated"`
}
