package domain

const (
	CollectionCatalogGame = "catalog_games"
)

const (
	CollectionInteractionLibrary = "interaction_library_entries"
)
const (
	CollectionInteractionReview = "interaction_reviews"
)

const (
	CollectionSocialFollow = "social_follows"
)
const (
	CollectionSocialFriendRequest = "social_friend_requests"
)
const (
	CollectionSocialNotification = "social_notifications"
)
const (
	CollectionSocialFeedback = "social_feedback"
)
