package domain_social

import "context"

type FollowRepository interface {
	Create(ctx context.Context, follow *Follow) error
	Delete(ctx context.Context, followerID, followeeID string) error
	GetFollowing(ctx context.Context, followerID string) ([]Follow, error)
	GetFollowers(ctx context.Context, followeeID string) ([]Follow, error)
	Exists(ctx context.Context, followerID, followeeID string) (bool, error)
}

type FriendRequestRepository interface {
	Create(ctx context.Context, request *FriendRequest) error
	UpdateStatus(ctx context.Context, id string, status string) error
	GetByID(ctx context.Context, id string) (*FriendRequest, error)
	GetPendingForUser(ctx context.Context, recipientID string) ([]FriendRequest, error)
	ExistsPending(ctx context.Context, requesterID, recipientID string) (bool, error)
}

type NotificationRepository interface {
	Create(ctx context.Context, notification *Notification) error
	CreateMany(ctx context.Context, notifications []*Notification) error
	GetByUser(ctx context.Context, userID string, unreadOnly bool, limit int64) ([]Notification, error)
	MarkRead(ctx context.Context, userID string, id string) error
	MarkAllRead(ctx context.Context, userID string) error
}

type FeedbackRepository interface {
	Create(ctx context.Context, feedback *Feedback) error
	GetAll(ctx context.Context, skip, limit int64) ([]Feedback, error)
}
