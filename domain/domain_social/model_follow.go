package domain_social

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Follow is a one-directional edge. Unique per (follower_id, followee_id).
type Follow struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	FollowerID string             `bson:"follower_id" json:"follower_id"`
	FolloweeID string             `bson:"followee_id" json:"followee_id"`
	CreatedAt  time.Time          `bson:"created_at" json:"created_at"`
}

const (
	FriendRequestPending  = "pending"
	FriendRequestAccepted = "accepted"
	FriendRequestDeclined = "declined"
)

type FriendRequest struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	RequesterID string             `bson:"requester_id" json:"requester_id"`
	RecipientID string             `bson:"recipient_id" json:"recipient_id"`
	Status      string             `bson:"status" json:"status"`
	CreatedAt   time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at" json:"updated_at"`
}
