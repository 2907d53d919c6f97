package usecase_social

import (
	"context"
	"fmt"
	"time"

	"github.com/spotlight-app/spotlight-backend/domain/domain_social"
	"go.uber.org/zap"
)

const notificationPageLimit = 50

type SocialUsecase struct {
	followRepo       domain_social.FollowRepository
	requestRepo      domain_social.FriendRequestRepository
	notificationRepo domain_social.NotificationRepository
	logger           *zap.Logger
	timeout          time.Duration
}

func NewSocialUsecase(
	followRepo domain_social.FollowRepository,
	requestRepo domain_social.FriendRequestRepository,
	notificationRepo domain_social.NotificationRepository,
	logger *zap.Logger,
	timeout time.Duration,
) *SocialUsecase {
	return &SocialUsecase{
		followRepo:       followRepo,
		requestRepo:      requestRepo,
		notificationRepo: notificationRepo,
		logger:           logger,
		timeout:          timeout,
	}
}

func (uc *SocialUsecase) Follow(ctx context.Context, followerID, followeeID string) error {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	if followerID == followeeID {
		return domain_social.ErrSelfTarget
	}
	exists, err := uc.followRepo.Exists(ctx, followerID, followeeID)
	if err != nil {
		return fmt.Errorf("follow check failed: %w", err)
	}
	if exists {
		return domain_social.ErrAlreadyFollowing
	}

	if err := uc.followRepo.Create(ctx, &domain_social.Follow{
		FollowerID: followerID,
		FolloweeID: followeeID,
	}); err != nil {
		return fmt.Errorf("follow create failed: %w", err)
	}

	// Notification delivery is best effort. The follow itself already
	// committed.
	if err := uc.notificationRepo.Create(ctx, &domain_social.Notification{
		UserID: followeeID,
		Type:   domain_social.NotificationNewFollower,
		Payload: map[string]string{
			"follower_id": followerID,
		},
	}); err != nil {
		uc.logger.Warn("new-follower notification failed",
			zap.String("followee_id", followeeID), zap.Error(err))
	}
	return nil
}

func (uc *SocialUsecase) Unfollow(ctx context.Context, followerID, followeeID string) error {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	exists, err := uc.followRepo.Exists(ctx, followerID, followeeID)
	if err != nil {
		return fmt.Errorf("follow check failed: %w", err)
	}
	if !exists {
		return domain_social.ErrNotFollowing
	}
	if err := uc.followRepo.Delete(ctx, followerID, followeeID); err != nil {
		return fmt.Errorf("unfollow failed: %w", err)
	}
	return nil
}

func (uc *SocialUsecase) GetFollowing(ctx context.Context, userID string) ([]domain_social.Follow, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	follows, err := uc.followRepo.GetFollowing(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("following query failed: %w", err)
	}
	return follows, nil
}

func (uc *SocialUsecase) GetFollowers(ctx context.Context, userID string) ([]domain_social.Follow, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	follows, err := uc.followRepo.GetFollowers(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("followers query failed: %w", err)
	}
	return follows, nil
}

func (uc *SocialUsecase) SendFriendRequest(ctx context.Context, requesterID, recipientID string) error {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	if requesterID == recipientID {
		return domain_social.ErrSelfTarget
	}
	pending, err := uc.requestRepo.ExistsPending(ctx, requesterID, recipientID)
	if err != nil {
		return fmt.Errorf("friend request check failed: %w", err)
	}
	if pending {
		return domain_social.ErrDuplicateRequest
	}

	request := &domain_social.FriendRequest{
		RequesterID: requesterID,
		RecipientID: recipientID,
		Status:      domain_social.FriendRequestPending,
	}
	if err := uc.requestRepo.Create(ctx, request); err != nil {
		return fmt.Errorf("friend request create failed: %w", err)
	}

	if err := uc.notificationRepo.Create(ctx, &domain_social.Notification{
		UserID: recipientID,
		Type:   domain_social.NotificationFriendRequest,
		Payload: map[string]string{
			"requester_id": requesterID,
			"request_id":   request.ID.Hex(),
		},
	}); err != nil {
		uc.logger.Warn("friend-request notification failed",
			zap.String("recipient_id", recipientID), zap.Error(err))
	}
	return nil
}

// ResolveFriendRequest moves a pending request to accepted or declined.
// Accepting creates follow edges both ways, skipping any that already exist.
func (uc *SocialUsecase) ResolveFriendRequest(ctx context.Context, userID, requestID string, accept bool) error {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	request, err := uc.requestRepo.GetByID(ctx, requestID)
	if err != nil {
		return domain_social.ErrRequestNotFound
	}
	if request.RecipientID != userID {
		return domain_social.ErrNotRecipient
	}
	if request.Status != domain_social.FriendRequestPending {
		return domain_social.ErrRequestResolved
	}

	status := domain_social.FriendRequestDeclined
	if accept {
		status = domain_social.FriendRequestAccepted
	}
	if err := uc.requestRepo.UpdateStatus(ctx, requestID, status); err != nil {
		return fmt.Errorf("friend request update failed: %w", err)
	}

	if accept {
		uc.ensureFollow(ctx, request.RequesterID, request.RecipientID)
		uc.ensureFollow(ctx, request.RecipientID, request.RequesterID)
	}
	return nil
}

func (uc *SocialUsecase) GetPendingFriendRequests(ctx context.Context, userID string) ([]domain_social.FriendRequest, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	requests, err := uc.requestRepo.GetPendingForUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("pending request query failed: %w", err)
	}
	return requests, nil
}

func (uc *SocialUsecase) GetNotifications(ctx context.Context, userID string, unreadOnly bool) ([]domain_social.Notification, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	notifications, err := uc.notificationRepo.GetByUser(ctx, userID, unreadOnly, notificationPageLimit)
	if err != nil {
		return nil, fmt.Errorf("notification query failed: %w", err)
	}
	return notifications, nil
}

func (uc *SocialUsecase) MarkNotificationRead(ctx context.Context, userID, id string) error {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	if err := uc.notificationRepo.MarkRead(ctx, userID, id); err != nil {
		return fmt.Errorf("notification mark-read failed: %w", err)
	}
	return nil
}

func (uc *SocialUsecase) MarkAllNotificationsRead(ctx context.Context, userID string) error {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	if err := uc.notificationRepo.MarkAllRead(ctx, userID); err != nil {
		return fmt.Errorf("notification mark-all-read failed: %w", err)
	}
	return nil
}

func (uc *SocialUsecase) ensureFollow(ctx context.Context, followerID, followeeID string) {
	exists, err := uc.followRepo.Exists(ctx, followerID, followeeID)
	if err == nil && !exists {
		err = uc.followRepo.Create(ctx, &domain_social.Follow{
			FollowerID: followerID,
			FolloweeID: followeeID,
		})
	}
	if err != nil {
		uc.logger.Warn("mutual follow edge failed",
			zap.String("follower_id", followerID),
			zap.String("followee_id", followeeID), zap.Error(err))
	}
}
