package route

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spotlight-app/spotlight-backend/api/controller/controller_social"
	"github.com/spotlight-app/spotlight-backend/bootstrap"
	"github.com/spotlight-app/spotlight-backend/domain"
	"github.com/spotlight-app/spotlight-backend/mongo"
	"github.com/spotlight-app/spotlight-backend/repository/repository_social"
	"github.com/spotlight-app/spotlight-backend/usecase/usecase_social"
	"go.uber.org/zap"
)

func NewSocialRouter(timeout time.Duration, db mongo.Database, logger *zap.Logger, group *gin.RouterGroup) {
	followRepo := repository_social.NewFollowRepository(db, domain.CollectionSocialFollow)
	requestRepo := repository_social.NewFriendRequestRepository(db, domain.CollectionSocialFriendRequest)
	notificationRepo := repository_social.NewNotificationRepository(db, domain.CollectionSocialNotification)

	socialUsecase := usecase_social.NewSocialUsecase(followRepo, requestRepo, notificationRepo, logger, timeout)
	ctrl := controller_social.NewSocialController(socialUsecase)

	group.POST("/social/follows", ctrl.Follow)
	group.DELETE("/social/follows/:followee_id", ctrl.Unfollow)
	group.GET("/social/following", ctrl.GetFollowing)
	group.GET("/social/followers", ctrl.GetFollowers)

	group.POST("/social/friend-requests", ctrl.SendFriendRequest)
	group.POST("/social/friend-requests/:request_id/resolve", ctrl.ResolveFriendRequest)
	group.GET("/social/friend-requests", ctrl.GetPendingFriendRequests)

	group.GET("/notifications", ctrl.GetNotifications)
	group.POST("/notifications/:id/read", ctrl.MarkNotificationRead)
	group.POST("/notifications/read-all", ctrl.MarkAllNotificationsRead)
}

func NewFeedbackRouter(env *bootstrap.Env, timeout time.Duration, db mongo.Database, group *gin.RouterGroup) {
	feedbackRepo := repository_social.NewFeedbackRepository(db, domain.CollectionSocialFeedback)

	feedbackUsecase := usecase_social.NewFeedbackUsecase(feedbackRepo, env.AdminPrincipalSet(), timeout)
	ctrl := controller_social.NewFeedbackController(feedbackUsecase)

	group.POST("/feedback", ctrl.Submit)
	group.GET("/feedback", ctrl.GetInbox)
}
