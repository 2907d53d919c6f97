package controller_social

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/spotlight-app/spotlight-backend/api/controller"
	"github.com/spotlight-app/spotlight-backend/api/middleware"
	"github.com/spotlight-app/spotlight-backend/domain/domain_social"
	"github.com/spotlight-app/spotlight-backend/usecase/usecase_social"
)

type SocialController struct {
	usecase *usecase_social.SocialUsecase
}

func NewSocialController(uc *usecase_social.SocialUsecase) *SocialController {
	return &SocialController{usecase: uc}
}

func socialErrorResponse(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain_social.ErrSelfTarget),
		errors.Is(err, domain_social.ErrAlreadyFollowing),
		errors.Is(err, domain_social.ErrNotFollowing),
		errors.Is(err, domain_social.ErrDuplicateRequest),
		errors.Is(err, domain_social.ErrRequestResolved):
		controller.ErrorResponse(c, http.StatusConflict, "SOCIAL_CONFLICT", err.Error())
	case errors.Is(err, domain_social.ErrRequestNotFound):
		controller.ErrorResponse(c, http.StatusNotFound, "REQUEST_NOT_FOUND", err.Error())
	case errors.Is(err, domain_social.ErrNotRecipient):
		controller.ErrorResponse(c, http.StatusForbidden, "NOT_RECIPIENT", err.Error())
	default:
		controller.ErrorResponse(c, http.StatusInternalServerError, "SOCIAL_ERROR", err.Error())
	}
}

func (ctrl *SocialController) Follow(c *gin.Context) {
	var req struct {
		FolloweeID string `json:"followee_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		controller.ErrorResponse(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	userID := c.GetString(middleware.ContextUserKey)
	if err := ctrl.usecase.Follow(c.Request.Context(), userID, req.FolloweeID); err != nil {
		socialErrorResponse(c, err)
		return
	}
	controller.SuccessResponse(c, http.StatusOK, gin.H{"following": req.FolloweeID})
}

func (ctrl *SocialController) Unfollow(c *gin.Context) {
	followeeID := c.Param("followee_id")
	userID := c.GetString(middleware.ContextUserKey)

	if err := ctrl.usecase.Unfollow(c.Request.Context(), userID, followeeID); err != nil {
		socialErrorResponse(c, err)
		return
	}
	controller.SuccessResponse(c, http.StatusOK, gin.H{"unfollowed": followeeID})
}

func (ctrl *SocialController) GetFollowing(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserKey)

	follows, err := ctrl.usecase.GetFollowing(c.Request.Context(), userID)
	if err != nil {
		socialErrorResponse(c, err)
		return
	}
	controller.SuccessResponse(c, http.StatusOK, follows)
}

func (ctrl *SocialController) GetFollowers(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserKey)

	follows, err := ctrl.usecase.GetFollowers(c.Request.Context(), userID)
	if err != nil {
		socialErrorResponse(c, err)
		return
	}
	controller.SuccessResponse(c, http.StatusOK, follows)
}

func (ctrl *SocialController) SendFriendRequest(c *gin.Context) {
	var req struct {
		RecipientID string `json:"recipient_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		controller.ErrorResponse(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	userID := c.GetString(middleware.ContextUserKey)
	if err := ctrl.usecase.SendFriendRequest(c.Request.Context(), userID, req.RecipientID); err != nil {
		socialErrorResponse(c, err)
		return
	}
	controller.SuccessResponse(c, http.StatusOK, gin.H{"requested": req.RecipientID})
}

func (ctrl *SocialController) ResolveFriendRequest(c *gin.Context) {
	var req struct {
		Accept bool `json:"accept"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		controller.ErrorResponse(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	userID := c.GetString(middleware.ContextUserKey)
	requestID := c.Param("request_id")
	if err := ctrl.usecase.ResolveFriendRequest(c.Request.Context(), userID, requestID, req.Accept); err != nil {
		socialErrorResponse(c, err)
		return
	}
	controller.SuccessResponse(c, http.StatusOK, gin.H{"resolved": requestID})
}

func (ctrl *SocialController) GetPendingFriendRequests(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserKey)

	requests, err := ctrl.usecase.GetPendingFriendRequests(c.Request.Context(), userID)
	if err != nil {
		socialErrorResponse(c, err)
		return
	}
	controller.SuccessResponse(c, http.StatusOK, requests)
}

func (ctrl *SocialController) GetNotifications(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserKey)
	unreadOnly := c.Query("unread") == "true"

	notifications, err := ctrl.usecase.GetNotifications(c.Request.Context(), userID, unreadOnly)
	if err != nil {
		socialErrorResponse(c, err)
		return
	}
	controller.SuccessResponse(c, http.StatusOK, notifications)
}

func (ctrl *SocialController) MarkNotificationRead(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserKey)
	id := c.Param("id")

	if err := ctrl.usecase.MarkNotificationRead(c.Request.Context(), userID, id); err != nil {
		socialErrorResponse(c, err)
		return
	}
	controller.SuccessResponse(c, http.StatusOK, gin.H{"read": id})
}

func (ctrl *SocialController) MarkAllNotificationsRead(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserKey)

	if err := ctrl.usecase.MarkAllNotificationsRead(c.Request.Context(), userID); err != nil {
		socialErrorResponse(c, err)
		return
	}
	controller.SuccessResponse(c, http.StatusOK, gin.H{"read": "all"})
}
