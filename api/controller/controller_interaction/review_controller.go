package controller_interaction

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/spotlight-app/spotlight-backend/api/controller"
	"github.com/spotlight-app/spotlight-backend/api/middleware"
	"github.com/spotlight-app/spotlight-backend/domain/domain_catalog"
	"github.com/spotlight-app/spotlight-backend/domain/domain_interaction"
	"github.com/spotlight-app/spotlight-backend/usecase/usecase_interaction"
)

type ReviewController struct {
	usecase *usecase_interaction.ReviewUsecase
}

func NewReviewController(uc *usecase_interaction.ReviewUsecase) *ReviewController {
	return &ReviewController{usecase: uc}
}

func (ctrl *ReviewController) SubmitReview(c *gin.Context) {
	var req struct {
		AppID      int64  `json:"app_id" binding:"required"`
		IsPositive bool   `json:"is_positive"`
		Score      int    `json:"score"`
		Body       string `json:"body"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		controller.ErrorResponse(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	review := &domain_interaction.ReviewEntry{
		UserID:     c.GetString(middleware.ContextUserKey),
		AppID:      req.AppID,
		IsPositive: req.IsPositive,
		Score:      req.Score,
		Body:       req.Body,
	}
	if err := ctrl.usecase.SubmitReview(c.Request.Context(), review); err != nil {
		switch {
		case errors.Is(err, domain_interaction.ErrInvalidScore),
			errors.Is(err, domain_interaction.ErrEmptyReview):
			controller.ErrorResponse(c, http.StatusBadRequest, "INVALID_REVIEW", err.Error())
		case errors.Is(err, domain_catalog.ErrGameNotFound):
			controller.ErrorResponse(c, http.StatusNotFound, "GAME_NOT_FOUND", err.Error())
		default:
			controller.ErrorResponse(c, http.StatusInternalServerError, "REVIEW_ERROR", err.Error())
		}
		return
	}
	controller.SuccessResponse(c, http.StatusOK, review)
}

func (ctrl *ReviewController) RemoveReview(c *gin.Context) {
	appID, err := strconv.ParseInt(c.Param("app_id"), 10, 64)
	if err != nil {
		controller.ErrorResponse(c, http.StatusBadRequest, "INVALID_APP_ID", "app_id must be an integer")
		return
	}

	userID := c.GetString(middleware.ContextUserKey)
	if err := ctrl.usecase.RemoveReview(c.Request.Context(), userID, appID); err != nil {
		controller.ErrorResponse(c, http.StatusInternalServerError, "REVIEW_ERROR", err.Error())
		return
	}
	controller.SuccessResponse(c, http.StatusOK, gin.H{"removed": appID})
}

func (ctrl *ReviewController) GetGameReviews(c *gin.Context) {
	appID, err := strconv.ParseInt(c.Param("app_id"), 10, 64)
	if err != nil {
		controller.ErrorResponse(c, http.StatusBadRequest, "INVALID_APP_ID", "app_id must be an integer")
		return
	}
	page, _ := strconv.ParseInt(c.DefaultQuery("page", "1"), 10, 64)
	pageSize, _ := strconv.ParseInt(c.DefaultQuery("page_size", "20"), 10, 64)

	reviews, err := ctrl.usecase.GetGameReviews(c.Request.Context(), appID, page, pageSize)
	if err != nil {
		controller.ErrorResponse(c, http.StatusInternalServerError, "REVIEW_ERROR", err.Error())
		return
	}
	controller.SuccessResponse(c, http.StatusOK, reviews)
}
