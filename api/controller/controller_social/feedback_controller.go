package controller_social

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/spotlight-app/spotlight-backend/api/controller"
	"github.com/spotlight-app/spotlight-backend/api/middleware"
	"github.com/spotlight-app/spotlight-backend/domain/domain_social"
	"github.com/spotlight-app/spotlight-backend/usecase/usecase_social"
)

type FeedbackController struct {
	usecase *usecase_social.FeedbackUsecase
}

func NewFeedbackController(uc *usecase_social.FeedbackUsecase) *FeedbackController {
	return &FeedbackController{usecase: uc}
}

func (ctrl *FeedbackController) Submit(c *gin.Context) {
	var req struct {
		Subject string `json:"subject"`
		Body    string `json:"body" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		controller.ErrorResponse(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	feedback := &domain_social.Feedback{
		UserID:  c.GetString(middleware.ContextUserKey),
		Subject: req.Subject,
		Body:    req.Body,
	}
	if err := ctrl.usecase.Submit(c.Request.Context(), feedback); err != nil {
		controller.ErrorResponse(c, http.StatusInternalServerError, "FEEDBACK_ERROR", err.Error())
		return
	}
	controller.SuccessResponse(c, http.StatusCreated, feedback)
}

func (ctrl *FeedbackController) GetInbox(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserKey)
	page, _ := strconv.ParseInt(c.DefaultQuery("page", "1"), 10, 64)
	pageSize, _ := strconv.ParseInt(c.DefaultQuery("page_size", "50"), 10, 64)

	feedback, err := ctrl.usecase.GetInbox(c.Request.Context(), userID, page, pageSize)
	if err != nil {
		if errors.Is(err, domain_social.ErrNotAdmin) {
			controller.ErrorResponse(c, http.StatusForbidden, "NOT_ADMIN", err.Error())
			return
		}
		controller.ErrorResponse(c, http.StatusInternalServerError, "FEEDBACK_ERROR", err.Error())
		return
	}
	controller.SuccessResponse(c, http.StatusOK, feedback)
}
