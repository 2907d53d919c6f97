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

type LibraryController struct {
	usecase *usecase_interaction.LibraryUsecase
}

func NewLibraryController(uc *usecase_interaction.LibraryUsecase) *LibraryController {
	return &LibraryController{usecase: uc}
}

func (ctrl *LibraryController) SetEntry(c *gin.Context) {
	var req struct {
		AppID        int64   `json:"app_id" binding:"required"`
		Status       string  `json:"status" binding:"required"`
		IsFavorite   bool    `json:"is_favorite"`
		IsPlatinumed bool    `json:"is_platinumed"`
		HoursPlayed  float64 `json:"hours_played"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		controller.ErrorResponse(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	entry := &domain_interaction.LibraryEntry{
		UserID:       c.GetString(middleware.ContextUserKey),
		AppID:        req.AppID,
		Status:       req.Status,
		IsFavorite:   req.IsFavorite,
		IsPlatinumed: req.IsPlatinumed,
		HoursPlayed:  req.HoursPlayed,
	}
	if err := ctrl.usecase.SetEntry(c.Request.Context(), entry); err != nil {
		switch {
		case errors.Is(err, domain_interaction.ErrInvalidStatus):
			controller.ErrorResponse(c, http.StatusBadRequest, "INVALID_STATUS", err.Error())
		case errors.Is(err, domain_catalog.ErrGameNotFound):
			controller.ErrorResponse(c, http.StatusNotFound, "GAME_NOT_FOUND", err.Error())
		default:
			controller.ErrorResponse(c, http.StatusInternalServerError, "LIBRARY_ERROR", err.Error())
		}
		return
	}
	controller.SuccessResponse(c, http.StatusOK, entry)
}

func (ctrl *LibraryController) RemoveEntry(c *gin.Context) {
	appID, err := strconv.ParseInt(c.Param("app_id"), 10, 64)
	if err != nil {
		controller.ErrorResponse(c, http.StatusBadRequest, "INVALID_APP_ID", "app_id must be an integer")
		return
	}

	userID := c.GetString(middleware.ContextUserKey)
	if err := ctrl.usecase.RemoveEntry(c.Request.Context(), userID, appID); err != nil {
		controller.ErrorResponse(c, http.StatusInternalServerError, "LIBRARY_ERROR", err.Error())
		return
	}
	controller.SuccessResponse(c, http.StatusOK, gin.H{"removed": appID})
}

func (ctrl *LibraryController) GetLibrary(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserKey)

	entries, err := ctrl.usecase.GetLibrary(c.Request.Context(), userID)
	if err != nil {
		controller.ErrorResponse(c, http.StatusInternalServerError, "LIBRARY_ERROR", err.Error())
		return
	}
	controller.SuccessResponse(c, http.StatusOK, entries)
}
