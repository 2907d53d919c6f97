package controller_discover

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/spotlight-app/spotlight-backend/api/controller"
	"github.com/spotlight-app/spotlight-backend/api/middleware"
	"github.com/spotlight-app/spotlight-backend/usecase/usecase_discover"
)

type DiscoverController struct {
	usecase *usecase_discover.DiscoverUsecase
}

func NewDiscoverController(uc *usecase_discover.DiscoverUsecase) *DiscoverController {
	return &DiscoverController{usecase: uc}
}

func (ctrl *DiscoverController) GetRecommendations(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserKey)
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))

	results, err := ctrl.usecase.GetRecommendations(c.Request.Context(), userID, limit)
	if err != nil {
		controller.ErrorResponse(c, http.StatusInternalServerError, "RECOMMEND_ERROR", err.Error())
		return
	}
	controller.SuccessResponse(c, http.StatusOK, results)
}

func (ctrl *DiscoverController) GetRanking(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))

	results, err := ctrl.usecase.GetCuratedRanking(
		c.Request.Context(), c.Query("genre"), c.Query("tag"), limit)
	if err != nil {
		controller.ErrorResponse(c, http.StatusInternalServerError, "RANKING_ERROR", err.Error())
		return
	}
	controller.SuccessResponse(c, http.StatusOK, results)
}
