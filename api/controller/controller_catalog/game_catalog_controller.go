package controller_catalog

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/spotlight-app/spotlight-backend/api/controller"
	"github.com/spotlight-app/spotlight-backend/domain/domain_catalog"
	"github.com/spotlight-app/spotlight-backend/usecase/usecase_catalog"
)

type GameCatalogController struct {
	usecase *usecase_catalog.GameCatalogUsecase
}

func NewGameCatalogController(uc *usecase_catalog.GameCatalogUsecase) *GameCatalogController {
	return &GameCatalogController{usecase: uc}
}

func (ctrl *GameCatalogController) GetGame(c *gin.Context) {
	appID, err := strconv.ParseInt(c.Param("app_id"), 10, 64)
	if err != nil {
		controller.ErrorResponse(c, http.StatusBadRequest, "INVALID_APP_ID", "app_id must be an integer")
		return
	}

	game, err := ctrl.usecase.GetGame(c.Request.Context(), appID)
	if err != nil {
		if errors.Is(err, domain_catalog.ErrGameNotFound) {
			controller.ErrorResponse(c, http.StatusNotFound, "GAME_NOT_FOUND", err.Error())
			return
		}
		controller.ErrorResponse(c, http.StatusInternalServerError, "CATALOG_ERROR", err.Error())
		return
	}
	controller.SuccessResponse(c, http.StatusOK, game)
}

func (ctrl *GameCatalogController) BrowseGames(c *gin.Context) {
	page, _ := strconv.ParseInt(c.DefaultQuery("page", "1"), 10, 64)
	pageSize, _ := strconv.ParseInt(c.DefaultQuery("page_size", "20"), 10, 64)

	games, total, err := ctrl.usecase.BrowseGames(c.Request.Context(), page, pageSize)
	if err != nil {
		controller.ErrorResponse(c, http.StatusInternalServerError, "CATALOG_ERROR", err.Error())
		return
	}
	controller.SuccessResponse(c, http.StatusOK, gin.H{
		"games": games,
		"total": total,
	})
}

func (ctrl *GameCatalogController) SearchGames(c *gin.Context) {
	keyword := c.Query("q")
	limit, _ := strconv.ParseInt(c.DefaultQuery("limit", "20"), 10, 64)

	games, err := ctrl.usecase.SearchGames(c.Request.Context(), keyword, limit)
	if err != nil {
		controller.ErrorResponse(c, http.StatusInternalServerError, "SEARCH_ERROR", err.Error())
		return
	}
	controller.SuccessResponse(c, http.StatusOK, games)
}
