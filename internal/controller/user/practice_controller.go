package user

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/paeslab/ensayo-api/internal/dto"
	"github.com/paeslab/ensayo-api/internal/middleware"
	"github.com/paeslab/ensayo-api/internal/service"
	"github.com/rs/zerolog/log"
)

type PracticeController struct {
	practiceService service.PracticeService
}

func NewPracticeController(practiceService service.PracticeService) *PracticeController {
	return &PracticeController{practiceService: practiceService}
}

// SubmitPractice godoc
// @Summary Submit a practice round
// @Description Stores a whole practice round in one call; the attempt is created already scored and sealed.
// @Tags Practice
// @Accept json
// @Produce json
// @Param submission body dto.PracticeSubmitDTO true "Topic and answered questions"
// @Success 201 {object} dto.PracticeResultDTO
// @Failure 400 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /answers [post]
func (c *PracticeController) SubmitPractice(ctx *gin.Context) {
	userID, ok := middleware.UserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Not authenticated"})
		return
	}

	var req dto.PracticeSubmitDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("SubmitPractice: failed to bind request")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	result, err := c.practiceService.Submit(userID, req)
	if err != nil {
		log.Error().Err(err).Uint("userID", userID).Msg("SubmitPractice: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to save practice attempt"})
		return
	}
	ctx.JSON(http.StatusCreated, result)
}

// GetPracticeHistory godoc
// @Summary Practice history of the caller
// @Tags Practice
// @Produce json
// @Success 200 {object} dto.PracticeHistoryDTO
// @Security BearerAuth
// @Router /answers/history [get]
func (c *PracticeController) GetPracticeHistory(ctx *gin.Context) {
	userID, ok := middleware.UserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Not authenticated"})
		return
	}

	history, err := c.practiceService.History(userID)
	if err != nil {
		log.Error().Err(err).Uint("userID", userID).Msg("GetPracticeHistory: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to load practice history"})
		return
	}
	ctx.JSON(http.StatusOK, history)
}
