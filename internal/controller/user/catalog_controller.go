package user

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/paeslab/ensayo-api/internal/dto"
	"github.com/paeslab/ensayo-api/internal/service"
	"github.com/rs/zerolog/log"
)

type CatalogController struct {
	topicService service.TopicService
}

func NewCatalogController(topicService service.TopicService) *CatalogController {
	return &CatalogController{topicService: topicService}
}

// GetAllTopics godoc
// @Summary List all topics with their units
// @Tags Catalog
// @Produce json
// @Success 200 {object} dto.TopicListDTO
// @Failure 500 {object} dto.ErrorResponse
// @Router /topics/all [get]
func (c *CatalogController) GetAllTopics(ctx *gin.Context) {
	topics, err := c.topicService.ListTopics()
	if err != nil {
		log.Error().Err(err).Msg("GetAllTopics: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to load topics"})
		return
	}
	ctx.JSON(http.StatusOK, topics)
}

// GetQuestionsByTopic godoc
// @Summary Questions of a topic for the practice runner
// @Tags Catalog
// @Produce json
// @Param id path int true "Topic ID"
// @Success 200 {array} dto.TopicQuestionDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid topic ID"
// @Failure 404 {object} dto.ErrorResponse "Topic has no questions"
// @Router /topics/{id}/questions [get]
func (c *CatalogController) GetQuestionsByTopic(ctx *gin.Context) {
	topicID, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid topic ID format"})
		return
	}

	questions, err := c.topicService.QuestionsByTopic(uint(topicID))
	if err != nil {
		if errors.Is(err, service.ErrNoQuestionsAvailable) {
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "No questions found for this topic"})
			return
		}
		log.Error().Err(err).Uint64("topicID", topicID).Msg("GetQuestionsByTopic: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to load questions"})
		return
	}
	ctx.JSON(http.StatusOK, questions)
}
