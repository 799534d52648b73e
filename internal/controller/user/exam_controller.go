package user

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/paeslab/ensayo-api/internal/dto"
	"github.com/paeslab/ensayo-api/internal/middleware"
	"github.com/paeslab/ensayo-api/internal/service"
	"github.com/rs/zerolog/log"
)

type ExamController struct {
	sessionService service.ExamSessionService
	attemptService service.ExamAttemptService
	queryService   service.ExamQueryService
}

func NewExamController(
	sessionService service.ExamSessionService,
	attemptService service.ExamAttemptService,
	queryService service.ExamQueryService,
) *ExamController {
	return &ExamController{
		sessionService: sessionService,
		attemptService: attemptService,
		queryService:   queryService,
	}
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, service.ErrAttemptNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrInvalidQuestion),
		errors.Is(err, service.ErrAlreadySubmitted),
		errors.Is(err, service.ErrAttemptExpired),
		errors.Is(err, service.ErrNoQuestionsAvailable),
		errors.Is(err, service.ErrNoCompositionInferred):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func respondError(ctx *gin.Context, err error, internalMsg string) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		ctx.JSON(status, dto.ErrorResponse{Error: internalMsg})
		return
	}
	ctx.JSON(status, dto.ErrorResponse{Error: err.Error()})
}

// StartExam godoc
// @Summary Start a new timed exam attempt
// @Description Samples questions per requested section, creates the attempt with unanswered placeholders and starts the clock.
// @Tags Exams
// @Accept json
// @Produce json
// @Param exam body dto.ExamStartDTO true "Title, optional time limit and section composition"
// @Success 201 {object} dto.ExamStartedDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid body or no questions available"
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /exams/start [post]
func (c *ExamController) StartExam(ctx *gin.Context) {
	userID, ok := middleware.UserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Not authenticated"})
		return
	}

	var req dto.ExamStartDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("StartExam: failed to bind request")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	started, err := c.sessionService.Start(userID, req)
	if err != nil {
		log.Error().Err(err).Uint("userID", userID).Msg("StartExam: service error")
		respondError(ctx, err, "Failed to start exam")
		return
	}
	ctx.JSON(http.StatusCreated, started)
}

// RetakeExam godoc
// @Summary Retake a previous exam with the same composition
// @Description Creates a new attempt with the same per-topic question counts as the given attempt, freshly sampled.
// @Tags Exams
// @Produce json
// @Param attemptId path string true "Base attempt ID"
// @Success 201 {object} dto.ExamStartedDTO
// @Failure 400 {object} dto.ErrorResponse "Composition cannot be inferred or no questions available"
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /exams/{attemptId}/retake [post]
func (c *ExamController) RetakeExam(ctx *gin.Context) {
	userID, ok := middleware.UserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Not authenticated"})
		return
	}

	started, err := c.sessionService.Retake(userID, ctx.Param("attemptId"))
	if err != nil {
		log.Error().Err(err).Str("attemptID", ctx.Param("attemptId")).Msg("RetakeExam: service error")
		respondError(ctx, err, "Failed to retake exam")
		return
	}
	ctx.JSON(http.StatusCreated, started)
}

// AnswerExam godoc
// @Summary Record an answer
// @Description Saves or clears the selection for one question of a running attempt. Last write wins.
// @Tags Exams
// @Accept json
// @Produce json
// @Param attemptId path string true "Attempt ID"
// @Param answer body dto.ExamAnswerDTO true "Question and selected option (null clears)"
// @Success 200 {object} dto.ExamAnswerAcceptedDTO
// @Failure 400 {object} dto.ErrorResponse "Foreign question, sealed attempt or expired time limit"
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /exams/{attemptId}/answer [post]
func (c *ExamController) AnswerExam(ctx *gin.Context) {
	userID, ok := middleware.UserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Not authenticated"})
		return
	}

	var req dto.ExamAnswerDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	accepted, err := c.attemptService.Answer(userID, ctx.Param("attemptId"), req)
	if err != nil {
		log.Warn().Err(err).Str("attemptID", ctx.Param("attemptId")).Msg("AnswerExam: rejected")
		respondError(ctx, err, "Failed to save answer")
		return
	}
	ctx.JSON(http.StatusOK, accepted)
}

// FinishExam godoc
// @Summary Finish and score an attempt
// @Description Counts the correct answers server-side, seals the attempt and returns the final score. Not idempotent: a second call fails.
// @Tags Exams
// @Accept json
// @Produce json
// @Param attemptId path string true "Attempt ID"
// @Param finish body dto.ExamFinishDTO false "Optional client-measured duration"
// @Success 200 {object} dto.ExamFinishedDTO
// @Failure 400 {object} dto.ErrorResponse "Attempt already submitted"
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /exams/{attemptId}/finish [post]
func (c *ExamController) FinishExam(ctx *gin.Context) {
	userID, ok := middleware.UserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Not authenticated"})
		return
	}

	var req dto.ExamFinishDTO
	if ctx.Request.ContentLength > 0 {
		if err := ctx.ShouldBindJSON(&req); err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
			return
		}
	}

	finished, err := c.attemptService.Finish(userID, ctx.Param("attemptId"), req)
	if err != nil {
		log.Warn().Err(err).Str("attemptID", ctx.Param("attemptId")).Msg("FinishExam: rejected")
		respondError(ctx, err, "Failed to finish exam")
		return
	}
	ctx.JSON(http.StatusOK, finished)
}

// GetExamProgress godoc
// @Summary Progress of a running attempt
// @Description Questions with current selections (answer key withheld), answered counts, the server clock, elapsed seconds and the expired flag. Never fails due to expiry.
// @Tags Exams
// @Produce json
// @Param attemptId path string true "Attempt ID"
// @Success 200 {object} dto.ExamProgressDTO
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /exams/{attemptId}/progress [get]
func (c *ExamController) GetExamProgress(ctx *gin.Context) {
	userID, ok := middleware.UserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Not authenticated"})
		return
	}

	progress, err := c.queryService.Progress(userID, ctx.Param("attemptId"))
	if err != nil {
		log.Warn().Err(err).Str("attemptID", ctx.Param("attemptId")).Msg("GetExamProgress: service error")
		respondError(ctx, err, "Failed to load progress")
		return
	}
	ctx.JSON(http.StatusOK, progress)
}

// GetExamResult godoc
// @Summary Final result of an attempt
// @Tags Exams
// @Produce json
// @Param attemptId path string true "Attempt ID"
// @Success 200 {object} dto.ExamReviewDTO
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /exams/{attemptId}/result [get]
func (c *ExamController) GetExamResult(ctx *gin.Context) {
	userID, ok := middleware.UserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Not authenticated"})
		return
	}

	result, err := c.queryService.Result(userID, ctx.Param("attemptId"))
	if err != nil {
		log.Warn().Err(err).Str("attemptID", ctx.Param("attemptId")).Msg("GetExamResult: service error")
		respondError(ctx, err, "Failed to load result")
		return
	}
	ctx.JSON(http.StatusOK, result)
}

// GetExamDetail godoc
// @Summary Per-question review of an attempt
// @Description Full review payload: every option with its correctness and selection flags, plus explanations.
// @Tags Exams
// @Produce json
// @Param attemptId path string true "Attempt ID"
// @Success 200 {object} dto.ExamReviewDTO
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /exams/{attemptId}/detail [get]
func (c *ExamController) GetExamDetail(ctx *gin.Context) {
	userID, ok := middleware.UserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Not authenticated"})
		return
	}

	detail, err := c.queryService.Detail(userID, ctx.Param("attemptId"))
	if err != nil {
		log.Warn().Err(err).Str("attemptID", ctx.Param("attemptId")).Msg("GetExamDetail: service error")
		respondError(ctx, err, "Failed to load detail")
		return
	}
	ctx.JSON(http.StatusOK, detail)
}

// GetActiveExams godoc
// @Summary List running attempts
// @Tags Exams
// @Produce json
// @Success 200 {object} dto.ActiveExamsDTO
// @Security BearerAuth
// @Router /exams/active [get]
func (c *ExamController) GetActiveExams(ctx *gin.Context) {
	userID, ok := middleware.UserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Not authenticated"})
		return
	}

	active, err := c.queryService.Active(userID)
	if err != nil {
		log.Error().Err(err).Uint("userID", userID).Msg("GetActiveExams: service error")
		respondError(ctx, err, "Failed to load active exams")
		return
	}
	ctx.JSON(http.StatusOK, active)
}

// GetExamHistory godoc
// @Summary Paginated list of sealed attempts
// @Tags Exams
// @Produce json
// @Param limit query int false "Page size (1-100, default 10)"
// @Param offset query int false "Offset (default 0)"
// @Success 200 {object} dto.ExamHistoryDTO
// @Security BearerAuth
// @Router /exams/history [get]
func (c *ExamController) GetExamHistory(ctx *gin.Context) {
	userID, ok := middleware.UserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Not authenticated"})
		return
	}

	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "10"))
	offset, _ := strconv.Atoi(ctx.DefaultQuery("offset", "0"))

	history, err := c.queryService.History(userID, limit, offset)
	if err != nil {
		log.Error().Err(err).Uint("userID", userID).Msg("GetExamHistory: service error")
		respondError(ctx, err, "Failed to load history")
		return
	}
	ctx.JSON(http.StatusOK, history)
}
