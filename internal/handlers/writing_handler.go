package handlers

import (
	"net/http"

	"github.com/SAP-F-2025/lingua-service/internal/services"
	"github.com/SAP-F-2025/lingua-service/internal/utils"
	"github.com/gin-gonic/gin"
)

type WritingHandler struct {
	BaseHandler
	writingService services.WritingService
}

func NewWritingHandler(writingService services.WritingService, logger utils.Logger) *WritingHandler {
	return &WritingHandler{
		BaseHandler:    NewBaseHandler(logger),
		writingService: writingService,
	}
}

// CheckExercise grades an answer to a stored writing exercise
// @Summary Check writing exercise
// @Tags writing
// @Accept json
// @Produce json
// @Param request body services.CheckExerciseRequest true "Exercise answer"
// @Success 200 {object} SuccessResponse{data=services.WritingCheckResult}
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /writing/check [post]
func (h *WritingHandler) CheckExercise(c *gin.Context) {
	var req services.CheckExerciseRequest
	if !h.bindJSON(c, &req) {
		return
	}

	h.LogRequest(c, "Checking writing exercise", "paragraph_id", req.ParagraphID, "exercise_id", req.ExerciseID)

	result, err := h.writingService.CheckExercise(c.Request.Context(), &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	h.RespondWithSuccess(c, http.StatusOK, result.Message, result)
}

// ScoreAnswer grades a free answer against a caller-supplied reference
// @Summary Score writing answer
// @Tags writing
// @Accept json
// @Produce json
// @Param request body services.CheckAnswerRequest true "Answer and reference"
// @Success 200 {object} SuccessResponse{data=services.WritingCheckResult}
// @Failure 400 {object} ErrorResponse
// @Router /writing/score [post]
func (h *WritingHandler) ScoreAnswer(c *gin.Context) {
	var req services.CheckAnswerRequest
	if !h.bindJSON(c, &req) {
		return
	}

	result, err := h.writingService.CheckAnswer(c.Request.Context(), &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	h.RespondWithSuccess(c, http.StatusOK, result.Message, result)
}
