package handlers

import (
	"fmt"
	"net/http"

	"github.com/SAP-F-2025/lingua-service/internal/services"
	"github.com/SAP-F-2025/lingua-service/internal/utils"
	"github.com/gin-gonic/gin"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type QuizHandler struct {
	BaseHandler
	quizService         services.QuizService
	importExportService services.ImportExportService
}

func NewQuizHandler(quizService services.QuizService, importExportService services.ImportExportService, logger utils.Logger) *QuizHandler {
	return &QuizHandler{
		BaseHandler:         NewBaseHandler(logger),
		quizService:         quizService,
		importExportService: importExportService,
	}
}

// ===== PARAGRAPH QUIZ =====

// SubmitParagraphQuiz grades answers to a paragraph's fixed quiz
// @Summary Submit paragraph quiz
// @Tags quiz
// @Accept json
// @Produce json
// @Param request body services.ParagraphQuizRequest true "Selected option per question"
// @Success 200 {object} SuccessResponse{data=services.ParagraphQuizResult}
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /quiz/submit [post]
func (h *QuizHandler) SubmitParagraphQuiz(c *gin.Context) {
	var req services.ParagraphQuizRequest
	if !h.bindJSON(c, &req) {
		return
	}

	result, err := h.quizService.SubmitParagraphQuiz(c.Request.Context(), &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	h.RespondWithSuccess(c, http.StatusOK, "", result)
}

// ===== STATELESS ENGINE =====

func (h *QuizHandler) Generate(c *gin.Context) {
	var req services.GenerateRequest
	if !h.bindJSON(c, &req) {
		return
	}

	questions, err := h.quizService.Generate(c.Request.Context(), &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	h.RespondWithSuccess(c, http.StatusOK, "", questions)
}

func (h *QuizHandler) Score(c *gin.Context) {
	var req services.ScoreRequest
	if !h.bindJSON(c, &req) {
		return
	}

	result, err := h.quizService.Score(c.Request.Context(), &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	h.RespondWithSuccess(c, http.StatusOK, "", result)
}

// ===== SESSIONS =====

// CreateSession starts a vocabulary quiz over a lesson, paragraph or keyword list
// @Summary Create quiz session
// @Tags quiz
// @Accept json
// @Produce json
// @Param request body services.CreateSessionRequest true "Vocabulary source"
// @Success 201 {object} SuccessResponse{data=services.SessionView}
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /quiz/sessions [post]
func (h *QuizHandler) CreateSession(c *gin.Context) {
	var req services.CreateSessionRequest
	if !h.bindJSON(c, &req) {
		return
	}

	session, err := h.quizService.CreateSession(c.Request.Context(), &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	h.RespondWithSuccess(c, http.StatusCreated, "Quiz session created", session)
}

// ImportSession creates a session from an uploaded word list
// @Summary Import word list
// @Tags quiz
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "CSV or XLSX word list"
// @Success 201 {object} SuccessResponse{data=services.ImportedSession}
// @Failure 400 {object} ErrorResponse
// @Router /quiz/sessions/import [post]
func (h *QuizHandler) ImportSession(c *gin.Context) {
	header, err := c.FormFile("file")
	if err != nil {
		h.RespondWithError(c, http.StatusBadRequest, CodeValidation, "File is required", err, err.Error())
		return
	}

	file, err := header.Open()
	if err != nil {
		h.RespondWithError(c, http.StatusBadRequest, CodeValidation, "Failed to open uploaded file", err, err.Error())
		return
	}
	defer file.Close()

	h.LogRequest(c, "Importing word list", "filename", header.Filename, "size", header.Size)

	imported, err := h.importExportService.ImportSession(c.Request.Context(), file, header.Filename)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	h.RespondWithSuccess(c, http.StatusCreated, "Word list imported", imported)
}

func (h *QuizHandler) GetSession(c *gin.Context) {
	id, ok := h.parseStringIDParam(c, "id")
	if !ok {
		return
	}

	session, err := h.quizService.GetSession(c.Request.Context(), id)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	h.RespondWithSuccess(c, http.StatusOK, "", session)
}

func (h *QuizHandler) StartSession(c *gin.Context) {
	id, ok := h.parseStringIDParam(c, "id")
	if !ok {
		return
	}

	session, err := h.quizService.StartSession(c.Request.Context(), id)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	h.RespondWithSuccess(c, http.StatusOK, "Quiz started", session)
}

// SubmitAnswer records the answer to the current question
// @Summary Submit answer
// @Tags quiz
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body services.SubmitAnswerRequest true "Selected option or timeout"
// @Success 200 {object} SuccessResponse{data=services.AnswerFeedback}
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /quiz/sessions/{id}/answers [post]
func (h *QuizHandler) SubmitAnswer(c *gin.Context) {
	id, ok := h.parseStringIDParam(c, "id")
	if !ok {
		return
	}

	var req services.SubmitAnswerRequest
	if !h.bindJSON(c, &req) {
		return
	}

	feedback, err := h.quizService.SubmitAnswer(c.Request.Context(), id, &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	h.RespondWithSuccess(c, http.StatusOK, "", feedback)
}

func (h *QuizHandler) TimeoutQuestion(c *gin.Context) {
	id, ok := h.parseStringIDParam(c, "id")
	if !ok {
		return
	}

	feedback, err := h.quizService.TimeoutQuestion(c.Request.Context(), id)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	h.RespondWithSuccess(c, http.StatusOK, "Time is up", feedback)
}

func (h *QuizHandler) Retake(c *gin.Context) {
	id, ok := h.parseStringIDParam(c, "id")
	if !ok {
		return
	}

	session, err := h.quizService.Retake(c.Request.Context(), id)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	h.RespondWithSuccess(c, http.StatusCreated, "Quiz session created", session)
}

func (h *QuizHandler) GetResult(c *gin.Context) {
	id, ok := h.parseStringIDParam(c, "id")
	if !ok {
		return
	}

	result, err := h.quizService.GetResult(c.Request.Context(), id)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	h.RespondWithSuccess(c, http.StatusOK, "", result)
}

// ExportResult downloads a completed session's result as a spreadsheet
// @Summary Export quiz result
// @Tags quiz
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param id path string true "Session ID"
// @Success 200 {file} file
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /quiz/sessions/{id}/export [get]
func (h *QuizHandler) ExportResult(c *gin.Context) {
	id, ok := h.parseStringIDParam(c, "id")
	if !ok {
		return
	}

	data, err := h.importExportService.ExportSessionResult(c.Request.Context(), id)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="quiz-result-%s.xlsx"`, id))
	c.Data(http.StatusOK, xlsxContentType, data)
}
