package handlers

import (
	"net/http"

	"github.com/SAP-F-2025/lingua-service/internal/services"
	"github.com/SAP-F-2025/lingua-service/internal/utils"
	"github.com/gin-gonic/gin"
)

type ContentHandler struct {
	BaseHandler
	contentService services.ContentService
}

func NewContentHandler(contentService services.ContentService, logger utils.Logger) *ContentHandler {
	return &ContentHandler{
		BaseHandler:    NewBaseHandler(logger),
		contentService: contentService,
	}
}

// ListCourses lists all courses
// @Summary List courses
// @Tags content
// @Produce json
// @Success 200 {object} SuccessResponse{data=[]models.Course}
// @Failure 500 {object} ErrorResponse
// @Router /courses [get]
func (h *ContentHandler) ListCourses(c *gin.Context) {
	courses, err := h.contentService.ListCourses(c.Request.Context())
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	h.RespondWithSuccess(c, http.StatusOK, "", courses)
}

// GetCourse retrieves a course by ID
// @Summary Get course
// @Tags content
// @Produce json
// @Param id path uint true "Course ID"
// @Success 200 {object} SuccessResponse{data=models.Course}
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /courses/{id} [get]
func (h *ContentHandler) GetCourse(c *gin.Context) {
	id, ok := h.parseIDParam(c, "id")
	if !ok {
		return
	}

	course, err := h.contentService.GetCourse(c.Request.Context(), id)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	h.RespondWithSuccess(c, http.StatusOK, "", course)
}

// GetCourseLessons lists a course's lessons with their paragraph counts
// @Summary List course lessons
// @Tags content
// @Produce json
// @Param id path uint true "Course ID"
// @Success 200 {object} SuccessResponse{data=[]services.LessonSummary}
// @Failure 404 {object} ErrorResponse
// @Router /courses/{id}/lessons [get]
func (h *ContentHandler) GetCourseLessons(c *gin.Context) {
	id, ok := h.parseIDParam(c, "id")
	if !ok {
		return
	}

	lessons, err := h.contentService.GetCourseLessons(c.Request.Context(), id)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	h.RespondWithSuccess(c, http.StatusOK, "", lessons)
}

// GetLesson returns a lesson with its course and paragraphs
// @Summary Get lesson
// @Tags content
// @Produce json
// @Param id path uint true "Lesson ID"
// @Success 200 {object} SuccessResponse{data=services.LessonDetail}
// @Failure 404 {object} ErrorResponse
// @Router /lessons/{id} [get]
func (h *ContentHandler) GetLesson(c *gin.Context) {
	id, ok := h.parseIDParam(c, "id")
	if !ok {
		return
	}

	lesson, err := h.contentService.GetLesson(c.Request.Context(), id)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	h.RespondWithSuccess(c, http.StatusOK, "", lesson)
}

func (h *ContentHandler) GetParagraph(c *gin.Context) {
	id, ok := h.parseIDParam(c, "id")
	if !ok {
		return
	}

	paragraph, err := h.contentService.GetParagraph(c.Request.Context(), id)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	h.RespondWithSuccess(c, http.StatusOK, "", paragraph)
}

// Search looks for paragraphs and keywords matching q
// @Summary Search content
// @Tags content
// @Produce json
// @Param q query string true "Search text"
// @Success 200 {object} SuccessResponse{data=services.SearchResults}
// @Failure 400 {object} ErrorResponse
// @Router /search [get]
func (h *ContentHandler) Search(c *gin.Context) {
	query := c.Query("q")
	h.LogRequest(c, "Searching content", "query", query)

	results, err := h.contentService.Search(c.Request.Context(), query)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	h.RespondWithSuccess(c, http.StatusOK, "", results)
}

func (h *ContentHandler) GetStats(c *gin.Context) {
	stats, err := h.contentService.GetStats(c.Request.Context())
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	h.RespondWithSuccess(c, http.StatusOK, "", stats)
}

func (h *ContentHandler) GetContactInfo(c *gin.Context) {
	info, err := h.contentService.GetContactInfo(c.Request.Context())
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	h.RespondWithSuccess(c, http.StatusOK, "", info)
}
