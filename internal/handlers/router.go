package handlers

import (
	"net/http"
	"sort"

	"github.com/SAP-F-2025/lingua-service/internal/services"
	"github.com/SAP-F-2025/lingua-service/internal/utils"
	"github.com/gin-gonic/gin"
)

const serviceName = "lingua-service"

type HandlerManager struct {
	contentHandler *ContentHandler
	writingHandler *WritingHandler
	quizHandler    *QuizHandler
}

func NewHandlerManager(serviceManager services.ServiceManager, logger utils.Logger) *HandlerManager {
	return &HandlerManager{
		contentHandler: NewContentHandler(serviceManager.Content(), logger),
		writingHandler: NewWritingHandler(serviceManager.Writing(), logger),
		quizHandler:    NewQuizHandler(serviceManager.Quiz(), serviceManager.ImportExport(), logger),
	}
}

// NewRouter builds the gin engine with request logging, recovery and all routes.
func NewRouter(serviceManager services.ServiceManager, logger utils.Logger) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ContextLogger(logger))
	router.Use(utils.LoggerMiddleware(logger))

	NewHandlerManager(serviceManager, logger).SetupRoutes(router)
	return router
}

// SetupRoutes sets up all API routes
func (hm *HandlerManager) SetupRoutes(router *gin.Engine) {
	router.GET("/health", HealthCheck)
	router.GET("/", EndpointIndex(router))

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Content routes
		v1.GET("/courses", hm.contentHandler.ListCourses)
		v1.GET("/courses/:id", hm.contentHandler.GetCourse)
		v1.GET("/courses/:id/lessons", hm.contentHandler.GetCourseLessons)
		v1.GET("/lessons/:id", hm.contentHandler.GetLesson)
		v1.GET("/paragraphs/:id", hm.contentHandler.GetParagraph)
		v1.GET("/search", hm.contentHandler.Search)
		v1.GET("/stats", hm.contentHandler.GetStats)
		v1.GET("/contact", hm.contentHandler.GetContactInfo)

		// Writing routes
		writing := v1.Group("/writing")
		{
			writing.POST("/check", hm.writingHandler.CheckExercise)
			writing.POST("/score", hm.writingHandler.ScoreAnswer)
		}

		// Quiz routes
		quiz := v1.Group("/quiz")
		{
			quiz.POST("/submit", hm.quizHandler.SubmitParagraphQuiz)
			quiz.POST("/generate", hm.quizHandler.Generate)
			quiz.POST("/score", hm.quizHandler.Score)

			sessions := quiz.Group("/sessions")
			{
				sessions.POST("", hm.quizHandler.CreateSession)
				sessions.POST("/import", hm.quizHandler.ImportSession)
				sessions.GET("/:id", hm.quizHandler.GetSession)
				sessions.POST("/:id/start", hm.quizHandler.StartSession)
				sessions.POST("/:id/answers", hm.quizHandler.SubmitAnswer)
				sessions.POST("/:id/timeout", hm.quizHandler.TimeoutQuestion)
				sessions.POST("/:id/retake", hm.quizHandler.Retake)
				sessions.GET("/:id/result", hm.quizHandler.GetResult)
				sessions.GET("/:id/export", hm.quizHandler.ExportResult)
			}
		}
	}
}

func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": serviceName,
	})
}

// EndpointIndex lists the registered routes.
func EndpointIndex(router *gin.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		routes := router.Routes()
		endpoints := make([]string, 0, len(routes))
		for _, route := range routes {
			endpoints = append(endpoints, route.Method+" "+route.Path)
		}
		sort.Strings(endpoints)

		c.JSON(http.StatusOK, SuccessResponse{
			Success: true,
			Message: serviceName,
			Data:    gin.H{"endpoints": endpoints},
		})
	}
}
