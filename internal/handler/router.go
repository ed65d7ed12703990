package handler

import (
	"study-assistant/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

// Handlers bundles every HTTP handler mounted under /api.
type Handlers struct {
	Subject    *SubjectHandler
	Study      *StudyHandler
	Quiz       *QuizHandler
	Health     *HealthHandler
	Validation *middleware.ValidationMiddleware
}

// Register mounts the API routes on app.
func (h *Handlers) Register(app *fiber.App) {
	api := app.Group("/api")
	api.Get("/health", h.Health.Health)

	subject := h.Validation.ValidateSubjectParam()
	api.Post("/subjects", h.Subject.CreateSubject)
	api.Get("/subjects", h.Subject.ListSubjects)
	api.Get("/subjects/:id", subject, h.Subject.GetSubject)
	api.Post("/subjects/:id/files", subject, h.Subject.UploadFiles)
	api.Post("/subjects/:id/explain", subject, h.Study.Explain)
	api.Post("/subjects/:id/cheatsheet", subject, h.Study.CheatSheet)
	api.Post("/subjects/:id/quizzes", subject, h.Quiz.GenerateQuiz)
	api.Get("/subjects/:id/quizzes", subject, h.Quiz.ListQuizzes)

	api.Get("/quizzes/:id", h.Validation.ValidateQuizParam(), h.Quiz.GetQuiz)
}
