package handler

import (
	"study-assistant/internal/domain"
	"study-assistant/internal/dto"
	"study-assistant/internal/middleware"
	"study-assistant/internal/service"
	"study-assistant/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// QuizHandler handles quiz-related HTTP requests
type QuizHandler struct {
	service   service.QuizService
	validator *validation.Validator
}

// NewQuizHandler creates a new QuizHandler instance
func NewQuizHandler(service service.QuizService, validator *validation.Validator) *QuizHandler {
	return &QuizHandler{service: service, validator: validator}
}

// GenerateQuiz godoc
// @Summary Generate a quiz from a subject's material
// @Description Runs the generate, validate and repair pipeline and stores the result.
// @Tags quiz
// @Accept json
// @Produce json
// @Param id path string true "Subject ID"
// @Param request body dto.GenerateQuizRequest true "Quiz parameters"
// @Success 201 {object} dto.QuizRecordResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Failure 422 {object} middleware.ErrorResponse
// @Failure 502 {object} middleware.ErrorResponse
// @Router /subjects/{id}/quizzes [post]
func (h *QuizHandler) GenerateQuiz(c *fiber.Ctx) error {
	var req dto.GenerateQuizRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("request body must be JSON")
	}
	if errs := h.validator.ValidateGenerateQuizRequest(&req); len(errs) > 0 {
		return errs
	}

	record, err := h.service.GenerateQuiz(c.UserContext(), subjectID(c), req.ToDomain())
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(dto.NewQuizRecordResponse(record))
}

// ListQuizzes godoc
// @Summary List the quizzes generated for a subject
// @Tags quiz
// @Produce json
// @Param id path string true "Subject ID"
// @Param limit query int false "Maximum number of quizzes" default(20)
// @Success 200 {object} dto.QuizListResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /subjects/{id}/quizzes [get]
func (h *QuizHandler) ListQuizzes(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", service.DefaultQuizListLimit)
	if limit < 1 || limit > 100 {
		return domain.ValidationErrors{domain.NewOutOfRangeError("limit", limit, 1, 100)}
	}

	records, err := h.service.ListQuizzes(c.UserContext(), subjectID(c), limit)
	if err != nil {
		return err
	}
	resp := dto.QuizListResponse{Quizzes: make([]dto.QuizRecordResponse, len(records))}
	for i, r := range records {
		resp.Quizzes[i] = dto.NewQuizRecordResponse(r)
	}
	return c.JSON(resp)
}

// GetQuiz godoc
// @Summary Get a generated quiz
// @Tags quiz
// @Produce json
// @Param id path string true "Quiz ID"
// @Success 200 {object} dto.QuizRecordResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /quizzes/{id} [get]
func (h *QuizHandler) GetQuiz(c *fiber.Ctx) error {
	id, _ := c.Locals(middleware.LocalQuizID).(string)
	if id == "" {
		id = c.Params("id")
	}
	record, err := h.service.GetQuiz(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewQuizRecordResponse(record))
}
