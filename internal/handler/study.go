package handler

import (
	"strings"

	"study-assistant/internal/domain"
	"study-assistant/internal/dto"
	"study-assistant/internal/service"
	"study-assistant/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// StudyHandler serves explanations and cheat sheets.
type StudyHandler struct {
	service   service.StudyService
	validator *validation.Validator
}

func NewStudyHandler(service service.StudyService, validator *validation.Validator) *StudyHandler {
	return &StudyHandler{service: service, validator: validator}
}

// Explain godoc
// @Summary Answer a question from a subject's material
// @Tags study
// @Accept json
// @Produce json
// @Param id path string true "Subject ID"
// @Param request body dto.ExplainRequest true "Question"
// @Success 200 {object} dto.ExplainResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Failure 422 {object} middleware.ErrorResponse
// @Failure 503 {object} middleware.ErrorResponse
// @Router /subjects/{id}/explain [post]
func (h *StudyHandler) Explain(c *fiber.Ctx) error {
	var req dto.ExplainRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("request body must be JSON")
	}
	if errs := h.validator.ValidateExplainRequest(&req); len(errs) > 0 {
		return errs
	}

	id := subjectID(c)
	answer, err := h.service.Explain(c.UserContext(), id, req.Question)
	if err != nil {
		return err
	}
	return c.JSON(dto.ExplainResponse{SubjectID: id, Question: req.Question, Answer: answer})
}

// CheatSheet godoc
// @Summary Summarise a topic as a cheat sheet
// @Tags study
// @Accept json
// @Produce json
// @Param id path string true "Subject ID"
// @Param request body dto.CheatSheetRequest true "Topic and style"
// @Success 200 {object} dto.CheatSheetResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Failure 422 {object} middleware.ErrorResponse
// @Failure 503 {object} middleware.ErrorResponse
// @Router /subjects/{id}/cheatsheet [post]
func (h *StudyHandler) CheatSheet(c *fiber.Ctx) error {
	var req dto.CheatSheetRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("request body must be JSON")
	}
	if errs := h.validator.ValidateCheatSheetRequest(&req); len(errs) > 0 {
		return errs
	}
	style := strings.TrimSpace(req.Style)
	if style == "" {
		style = service.DefaultCheatSheetStyle
	}

	id := subjectID(c)
	content, err := h.service.CheatSheet(c.UserContext(), id, req.Topic, style)
	if err != nil {
		return err
	}
	return c.JSON(dto.CheatSheetResponse{SubjectID: id, Topic: req.Topic, Style: style, Content: content})
}
