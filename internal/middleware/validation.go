package middleware

import (
	"study-assistant/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// Locals keys set by the validation middleware.
const (
	LocalSubjectID = "validated_subject_id"
	LocalQuizID    = "validated_quiz_id"
)

// ValidationMiddleware provides request validation middleware
type ValidationMiddleware struct {
	validator *validation.Validator
}

func NewValidationMiddleware(validator *validation.Validator) *ValidationMiddleware {
	return &ValidationMiddleware{validator: validator}
}

// ValidateSubjectParam validates the :id path parameter of subject routes.
func (vm *ValidationMiddleware) ValidateSubjectParam() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if errs := vm.validator.ValidateSubjectID("id", id); len(errs) > 0 {
			return errs
		}
		c.Locals(LocalSubjectID, id)
		return c.Next()
	}
}

// ValidateQuizParam validates the :id path parameter of quiz routes.
func (vm *ValidationMiddleware) ValidateQuizParam() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if errs := vm.validator.ValidateQuizID(id); len(errs) > 0 {
			return errs
		}
		c.Locals(LocalQuizID, id)
		return c.Next()
	}
}
