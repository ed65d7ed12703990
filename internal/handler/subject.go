package handler

import (
	"fmt"
	"os"
	"path/filepath"

	"study-assistant/internal/adapter/pdf"
	"study-assistant/internal/domain"
	"study-assistant/internal/dto"
	"study-assistant/internal/logger"
	"study-assistant/internal/middleware"
	"study-assistant/internal/service"
	"study-assistant/internal/validation"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// SubjectHandler handles subject and ingestion HTTP requests
type SubjectHandler struct {
	service   service.SubjectService
	validator *validation.Validator
	uploadDir string
}

func NewSubjectHandler(service service.SubjectService, validator *validation.Validator, uploadDir string) *SubjectHandler {
	return &SubjectHandler{service: service, validator: validator, uploadDir: uploadDir}
}

// CreateSubject godoc
// @Summary Create a subject
// @Tags subjects
// @Accept json
// @Produce json
// @Param request body dto.CreateSubjectRequest true "Subject"
// @Success 201 {object} dto.SubjectResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 409 {object} middleware.ErrorResponse
// @Router /subjects [post]
func (h *SubjectHandler) CreateSubject(c *fiber.Ctx) error {
	var req dto.CreateSubjectRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("request body must be JSON")
	}
	if errs := h.validator.ValidateCreateSubjectRequest(&req); len(errs) > 0 {
		return errs
	}

	subject, err := h.service.CreateSubject(c.UserContext(), req.ID, req.Name)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(toSubjectResponse(subject))
}

// ListSubjects godoc
// @Summary List subjects
// @Tags subjects
// @Produce json
// @Success 200 {object} dto.SubjectListResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /subjects [get]
func (h *SubjectHandler) ListSubjects(c *fiber.Ctx) error {
	subjects, err := h.service.ListSubjects(c.UserContext())
	if err != nil {
		return err
	}
	resp := dto.SubjectListResponse{Subjects: make([]dto.SubjectResponse, len(subjects))}
	for i, s := range subjects {
		resp.Subjects[i] = toSubjectResponse(s)
	}
	return c.JSON(resp)
}

// GetSubject godoc
// @Summary Get a subject
// @Tags subjects
// @Produce json
// @Param id path string true "Subject ID"
// @Success 200 {object} dto.SubjectResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /subjects/{id} [get]
func (h *SubjectHandler) GetSubject(c *fiber.Ctx) error {
	subject, err := h.service.GetSubject(c.UserContext(), subjectID(c))
	if err != nil {
		return err
	}
	return c.JSON(toSubjectResponse(subject))
}

// UploadFiles godoc
// @Summary Ingest files into a subject
// @Description Accepts PDF, text and markdown files. Files already ingested are skipped.
// @Tags subjects
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Subject ID"
// @Param files formData file true "Files to ingest"
// @Success 200 {object} dto.IngestionResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Failure 422 {object} middleware.ErrorResponse
// @Router /subjects/{id}/files [post]
func (h *SubjectHandler) UploadFiles(c *fiber.Ctx) error {
	id := subjectID(c)

	form, err := c.MultipartForm()
	if err != nil {
		return domain.ValidationErrors{domain.NewMissingFieldError("files")}
	}
	headers := form.File["files"]
	if len(headers) == 0 {
		return domain.ValidationErrors{domain.NewMissingFieldError("files")}
	}
	for _, fh := range headers {
		if !pdf.Supported(fh.Filename) {
			return domain.ValidationErrors{domain.NewInvalidFormatError("files", fh.Filename)}
		}
	}

	if err := os.MkdirAll(h.uploadDir, 0o755); err != nil {
		return domain.NewInternalError("Failed to prepare upload directory", err)
	}
	dir, err := os.MkdirTemp(h.uploadDir, "upload-*")
	if err != nil {
		return domain.NewInternalError("Failed to prepare upload directory", err)
	}
	defer func() {
		if err := os.RemoveAll(dir); err != nil {
			logger.Get().Warn("Failed to remove upload directory", zap.String("dir", dir), zap.Error(err))
		}
	}()

	paths := make([]string, 0, len(headers))
	for _, fh := range headers {
		path := filepath.Join(dir, filepath.Base(fh.Filename))
		if err := c.SaveFile(fh, path); err != nil {
			return domain.NewInternalError(fmt.Sprintf("Failed to store upload %s", fh.Filename), err)
		}
		paths = append(paths, path)
	}

	report, err := h.service.IngestFiles(c.UserContext(), id, paths)
	if err != nil {
		return err
	}
	return c.JSON(dto.IngestionResponse{
		SubjectID: id,
		Ingested:  report.Ingested,
		Skipped:   report.Skipped,
		Chunks:    report.Chunks,
	})
}

func subjectID(c *fiber.Ctx) string {
	if id, ok := c.Locals(middleware.LocalSubjectID).(string); ok {
		return id
	}
	return c.Params("id")
}

func toSubjectResponse(s *domain.Subject) dto.SubjectResponse {
	files := s.Files
	if files == nil {
		files = []string{}
	}
	return dto.SubjectResponse{
		ID:          s.ID,
		DisplayName: s.DisplayName,
		CreatedAt:   s.CreatedAt,
		Files:       files,
	}
}
