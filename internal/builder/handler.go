package builder

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Raj6773/Resume/internal/shared/server/middleware"
	"github.com/Raj6773/Resume/internal/shared/server/respond"
	"github.com/Raj6773/Resume/internal/shared/telemetry"
	"github.com/Raj6773/Resume/resume/contract"
	"github.com/Raj6773/Resume/resume/model"
	"github.com/Raj6773/Resume/resume/render"
	"github.com/Raj6773/Resume/resume/service"
)

const (
	defaultMaxUploadBytes = 5 << 20 // 5MB

	messageInvalidImage = "Profile picture must be a JPEG or PNG image"
	messageTooLarge     = "Upload is too large"
	messageBadForm      = "Unable to read the submitted form"
)

// Handler wires HTTP handlers to the builder service.
type Handler struct {
	Svc            *service.Builder
	MaxUploadBytes int64
}

// NewHandler constructs a Handler.
func NewHandler(svc *service.Builder, maxUploadBytes int64) *Handler {
	if maxUploadBytes <= 0 {
		maxUploadBytes = defaultMaxUploadBytes
	}
	return &Handler{Svc: svc, MaxUploadBytes: maxUploadBytes}
}

// RegisterPages attaches the HTML form routes.
func (h *Handler) RegisterPages(r gin.IRoutes) {
	r.GET("/", h.form)
	r.POST("/resume", h.submitForm)
}

// RegisterRoutes attaches the JSON API routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/resumes/validate", h.validate)
	rg.POST("/resumes", h.create)
}

func (h *Handler) form(c *gin.Context) {
	c.HTML(http.StatusOK, formTemplate, blankFormPage(c.Query("jobs"), c.Query("degrees")))
}

func (h *Handler) submitForm(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.MaxUploadBytes)

	candidate, err := decodeForm(c, h.MaxUploadBytes)
	if err != nil {
		c.Set(middleware.LogKeyOutcome, "bad_request")
		message := messageBadForm
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			message = messageTooLarge
		}
		telemetry.Error("resume.form_decode_failed", map[string]any{
			"request_id": middleware.RequestIDFromContext(c),
			"error":      err,
		})
		c.HTML(http.StatusBadRequest, formTemplate, newFormPage(candidate, message))
		return
	}

	out, err := h.Svc.Build(h.requestContext(c), candidate)
	if err != nil {
		// Uploaded bytes are never echoed back into the page.
		candidate.Image = nil
		var vErr *contract.ValidationError
		switch {
		case errors.As(err, &vErr):
			c.Set(middleware.LogKeyOutcome, "rejected")
			c.HTML(http.StatusUnprocessableEntity, formTemplate, newFormPage(candidate, vErr.Message))
		case errors.Is(err, render.ErrInvalidImage):
			c.Set(middleware.LogKeyOutcome, "invalid_image")
			c.HTML(http.StatusBadRequest, formTemplate, newFormPage(candidate, messageInvalidImage))
		default:
			c.Set(middleware.LogKeyOutcome, "failed")
			c.HTML(http.StatusInternalServerError, formTemplate, newFormPage(candidate, "Failed to generate resume"))
		}
		return
	}

	h.download(c, out)
}

func (h *Handler) validate(c *gin.Context) {
	candidate, ok := h.bindCandidate(c)
	if !ok {
		return
	}

	res := h.Svc.Validate(h.requestContext(c), candidate)
	if res.OK {
		c.Set(middleware.LogKeyOutcome, "valid")
	} else {
		c.Set(middleware.LogKeyOutcome, "rejected")
	}
	respond.OK(c, ValidateResponse{
		OK:      res.OK,
		Kind:    string(res.Kind),
		Message: res.Message,
		Fields:  res.Fields,
	})
}

func (h *Handler) create(c *gin.Context) {
	candidate, ok := h.bindCandidate(c)
	if !ok {
		return
	}

	out, err := h.Svc.Build(h.requestContext(c), candidate)
	if err != nil {
		var vErr *contract.ValidationError
		switch {
		case errors.As(err, &vErr):
			c.Set(middleware.LogKeyOutcome, "rejected")
			respond.Error(c, http.StatusUnprocessableEntity, string(vErr.Kind), vErr.Message, gin.H{"fields": vErr.Fields})
		case errors.Is(err, render.ErrInvalidImage):
			c.Set(middleware.LogKeyOutcome, "invalid_image")
			respond.Error(c, http.StatusBadRequest, "invalid_image", messageInvalidImage, nil)
		default:
			c.Set(middleware.LogKeyOutcome, "failed")
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to generate resume", nil)
		}
		return
	}

	h.download(c, out)
}

// bindCandidate decodes the JSON body and enforces the entry bounds. It
// writes the error response itself and reports false on failure.
func (h *Handler) bindCandidate(c *gin.Context) (model.Candidate, bool) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.MaxUploadBytes)

	var req CandidateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Set(middleware.LogKeyOutcome, "bad_request")
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			respond.Error(c, http.StatusBadRequest, "validation_error", "request body too large", nil)
			return model.Candidate{}, false
		}
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return model.Candidate{}, false
	}
	if len(req.Experience) > model.MaxExperience {
		c.Set(middleware.LogKeyOutcome, "bad_request")
		respond.Error(c, http.StatusBadRequest, "validation_error", "experience accepts at most 5 entries", nil)
		return model.Candidate{}, false
	}
	if len(req.Education) > model.MaxEducation {
		c.Set(middleware.LogKeyOutcome, "bad_request")
		respond.Error(c, http.StatusBadRequest, "validation_error", "education accepts at most 3 entries", nil)
		return model.Candidate{}, false
	}
	return req.toModel(), true
}

func (h *Handler) requestContext(c *gin.Context) context.Context {
	return service.WithRequestID(c.Request.Context(), middleware.RequestIDFromContext(c))
}

func (h *Handler) download(c *gin.Context, pdf []byte) {
	c.Set(middleware.LogKeyOutcome, "rendered")
	c.Set(middleware.LogKeyPDFBytes, len(pdf))
	respond.Attachment(c, render.ContentType, render.FileName, pdf)
}
