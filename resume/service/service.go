package service

import (
	"context"
	"fmt"
	"time"

	"github.com/Raj6773/Resume/internal/shared/metrics"
	"github.com/Raj6773/Resume/internal/shared/telemetry"
	"github.com/Raj6773/Resume/internal/shared/util"
	"github.com/Raj6773/Resume/resume/contract"
	"github.com/Raj6773/Resume/resume/model"
	"github.com/Raj6773/Resume/resume/render"
)

// RenderFunc turns a validated candidate into PDF bytes.
type RenderFunc func(c model.Candidate, opts render.Options) ([]byte, error)

// Builder validates a submission and renders it once.
type Builder struct {
	Options render.Options
	Render  RenderFunc
}

// NewBuilder returns a Builder that renders with render.RenderResume.
func NewBuilder(opts render.Options) *Builder {
	return &Builder{Options: opts, Render: render.RenderResume}
}

// Validate checks c and records rejected submissions.
func (b *Builder) Validate(ctx context.Context, c model.Candidate) contract.Result {
	res := contract.Validate(c)
	if !res.OK {
		metrics.IncValidationFailed()
		telemetry.Info("resume.validation_failed", map[string]any{
			"request_id": requestIDFromContext(ctx),
			"kind":       string(res.Kind),
			"fields":     res.Fields,
		})
	}
	return res
}

// Build validates c and, only when it is accepted, renders the PDF. A
// rejected candidate returns a *contract.ValidationError.
func (b *Builder) Build(ctx context.Context, c model.Candidate) ([]byte, error) {
	if res := b.Validate(ctx, c); !res.OK {
		return nil, res.Err()
	}

	renderFn := b.Render
	if renderFn == nil {
		renderFn = render.RenderResume
	}

	start := time.Now()
	out, err := renderFn(c, b.Options)
	elapsed := metrics.SinceMillis(start)
	if err != nil {
		metrics.IncRenderFailed()
		fields := map[string]any{
			"request_id":  requestIDFromContext(ctx),
			"error":       err,
			"has_image":   c.HasImage(),
			"duration_ms": elapsed,
		}
		addImageFields(fields, c)
		telemetry.Error("resume.render_failed", fields)
		return nil, fmt.Errorf("render resume: %w", err)
	}

	metrics.IncRendered()
	metrics.ObserveRenderDurationMs(elapsed)
	fields := map[string]any{
		"request_id":  requestIDFromContext(ctx),
		"bytes":       len(out),
		"sha256":      util.Digest(out),
		"experience":  len(c.Experience),
		"education":   len(c.Education),
		"has_image":   c.HasImage(),
		"duration_ms": elapsed,
	}
	addImageFields(fields, c)
	telemetry.Info("resume.rendered", fields)
	return out, nil
}

// addImageFields records what the client claimed about the upload next to
// what the bytes actually are.
func addImageFields(fields map[string]any, c model.Candidate) {
	if !c.HasImage() {
		return
	}
	fields["image_file_name"] = c.Image.FileName
	fields["image_content_type"] = c.Image.ContentType
	fields["image_sniffed_type"] = render.SniffImageType(c.Image.Data)
	fields["image_bytes"] = len(c.Image.Data)
}
