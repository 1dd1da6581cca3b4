package render

import (
	"bytes"
	"fmt"
	"io"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/Raj6773/Resume/resume/model"
)

const (
	profileImageName = "profile"
	creator          = "github.com/Raj6773/Resume"

	// FileName is the download name of every rendered résumé.
	FileName    = "Resume.pdf"
	ContentType = "application/pdf"
)

// Options tunes document metadata and encoding. Layout is fixed.
type Options struct {
	// CreatedAt is stamped into the document info. The zero value uses the
	// current time; a fixed value makes the output byte-identical across runs.
	CreatedAt      time.Time
	Compress       bool
	Title          string
	MaxImagePixels int
}

// DefaultOptions returns compressed output with the default image bound.
func DefaultOptions() Options {
	return Options{
		Compress:       true,
		MaxImagePixels: defaultMaxImagePixels,
	}
}

func (o Options) withDefaults(c model.Candidate) Options {
	if o.CreatedAt.IsZero() {
		o.CreatedAt = time.Now()
	}
	if o.MaxImagePixels <= 0 {
		o.MaxImagePixels = defaultMaxImagePixels
	}
	if o.Title == "" {
		o.Title = "Resume - " + c.Name
	}
	return o
}

// RenderResume renders c into a single-page PDF.
func RenderResume(c model.Candidate, opts Options) ([]byte, error) {
	var buf bytes.Buffer
	if err := Render(&buf, c, opts); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Render writes the PDF for c to w. The candidate is not validated here.
func Render(w io.Writer, c model.Candidate, opts Options) error {
	opts = opts.withDefaults(c)

	var img *preparedImage
	if c.HasImage() {
		prepared, err := prepareImage(c.Image.Data, opts.MaxImagePixels)
		if err != nil {
			return err
		}
		img = prepared
	}

	plan := Layout(c, img != nil)

	pdf := newDocument(opts)
	if img != nil {
		pdf.RegisterImageOptionsReader(profileImageName, fpdf.ImageOptions{ImageType: img.Type}, bytes.NewReader(img.Data))
	}
	paint(pdf, plan)

	if err := pdf.Error(); err != nil {
		return fmt.Errorf("render pdf: %w", err)
	}
	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("write pdf: %w", err)
	}
	return nil
}

func newDocument(opts Options) *fpdf.Fpdf {
	pdf := fpdf.New("P", "pt", PageSize, "")
	pdf.SetCompression(opts.Compress)
	pdf.SetCatalogSort(true)
	pdf.SetCreationDate(opts.CreatedAt)
	pdf.SetModificationDate(opts.CreatedAt)
	pdf.SetTitle(opts.Title, true)
	pdf.SetCreator(creator, true)
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()
	pdf.SetLineWidth(1)
	return pdf
}

// paint applies plan to the single page of pdf, flipping y from the
// bottom-up layout space into fpdf's top-down space.
func paint(pdf *fpdf.Fpdf, plan Plan) {
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	for _, op := range plan.Ops {
		switch op.Kind {
		case OpRect:
			pdf.SetFillColor(op.Color.R, op.Color.G, op.Color.B)
			pdf.Rect(op.X, PageHeight-(op.Y+op.H), op.W, op.H, "F")
		case OpText:
			pdf.SetFont(op.Font.Family, op.Font.Style, op.Font.Size)
			pdf.SetTextColor(op.Color.R, op.Color.G, op.Color.B)
			pdf.Text(op.X, PageHeight-op.Y, tr(op.Text))
		case OpLine:
			pdf.SetDrawColor(op.Color.R, op.Color.G, op.Color.B)
			pdf.Line(op.X, PageHeight-op.Y, op.X2, PageHeight-op.Y2)
		case OpImage:
			pdf.ImageOptions(profileImageName, op.X, PageHeight-(op.Y+op.H), op.W, op.H, false,
				fpdf.ImageOptions{}, 0, "")
		}
	}
}
