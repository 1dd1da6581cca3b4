package builder

import (
	"embed"
	"errors"
	"fmt"
	"html/template"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Raj6773/Resume/internal/shared/util"
	"github.com/Raj6773/Resume/resume/model"
)

const formTemplate = "form.html"

//go:embed templates/*.html
var templatesFS embed.FS

// Templates parses the embedded HTML templates.
func Templates() *template.Template {
	funcs := template.FuncMap{"inc": func(i int) int { return i + 1 }}
	return template.Must(template.New("").Funcs(funcs).ParseFS(templatesFS, "templates/*.html"))
}

// formPage is the data behind templates/form.html.
type formPage struct {
	Error      string
	Candidate  model.Candidate
	Jobs       []model.ExperienceEntry
	Degrees    []model.EducationEntry
	MaxJobs    int
	MaxDegrees int
}

func newFormPage(c model.Candidate, message string) formPage {
	page := formPage{
		Error:      message,
		Candidate:  c,
		Jobs:       c.Experience,
		Degrees:    c.Education,
		MaxJobs:    model.MaxExperience,
		MaxDegrees: model.MaxEducation,
	}
	if len(page.Jobs) == 0 {
		page.Jobs = make([]model.ExperienceEntry, 1)
	}
	if len(page.Degrees) == 0 {
		page.Degrees = make([]model.EducationEntry, 1)
	}
	return page
}

// blankFormPage shows the requested number of empty entry blocks.
func blankFormPage(jobs, degrees string) formPage {
	return newFormPage(model.Candidate{
		Experience: make([]model.ExperienceEntry, clampCount(jobs, model.MaxExperience)),
		Education:  make([]model.EducationEntry, clampCount(degrees, model.MaxEducation)),
	}, "")
}

// clampCount parses a block count and keeps it within 1..limit.
func clampCount(raw string, limit int) int {
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return 1
	}
	if n > limit {
		return limit
	}
	return n
}

// decodeForm reads a multipart (or urlencoded) submission into a Candidate.
// Entry blocks are taken in posted order and capped at the model bounds.
func decodeForm(c *gin.Context, maxUploadBytes int64) (model.Candidate, error) {
	if err := c.Request.ParseMultipartForm(maxUploadBytes); err != nil {
		if !errors.Is(err, http.ErrNotMultipart) {
			return model.Candidate{}, err
		}
		if err := c.Request.ParseForm(); err != nil {
			return model.Candidate{}, err
		}
	}

	candidate := model.Candidate{
		Name:       c.PostForm("name"),
		Email:      c.PostForm("email"),
		Phone:      c.PostForm("phone"),
		Skills:     c.PostForm("skills"),
		Hobbies:    c.PostForm("hobbies"),
		Experience: decodeJobs(c),
		Education:  decodeDegrees(c),
	}

	img, err := decodeImage(c)
	if err != nil {
		return candidate, err
	}
	candidate.Image = img
	return candidate, nil
}

func decodeJobs(c *gin.Context) []model.ExperienceEntry {
	titles := c.PostFormArray("job_title")
	companies := c.PostFormArray("job_company")
	durations := c.PostFormArray("job_duration")

	n := min(maxLen(titles, companies, durations), model.MaxExperience)
	out := make([]model.ExperienceEntry, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, model.ExperienceEntry{
			Title:    at(titles, i),
			Company:  at(companies, i),
			Duration: at(durations, i),
		})
	}
	return out
}

func decodeDegrees(c *gin.Context) []model.EducationEntry {
	degrees := c.PostFormArray("degree")
	institutions := c.PostFormArray("institution")
	years := c.PostFormArray("year")
	percentages := c.PostFormArray("percentage")

	n := min(maxLen(degrees, institutions, years, percentages), model.MaxEducation)
	out := make([]model.EducationEntry, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, model.EducationEntry{
			Degree:      at(degrees, i),
			Institution: at(institutions, i),
			Year:        at(years, i),
			Percentage:  at(percentages, i),
		})
	}
	return out
}

// decodeImage returns nil when no file was chosen.
func decodeImage(c *gin.Context) (*model.ProfileImage, error) {
	header, err := c.FormFile("image")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return nil, nil
		}
		return nil, err
	}
	if header.Size == 0 {
		return nil, nil
	}

	file, err := header.Open()
	if err != nil {
		return nil, fmt.Errorf("open image: %w", err)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("read image: %w", err)
	}
	return &model.ProfileImage{
		FileName:    util.CleanFileName(header.Filename),
		ContentType: header.Header.Get("Content-Type"),
		Data:        data,
	}, nil
}

func maxLen(lists ...[]string) int {
	n := 0
	for _, l := range lists {
		n = max(n, len(l))
	}
	return n
}

func at(values []string, i int) string {
	if i < len(values) {
		return values[i]
	}
	return ""
}
