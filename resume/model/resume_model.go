package model

import "strings"

const (
	// MaxExperience is the largest number of job entries a submission may carry.
	MaxExperience = 5
	// MaxEducation is the largest number of degree entries a submission may carry.
	MaxEducation = 3
)

// Candidate is the résumé payload collected from one form submission.
type Candidate struct {
	Name       string            `json:"name" validate:"required"`
	Email      string            `json:"email" validate:"required,resume_email"`
	Phone      string            `json:"phone" validate:"required,resume_phone"`
	Skills     string            `json:"skills" validate:"required"`
	Hobbies    string            `json:"hobbies"`
	Experience []ExperienceEntry `json:"experience" validate:"min=1"`
	Education  []EducationEntry  `json:"education" validate:"min=1"`
	Image      *ProfileImage     `json:"image,omitempty"`
}

// ExperienceEntry represents one job line pair on the résumé.
type ExperienceEntry struct {
	Title    string `json:"title"`
	Company  string `json:"company"`
	Duration string `json:"duration"`
}

// EducationEntry represents one row of the education table.
type EducationEntry struct {
	Degree      string `json:"degree"`
	Institution string `json:"institution"`
	Year        string `json:"year"`
	Percentage  string `json:"percentage"`
}

// ProfileImage is an optional JPEG or PNG drawn in the header corner.
type ProfileImage struct {
	FileName    string `json:"fileName,omitempty"`
	ContentType string `json:"contentType,omitempty"`
	Data        []byte `json:"data"`
}

// HasImage reports whether the candidate carries image bytes.
func (c Candidate) HasImage() bool {
	return c.Image != nil && len(c.Image.Data) > 0
}

// SkillList returns the trimmed skill tokens in display order.
func (c Candidate) SkillList() []string {
	return SplitList(c.Skills)
}

// HobbyList returns the trimmed hobby tokens in display order.
func (c Candidate) HobbyList() []string {
	return SplitList(c.Hobbies)
}

// SplitList splits a comma-delimited string and trims every token.
// Empty tokens are kept so that "a,,b" still yields three lines.
func SplitList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		out = append(out, strings.TrimSpace(p))
	}
	return out
}
