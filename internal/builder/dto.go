package builder

import (
	"github.com/Raj6773/Resume/internal/shared/util"
	"github.com/Raj6773/Resume/resume/model"
)

// CandidateRequest is the JSON body accepted by the API endpoints.
type CandidateRequest struct {
	Name       string                  `json:"name"`
	Email      string                  `json:"email"`
	Phone      string                  `json:"phone"`
	Skills     string                  `json:"skills"`
	Hobbies    string                  `json:"hobbies"`
	Experience []model.ExperienceEntry `json:"experience"`
	Education  []model.EducationEntry  `json:"education"`
	Image      *ImageRequest           `json:"image,omitempty"`
}

// ImageRequest carries a profile image; Data is base64 in JSON.
type ImageRequest struct {
	FileName    string `json:"fileName"`
	ContentType string `json:"contentType"`
	Data        []byte `json:"data"`
}

// ValidateResponse is returned by the validate endpoint.
type ValidateResponse struct {
	OK      bool     `json:"ok"`
	Kind    string   `json:"kind"`
	Message string   `json:"message"`
	Fields  []string `json:"fields,omitempty"`
}

func (r CandidateRequest) toModel() model.Candidate {
	c := model.Candidate{
		Name:       r.Name,
		Email:      r.Email,
		Phone:      r.Phone,
		Skills:     r.Skills,
		Hobbies:    r.Hobbies,
		Experience: append([]model.ExperienceEntry(nil), r.Experience...),
		Education:  append([]model.EducationEntry(nil), r.Education...),
	}
	if r.Image != nil && len(r.Image.Data) > 0 {
		c.Image = &model.ProfileImage{
			FileName:    util.CleanFileName(r.Image.FileName),
			ContentType: r.Image.ContentType,
			Data:        r.Image.Data,
		}
	}
	return c
}
