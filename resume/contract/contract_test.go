package contract

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Raj6773/Resume/resume/model"
)

func validCandidate() model.Candidate {
	return model.Candidate{
		Name:       "Jane Doe",
		Email:      "jane@x.com",
		Phone:      "1234567890",
		Skills:     "Go,Testing",
		Experience: []model.ExperienceEntry{{Title: "Engineer", Company: "Acme", Duration: "2020-2023"}},
		Education:  []model.EducationEntry{{Degree: "BSc", Institution: "MIT", Year: "2019", Percentage: "90"}},
	}
}

func TestIsValidEmail(t *testing.T) {
	valid := []string{"a.b@example.com", "jane@x.com", "first-last@sub.domain.org", "x_y@d.io"}
	for _, v := range valid {
		assert.True(t, IsValidEmail(v), v)
	}
	invalid := []string{"not-an-email", "", "@example.com", "a@b.c", "a@b", "a b@c.com", "a@b.com ", "a@b.com\n", "a@@b.com"}
	for _, v := range invalid {
		assert.False(t, IsValidEmail(v), v)
	}
}

func TestIsValidPhone(t *testing.T) {
	for n := 10; n <= 15; n++ {
		assert.True(t, IsValidPhone(strings.Repeat("7", n)), "%d digits", n)
	}
	invalid := []string{"12345", "123456789", "1234567890123456", "12345678901234567", "123-456-7890", "+1234567890", "123 456 7890", "", "12345abcde"}
	for _, v := range invalid {
		assert.False(t, IsValidPhone(v), v)
	}
}

func TestValidateAcceptsCompleteCandidate(t *testing.T) {
	res := Validate(validCandidate())
	assert.True(t, res.OK)
	assert.Equal(t, KindNone, res.Kind)
	assert.NoError(t, res.Err())
}

func TestValidateHobbiesOptional(t *testing.T) {
	c := validCandidate()
	c.Hobbies = ""
	assert.True(t, Validate(c).OK)
}

func TestValidateMissingFields(t *testing.T) {
	cases := map[string]func(*model.Candidate){
		"name":       func(c *model.Candidate) { c.Name = "" },
		"email":      func(c *model.Candidate) { c.Email = "" },
		"phone":      func(c *model.Candidate) { c.Phone = "" },
		"skills":     func(c *model.Candidate) { c.Skills = "" },
		"experience": func(c *model.Candidate) { c.Experience = nil },
		"education":  func(c *model.Candidate) { c.Education = []model.EducationEntry{} },
	}
	for field, mutate := range cases {
		t.Run(field, func(t *testing.T) {
			c := validCandidate()
			mutate(&c)
			res := Validate(c)
			assert.False(t, res.OK)
			assert.Equal(t, KindMissingField, res.Kind)
			assert.Equal(t, MessageMissingField, res.Message)
			assert.Contains(t, res.Fields, field)
		})
	}
}

func TestValidateMissingFieldWinsOverBadEmail(t *testing.T) {
	c := validCandidate()
	c.Name = ""
	c.Email = "broken"
	c.Phone = "12"
	res := Validate(c)
	assert.Equal(t, KindMissingField, res.Kind)
	assert.Equal(t, []string{"name"}, res.Fields)
}

func TestValidateEmailBeforePhone(t *testing.T) {
	c := validCandidate()
	c.Email = "not-an-email"
	c.Phone = "123-456-7890"
	res := Validate(c)
	assert.Equal(t, KindInvalidEmail, res.Kind)
	assert.Equal(t, MessageInvalidEmail, res.Message)
}

func TestValidateInvalidPhone(t *testing.T) {
	c := validCandidate()
	c.Phone = "12345"
	res := Validate(c)
	assert.Equal(t, KindInvalidPhone, res.Kind)
	assert.Equal(t, MessageInvalidPhone, res.Message)
}

func TestResultErrUnwrapsToSentinel(t *testing.T) {
	c := validCandidate()
	c.Phone = "12345678901234567"
	err := Validate(c).Err()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidPhone))
	assert.False(t, errors.Is(err, ErrInvalidEmail))

	var vErr *ValidationError
	require.True(t, errors.As(err, &vErr))
	assert.Equal(t, KindInvalidPhone, vErr.Kind)
	assert.Equal(t, "Phone number must be 10-15 digits! (phone)", vErr.Error())
}

func TestValidateDoesNotInspectEntryFields(t *testing.T) {
	c := validCandidate()
	c.Experience = []model.ExperienceEntry{{}}
	c.Education = []model.EducationEntry{{}}
	assert.True(t, Validate(c).OK)
}
