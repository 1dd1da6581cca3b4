package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitListTrimsTokens(t *testing.T) {
	assert.Equal(t, []string{"A", "B", "C"}, SplitList("A, B , C"))
}

func TestSplitListKeepsEmptyTokens(t *testing.T) {
	assert.Equal(t, []string{""}, SplitList(""))
	assert.Equal(t, []string{"a", "", "b"}, SplitList("a,,b"))
}

func TestCandidateHasImage(t *testing.T) {
	var c Candidate
	assert.False(t, c.HasImage())

	c.Image = &ProfileImage{}
	assert.False(t, c.HasImage())

	c.Image.Data = []byte{0x89, 'P', 'N', 'G'}
	assert.True(t, c.HasImage())
}

func TestCandidateLists(t *testing.T) {
	c := Candidate{Skills: "Go,Testing", Hobbies: " chess ,  running"}
	assert.Equal(t, []string{"Go", "Testing"}, c.SkillList())
	assert.Equal(t, []string{"chess", "running"}, c.HobbyList())
}
