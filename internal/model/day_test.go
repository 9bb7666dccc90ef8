package model

import (
	"encoding/json"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestHeadlinePrefersMessageThenChoice(t *testing.T) {
	s := &Submission{Message: "a note", Choice: "stay in"}
	assert.Equal(t, "a note", s.Headline())

	s = &Submission{Choice: "stay in"}
	assert.Equal(t, "stay in", s.Headline())
}

func TestHeadlineNilSubmission(t *testing.T) {
	var s *Submission
	assert.Equal(t, "", s.Headline())
}

func TestHeadlineTruncatesPayloadOnRuneBoundary(t *testing.T) {
	// Every character is 3 bytes, so the 120-byte cut point lands
	// mid-rune unless the truncation backs up to a boundary.
	long := strings.Repeat("愛", 100)
	payload, err := json.Marshal(map[string]string{"note": long})
	assert.NoError(t, err)

	s := &Submission{Payload: payload}
	headline := s.Headline()

	assert.True(t, utf8.ValidString(headline), "headline must stay valid UTF-8")
	assert.LessOrEqual(t, len(headline), 120)
	assert.NotEmpty(t, headline)
}

func TestHeadlineShortPayloadUntouched(t *testing.T) {
	s := &Submission{Payload: json.RawMessage(`{"place":"the lake"}`)}
	assert.Equal(t, `{"place":"the lake"}`, s.Headline())
}
