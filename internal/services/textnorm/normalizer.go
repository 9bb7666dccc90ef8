// Package textnorm cleans up externally generated text before it is
// shown to users: markup is stripped and incomplete trailing clauses
// produced by truncated generation are dropped.
package textnorm

import (
	"regexp"
	"strings"
)

// MinSentenceLength is the shortest fragment kept as a real sentence
const MinSentenceLength = 20

var (
	headingRe   = regexp.MustCompile(`(?m)^#{1,6}\s*`)
	ruleRe      = regexp.MustCompile(`(?m)^\s*(?:-{3,}|\*{3,}|_{3,})\s*$`)
	bulletRe    = regexp.MustCompile(`(?m)^\s*[-*•]\s+`)
	hyphenRunRe = regexp.MustCompile(`-{2,}`)
	enDashRunRe = regexp.MustCompile(`–{2,}`)
	emDashRunRe = regexp.MustCompile(`—{2,}`)
	spaceRe     = regexp.MustCompile(`[ \t]+`)

	emphasisReplacer = strings.NewReplacer("**", "", "__", "", "*", "", "_", "", "`", "")
)

// connectorWords are coordinating/subordinating words; a sentence that
// starts or ends with one of these is an incomplete thought
var connectorWords = map[string]bool{
	"and":      true,
	"but":      true,
	"or":       true,
	"so":       true,
	"then":     true,
	"because":  true,
	"also":     true,
	"however":  true,
	"although": true,
	"though":   true,
	"while":    true,
	"since":    true,
	"unless":   true,
	"until":    true,
	"yet":      true,
	"nor":      true,
	"as":       true,
	"if":       true,
}

// Normalize cleans generated text: strips markup, drops incomplete
// sentence fragments, and rejoins what survives into plain prose.
// It returns an empty string when every sentence was filtered out;
// callers should treat that as a failed generation.
func Normalize(text string) string {
	s := strings.ReplaceAll(text, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")

	s = ruleRe.ReplaceAllString(s, "")
	s = headingRe.ReplaceAllString(s, "")
	s = bulletRe.ReplaceAllString(s, "")
	s = emphasisReplacer.Replace(s)

	s = hyphenRunRe.ReplaceAllString(s, "-")
	s = enDashRunRe.ReplaceAllString(s, "–")
	s = emDashRunRe.ReplaceAllString(s, "—")

	s = strings.ReplaceAll(s, "\n", " ")
	s = spaceRe.ReplaceAllString(s, " ")

	var kept []string
	for _, part := range splitSentences(s) {
		sentence := strings.TrimSpace(part)
		if !isCompleteSentence(sentence) {
			continue
		}
		kept = append(kept, sentence)
	}
	if len(kept) == 0 {
		return ""
	}
	return strings.Join(kept, ". ") + "."
}

// splitSentences splits text on sentence-terminating punctuation
func splitSentences(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == '.' || r == '!' || r == '?'
	})
}

// isCompleteSentence reports whether a fragment reads as a whole thought
func isCompleteSentence(s string) bool {
	if len(s) < MinSentenceLength {
		return false
	}
	switch s[len(s)-1] {
	case ',', ':', ';':
		return false
	}
	words := strings.Fields(s)
	if len(words) == 0 {
		return false
	}
	first := strings.Trim(strings.ToLower(words[0]), ",:;")
	last := strings.ToLower(strings.Trim(words[len(words)-1], ",:;"))
	return !connectorWords[first] && !connectorWords[last]
}
