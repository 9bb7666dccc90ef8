package textnorm

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"
)

type NormalizerSuite struct {
	suite.Suite
}

func TestNormalizerSuite(t *testing.T) {
	suite.Run(t, new(NormalizerSuite))
}

func (s *NormalizerSuite) TestPlainSentencesPassThrough() {
	got := Normalize("You both showed up for each other today. That kind of consistency matters!")
	s.Equal("You both showed up for each other today. That kind of consistency matters.", got)
}

func (s *NormalizerSuite) TestStripsMarkup() {
	got := Normalize("## Reflection\n**You both** listened with *real* care throughout the day.")
	s.Equal("Reflection You both listened with real care throughout the day.", got)
	s.NotContains(got, "*")
	s.NotContains(got, "#")
}

func (s *NormalizerSuite) TestStripsBulletsAndRules() {
	got := Normalize("- You were honest with each other all week long\n---\n- That honesty is worth protecting going forward")
	s.NotContains(got, "-")
	s.Contains(got, "You were honest with each other all week long")
}

func (s *NormalizerSuite) TestCollapsesDashRuns() {
	got := Normalize("Small rituals matter --- they build trust over the years.")
	s.Contains(got, "matter - they build trust")
}

func (s *NormalizerSuite) TestDropsShortFragments() {
	got := Normalize("You were kind today and it showed in everything. And so.")
	s.Equal("You were kind today and it showed in everything.", got)
}

func (s *NormalizerSuite) TestDropsTrailingCommaFragment() {
	got := Normalize("The two of you chose honesty over comfort today. Which means that the next time you,")
	s.Equal("The two of you chose honesty over comfort today.", got)
}

func (s *NormalizerSuite) TestDropsConnectorLeadingSentence() {
	got := Normalize("Because the evening showed what patience gives you. You both made space for the other person.")
	s.Equal("You both made space for the other person.", got)
}

func (s *NormalizerSuite) TestDropsConnectorTrailingSentence() {
	got := Normalize("You kept your promises to each other today and. Tomorrow will ask the same of you again.")
	s.Equal("Tomorrow will ask the same of you again.", got)
}

func (s *NormalizerSuite) TestEverythingFilteredReturnsEmpty() {
	s.Equal("", Normalize("And then. But so,"))
	s.Equal("", Normalize(""))
}

func (s *NormalizerSuite) TestNeverEmitsShortOrDanglingFragments() {
	inputs := []string{
		"Okay. Sure! Really? A longer sentence about the both of you staying close.",
		"You stayed through the hard part of the conversation, and then,",
		"So much. Too much. The pair of you carried the day with grace regardless.",
	}
	for _, in := range inputs {
		got := Normalize(in)
		if got == "" {
			continue
		}
		for _, sentence := range strings.Split(strings.TrimSuffix(got, "."), ". ") {
			s.GreaterOrEqual(len(sentence), MinSentenceLength, "fragment %q in %q", sentence, got)
			s.NotRegexp(`[,:;]$`, sentence)
		}
	}
}

func (s *NormalizerSuite) TestNormalizesLineEndings() {
	got := Normalize("You found your way back to each other tonight.\r\nThat road gets shorter every time you walk it.")
	s.Equal("You found your way back to each other tonight. That road gets shorter every time you walk it.", got)
}
