package sentiment

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type AnalyzerSuite struct {
	suite.Suite
}

func TestAnalyzerSuite(t *testing.T) {
	suite.Run(t, new(AnalyzerSuite))
}

func (s *AnalyzerSuite) TestPureNegative() {
	// "go away" and "shut up" match; no positive phrase does
	r := Analyze("Go away.", "Shut up and stop asking.")
	s.Equal(ToneNegative, r.Tone)
	s.Equal(50-12*2, r.LoveScore)
	s.Equal(95, r.HonestyScore)
}

func (s *AnalyzerSuite) TestPureNegativeClampsLoveFloor() {
	r := Analyze("Go away, I hate you, shut up.", "You are stupid and annoying, whatever.")
	s.Equal(ToneNegative, r.Tone)
	s.Equal(MinLoveScore, r.LoveScore)
}

func (s *AnalyzerSuite) TestNegativeDominant() {
	// negative: "go away", "don't love" (2); positive: "love" (1)
	r := Analyze("I love you.", "Go away, I don't love you.")
	s.Equal(ToneNegative, r.Tone)
	s.Equal(35, r.LoveScore)
	s.Equal(80, r.HonestyScore)
}

func (s *AnalyzerSuite) TestMixed() {
	// negative: "stupid" (1); positive: "love", "cute" (2)
	r := Analyze("You are stupid but cute.", "I love that about you.")
	s.Equal(ToneMixed, r.Tone)
	s.Equal(50+8*2-5*1, r.LoveScore)
	s.Equal(75, r.HonestyScore)
}

func (s *AnalyzerSuite) TestPurePositive() {
	// positive: "love", "together", "forever" (3)
	r := Analyze("I love being together.", "Forever with you.")
	s.Equal(TonePositive, r.Tone)
	s.Equal(60+8*3, r.LoveScore)
	s.Equal(90, r.HonestyScore)
}

func (s *AnalyzerSuite) TestPurePositiveClampsLoveCeiling() {
	r := Analyze(
		"I love you darling, my sweetheart, my soulmate, forever together.",
		"Grateful and happy, always. Hug and kiss, honey, my heart.",
	)
	s.Equal(TonePositive, r.Tone)
	s.Equal(MaxLoveScore, r.LoveScore)
}

func (s *AnalyzerSuite) TestNeutral() {
	r := Analyze("We watched a film.", "It rained most of the evening.")
	s.Equal(ToneNeutral, r.Tone)
	s.Equal(55, r.LoveScore)
	s.Equal(80, r.HonestyScore)
}

func (s *AnalyzerSuite) TestDeterministic() {
	a := Analyze("I love you.", "Go away, I don't love you.")
	for i := 0; i < 10; i++ {
		b := Analyze("I love you.", "Go away, I don't love you.")
		s.Equal(a, b)
	}
}

func (s *AnalyzerSuite) TestCountsMembershipNotFrequency() {
	once := Analyze("I love you.", "We watched a film.")
	thrice := Analyze("Love love love you.", "We watched a film.")
	s.Equal(once.LoveScore, thrice.LoveScore)
}

func (s *AnalyzerSuite) TestRenderIncludesScoresDayAndInputs() {
	out := Render(3, "stay in", "go out")
	s.Contains(out, "Day 3 of 8")
	s.Contains(out, `"stay in"`)
	s.Contains(out, `"go out"`)
	s.Contains(out, "%")
}

func (s *AnalyzerSuite) TestRenderDeterministic() {
	s.Equal(Render(5, "a quiet walk", "a quiet walk"), Render(5, "a quiet walk", "a quiet walk"))
}
