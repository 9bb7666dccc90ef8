// Package sentiment scores a pair of free-text contributions for tone.
// It backs the reflection pipeline's fallback path, so it must be fully
// deterministic: identical inputs always yield identical output.
package sentiment

import (
	"fmt"
	"strings"
)

// Tone classifies the overall mood of a pair of contributions
type Tone string

const (
	ToneNegative Tone = "negative"
	ToneMixed    Tone = "mixed"
	TonePositive Tone = "positive"
	ToneNeutral  Tone = "neutral"
)

// Score bounds
const (
	MinLoveScore    = 5
	MaxLoveScore    = 95
	MinHonestyScore = 50
	MaxHonestyScore = 99
)

// Result is the analyzer's verdict on a pair of contributions
type Result struct {
	LoveScore    int
	HonestyScore int
	Tone         Tone
	Summary      string
}

// negativePhrases flag hostility, dismissal, or rejection. Matching is
// by membership, not frequency.
var negativePhrases = []string{
	"hate",
	"go away",
	"leave me alone",
	"don't love",
	"don't care",
	"never loved",
	"shut up",
	"get lost",
	"piss off",
	"break up",
	"divorce",
	"stupid",
	"idiot",
	"worthless",
	"annoying",
	"sick of you",
	"whatever",
	"damn",
	"wtf",
	"eww",
	"hmph",
	"tsk",
}

// positivePhrases flag affection, togetherness, and endearment
var positivePhrases = []string{
	"love",
	"miss you",
	"together",
	"forever",
	"always",
	"darling",
	"sweetheart",
	"babe",
	"honey",
	"my dear",
	"beautiful",
	"handsome",
	"cute",
	"adore",
	"cherish",
	"grateful",
	"thank you",
	"happy",
	"hug",
	"kiss",
	"soulmate",
	"my heart",
}

// Analyze scores the combined tone of both parties' contributions.
// It is a pure function of its inputs.
func Analyze(text1, text2 string) Result {
	combined := strings.ToLower(text1 + " " + text2)

	negative := countMatches(combined, negativePhrases)
	positive := countMatches(combined, positivePhrases)

	var r Result
	switch {
	case negative > 0 && positive == 0:
		r = Result{
			LoveScore:    maxInt(MinLoveScore, 50-12*negative),
			HonestyScore: 95,
			Tone:         ToneNegative,
			Summary:      "These answers carry real hostility with no warmth to balance it. Please talk about this directly, or with someone you trust.",
		}
	case negative > positive:
		r = Result{
			LoveScore:    maxInt(10, 50+5*positive-10*negative),
			HonestyScore: 80,
			Tone:         ToneNegative,
			Summary:      "There is more friction than warmth in these answers. Something here deserves a gentler conversation.",
		}
	case negative > 0 && positive > 0:
		r = Result{
			LoveScore:    50 + 8*positive - 5*negative,
			HonestyScore: 75,
			Tone:         ToneMixed,
			Summary:      "A bit of bite mixed with affection. This could be playful teasing, or something worth checking in about.",
		}
	case positive > 0:
		r = Result{
			LoveScore:    60 + 8*positive,
			HonestyScore: 90,
			Tone:         TonePositive,
			Summary:      "Warmth runs through both of these answers. Whatever you two are doing, keep doing it.",
		}
	default:
		r = Result{
			LoveScore:    55,
			HonestyScore: 80,
			Tone:         ToneNeutral,
			Summary:      "Two measured answers. There is room to say more to each other than you did today.",
		}
	}

	r.LoveScore = clamp(r.LoveScore, MinLoveScore, MaxLoveScore)
	r.HonestyScore = clamp(r.HonestyScore, MinHonestyScore, MaxHonestyScore)
	return r
}

// Render produces the full fallback reflection for a day from both
// parties' headline answers
func Render(day int, text1, text2 string) string {
	r := Analyze(text1, text2)
	return fmt.Sprintf(
		"Connection %d%% · Honesty %d%%\nDay %d of 8.\nOne of you said %q. The other said %q.\n%s",
		r.LoveScore, r.HonestyScore, day, text1, text2, r.Summary,
	)
}

// countMatches counts how many distinct phrases from the set appear in
// the text
func countMatches(text string, phrases []string) int {
	count := 0
	for _, phrase := range phrases {
		if strings.Contains(text, phrase) {
			count++
		}
	}
	return count
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
