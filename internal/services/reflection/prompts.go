package reflection

import "fmt"

// promptPreamble frames every request to the text provider
const promptPreamble = "You are the gentle narrator of an eight-day ritual for two partners. " +
	"Write a short reflection of two to four complete sentences, warm but not saccharine, " +
	"in plain prose with no markup, no lists, and no headings. Address both partners as \"you two\".\n\n"

// dayPrompts holds one template per day. Days 1-7 substitute both
// parties' answers; day 8 synthesizes over the whole week and takes no
// substitution.
var dayPrompts = [8]string{
	"Day 1, the invitation. Both partners chose to accept the eight-day ritual. " +
		"One answered %q and the other answered %q. " +
		"Reflect on what it means that they both said yes.",

	"Day 2, the letters. Each partner wrote the other a short message. " +
		"One wrote %q and the other wrote %q. " +
		"Reflect on what these two messages reveal about how they see each other.",

	"Day 3, the crossroads. Each partner picked how they would spend an evening together. " +
		"One chose %q and the other chose %q. " +
		"Reflect on what their choices say about the rhythm they share.",

	"Day 4, the memory map. Each partner laid out a small map of a shared memory. " +
		"One submitted %q and the other submitted %q. " +
		"Reflect on the memory they both reached for.",

	"Day 5, the trade. Each partner chose one habit to give the other for a day. " +
		"One chose %q and the other chose %q. " +
		"Reflect on what they are willing to carry for each other.",

	"Day 6, the mirror. Each partner chose the word that best describes the other. " +
		"One chose %q and the other chose %q. " +
		"Reflect on how those two words fit together.",

	"Day 7, the time capsule. Each partner sealed a note for a year from now. " +
		"One sealed %q and the other sealed %q. " +
		"Reflect on the future they are each quietly building.",

	"Day 8, the finale. The ritual is complete: eight days of showing up for each other. " +
		"Write a closing reflection for the whole week, " +
		"about what repeating a small ritual together does to two people.",
}

// buildPrompt renders the day's template with both parties' headline
// answers. Day 8 carries no per-party substitution.
func buildPrompt(day int, answer1, answer2 string) string {
	tmpl := dayPrompts[day-1]
	if day == 8 {
		return promptPreamble + tmpl
	}
	return promptPreamble + fmt.Sprintf(tmpl, answer1, answer2)
}
