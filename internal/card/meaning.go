package card

import "fmt"

const (
	jackTheme  = "Initiative, new ideas, adaptability"
	queenTheme = "Nurturing, intuition, emotional mastery"
	kingTheme  = "Leadership, authority, stability"

	whiteJokerMeaning = "Powerful positive force, hidden potential, a guiding light within the dream"
	blackJokerMeaning = "Significant obstacle, fear, or negative influence in the dream"
)

// numberThemes is indexed by card value; index 0 is unused
var numberThemes = [11]string{
	1:  "New beginnings, potential",
	2:  "Duality, choices, partnerships",
	3:  "Creativity, communication, self-expression",
	4:  "Stability, foundation, security",
	5:  "Change, transition, unexpected developments",
	6:  "Harmony, balance, responsibility",
	7:  "Mystery, introspection, seeking knowledge",
	8:  "Transformation, power, abundance",
	9:  "Completion, endings, humanitarianism",
	10: "Fulfillment, achievement, culmination",
}

// Meaning returns the divinatory meaning of c
func Meaning(c Card) string {
	return c.Meaning()
}

// Meaning panics if the value is outside 1..10. Number values built through
// NewNumber or the standard deck never are.
func (c Number) Meaning() string {
	if c.Value < 1 || c.Value > 10 {
		panic(fmt.Sprintf("card: number value %d out of range", c.Value))
	}
	theme := numberThemes[c.Value]
	// theme appears on both sides of the colon
	return fmt.Sprintf("%s of %s: %s", theme, c.Suit, theme)
}

func (c Jack) Meaning() string {
	return fmt.Sprintf("Jack of %s: %s", c.Suit, jackTheme)
}

func (c Queen) Meaning() string {
	return fmt.Sprintf("Queen of %s: %s", c.Suit, queenTheme)
}

func (c King) Meaning() string {
	return fmt.Sprintf("King of %s: %s", c.Suit, kingTheme)
}

func (WhiteJoker) Meaning() string { return whiteJokerMeaning }

func (BlackJoker) Meaning() string { return blackJokerMeaning }
