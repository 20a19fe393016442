package reading

import (
	"fmt"
	"strings"

	"github.com/arcanaland/vadar/internal/card"
)

// Size is the number of cards in a reading: past, present and future
const Size = 3

// Reading is a past/present/future spread of three cards
type Reading struct {
	Past    card.Card
	Present card.Card
	Future  card.Card
}

// New builds a reading from exactly three drawn cards, in draw order
func New(cards []card.Card) (Reading, error) {
	if len(cards) != Size {
		return Reading{}, fmt.Errorf("a reading needs %d cards, got %d", Size, len(cards))
	}
	return Reading{Past: cards[0], Present: cards[1], Future: cards[2]}, nil
}

// Cards returns the cards in past, present, future order
func (r Reading) Cards() []card.Card {
	return []card.Card{r.Past, r.Present, r.Future}
}

// Prompt composes the text sent to the oracle
func (r Reading) Prompt() string {
	return fmt.Sprintf("write fortune teller for these keywords the past: '%s', "+
		"the present: '%s' "+
		"and the future: '%s'",
		r.Past.Meaning(),
		r.Present.Meaning(),
		r.Future.Meaning(),
	)
}

// Format joins the oracle's lines for display
func Format(lines []string) string {
	var b strings.Builder
	for _, line := range lines {
		b.WriteString(line)
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), " \t\r\n")
}
