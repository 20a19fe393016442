package card

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	ErrUnknownCard     = errors.New("unknown card")
	ErrValueOutOfRange = errors.New("number card value must be between 1 and 10")
)

// Suit is one of the four French suits
type Suit int

const (
	Spades Suit = iota
	Hearts
	Diamonds
	Clubs
)

// Suits lists the suits in canonical deck order
var Suits = []Suit{Spades, Hearts, Diamonds, Clubs}

func (s Suit) String() string {
	switch s {
	case Spades:
		return "Spades"
	case Hearts:
		return "Hearts"
	case Diamonds:
		return "Diamonds"
	case Clubs:
		return "Clubs"
	default:
		return fmt.Sprintf("Suit(%d)", int(s))
	}
}

// Symbol returns the unicode pip for the suit
func (s Suit) Symbol() string {
	switch s {
	case Spades:
		return "♠"
	case Hearts:
		return "♥"
	case Diamonds:
		return "♦"
	case Clubs:
		return "♣"
	default:
		return "•"
	}
}

// IsRed reports whether the suit is printed in red
func (s Suit) IsRed() bool {
	return s == Hearts || s == Diamonds
}

func (s Suit) id() string {
	return strings.ToLower(s.String())
}

// Card is a playing card. The set of implementations is closed:
// Number, Jack, Queen, King, WhiteJoker and BlackJoker.
type Card interface {
	// ID returns the canonical card ID (e.g., spades.1, hearts.queen, joker.white)
	ID() string
	// Meaning returns the one-line divinatory meaning of the card
	Meaning() string
	String() string

	card()
}

// Number is a pip card valued 1 through 10
type Number struct {
	Value int
	Suit  Suit
}

// Jack is the jack of a suit
type Jack struct{ Suit Suit }

// Queen is the queen of a suit
type Queen struct{ Suit Suit }

// King is the king of a suit
type King struct{ Suit Suit }

// WhiteJoker is the colored (big) joker
type WhiteJoker struct{}

// BlackJoker is the monochrome (small) joker
type BlackJoker struct{}

func (Number) card() {}
func (Jack) card() {}
func (Queen) card() {}
func (King) card() {}
func (WhiteJoker) card() {}
func (BlackJoker) card() {}

// NewNumber returns a number card, rejecting values outside 1..10
func NewNumber(value int, suit Suit) (Number, error) {
	if value < 1 || value > 10 {
		return Number{}, fmt.Errorf("%w: got %d", ErrValueOutOfRange, value)
	}
	return Number{Value: value, Suit: suit}, nil
}

func (c Number) ID() string { return fmt.Sprintf("%s.%d", c.Suit.id(), c.Value) }
func (c Jack) ID() string { return c.Suit.id() + ".jack" }
func (c Queen) ID() string { return c.Suit.id() + ".queen" }
func (c King) ID() string { return c.Suit.id() + ".king" }
func (WhiteJoker) ID() string { return "joker.white" }
func (BlackJoker) ID() string { return "joker.black" }

func (c Number) String() string { return fmt.Sprintf("Number(%d, %s)", c.Value, c.Suit) }
func (c Jack) String() string { return fmt.Sprintf("Jack(%s)", c.Suit) }
func (c Queen) String() string { return fmt.Sprintf("Queen(%s)", c.Suit) }
func (c King) String() string { return fmt.Sprintf("King(%s)", c.Suit) }
func (WhiteJoker) String() string { return "WhiteJoker" }
func (BlackJoker) String() string { return "BlackJoker" }

// Parse resolves a canonical card ID back into a card
func Parse(id string) (Card, error) {
	parts := strings.Split(strings.ToLower(strings.TrimSpace(id)), ".")
	if len(parts) != 2 {
		return nil, fmt.Errorf("%w: %s", ErrUnknownCard, id)
	}

	if parts[0] == "joker" {
		switch parts[1] {
		case "white":
			return WhiteJoker{}, nil
		case "black":
			return BlackJoker{}, nil
		}
		return nil, fmt.Errorf("%w: %s", ErrUnknownCard, id)
	}

	var suit Suit
	found := false
	for _, s := range Suits {
		if s.id() == parts[0] {
			suit = s
			found = true
			break
		}
	}
	if !found {
		return nil, fmt.Errorf("%w: %s", ErrUnknownCard, id)
	}

	switch parts[1] {
	case "jack":
		return Jack{Suit: suit}, nil
	case "queen":
		return Queen{Suit: suit}, nil
	case "king":
		return King{Suit: suit}, nil
	}

	value, err := strconv.Atoi(parts[1])
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrUnknownCard, id)
	}
	n, err := NewNumber(value, suit)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrUnknownCard, id)
	}
	return n, nil
}

// Name returns a human-readable card name (e.g., 7 of Hearts, White Joker)
func Name(c Card) string {
	switch v := c.(type) {
	case Number:
		return fmt.Sprintf("%d of %s", v.Value, v.Suit)
	case Jack:
		return "Jack of " + v.Suit.String()
	case Queen:
		return "Queen of " + v.Suit.String()
	case King:
		return "King of " + v.Suit.String()
	case WhiteJoker:
		return "White Joker"
	case BlackJoker:
		return "Black Joker"
	}
	return c.String()
}

// SuitOf returns the suit of c; jokers have none
func SuitOf(c Card) (Suit, bool) {
	switch v := c.(type) {
	case Number:
		return v.Suit, true
	case Jack:
		return v.Suit, true
	case Queen:
		return v.Suit, true
	case King:
		return v.Suit, true
	}
	return 0, false
}
