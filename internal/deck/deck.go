package deck

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/arcanaland/vadar/internal/card"
)

// StandardSize is the number of cards in a standard deck with both jokers
const StandardSize = 54

var (
	ErrInsufficientCards = errors.New("not enough cards in deck")
	ErrNegativeDraw      = errors.New("cannot draw a negative number of cards")
)

// InsufficientCardsError reports a draw of more cards than the deck holds
type InsufficientCardsError struct {
	Requested int
	Remaining int
}

func (e *InsufficientCardsError) Error() string {
	return fmt.Sprintf("deck has %d cards, cannot draw %d", e.Remaining, e.Requested)
}

// Is reports whether target is ErrInsufficientCards
func (e *InsufficientCardsError) Is(target error) bool {
	return target == ErrInsufficientCards
}

// RNG abstracts the random source so draws can be made deterministic in tests
type RNG interface {
	// IntN returns a non-negative random int in [0, n)
	IntN(n int) int
}

// globalRNG delegates to the auto-seeded math/rand/v2 source
type globalRNG struct{}

func (globalRNG) IntN(n int) int { return rand.IntN(n) }

// Deck is an ordered pile of cards. It is not safe for concurrent use.
type Deck struct {
	cards []card.Card
	rng   RNG
}

// Option configures a Deck
type Option func(*Deck)

// WithRNG replaces the random source used for shuffling
func WithRNG(r RNG) Option {
	return func(d *Deck) {
		if r != nil {
			d.rng = r
		}
	}
}

// New creates a deck holding the given cards in order
func New(cards []card.Card, opts ...Option) *Deck {
	d := &Deck{
		cards: append([]card.Card(nil), cards...),
		rng:   globalRNG{},
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Standard creates the 54-card deck in canonical order
func Standard(opts ...Option) *Deck {
	return New(StandardCards(), opts...)
}

// StandardCards returns the canonical card order: each suit in turn
// (Spades, Hearts, Diamonds, Clubs) as 1-10, Jack, Queen, King, followed by
// the white and black jokers.
func StandardCards() []card.Card {
	cards := make([]card.Card, 0, StandardSize)

	for _, suit := range card.Suits {
		for value := 1; value <= 10; value++ {
			cards = append(cards, card.Number{Value: value, Suit: suit})
		}
		cards = append(cards,
			card.Jack{Suit: suit},
			card.Queen{Suit: suit},
			card.King{Suit: suit},
		)
	}

	// Add jokers
	cards = append(cards, card.WhiteJoker{}, card.BlackJoker{})

	return cards
}

// Len returns the number of cards left in the deck
func (d *Deck) Len() int {
	return len(d.cards)
}

// Cards returns a copy of the remaining cards in their current order
func (d *Deck) Cards() []card.Card {
	return append([]card.Card(nil), d.cards...)
}

// Shuffle permutes the deck in place (Fisher-Yates)
func (d *Deck) Shuffle() {
	for i := len(d.cards) - 1; i > 0; i-- {
		j := d.rng.IntN(i + 1)
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	}
}

// Draw reshuffles the deck and removes the first n cards. Drawing more cards
// than remain is a caller error: nothing is drawn and an
// *InsufficientCardsError is returned.
func (d *Deck) Draw(n int) ([]card.Card, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeDraw, n)
	}
	if n > len(d.cards) {
		return nil, &InsufficientCardsError{Requested: n, Remaining: len(d.cards)}
	}

	d.Shuffle()

	drawn := make([]card.Card, n)
	copy(drawn, d.cards[:n])
	d.cards = append(d.cards[:0], d.cards[n:]...)

	return drawn, nil
}
