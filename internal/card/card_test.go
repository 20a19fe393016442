package card

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSuitString(t *testing.T) {
	assert.Equal(t, "Spades", Spades.String())
	assert.Equal(t, "Hearts", Hearts.String())
	assert.Equal(t, "Diamonds", Diamonds.String())
	assert.Equal(t, "Clubs", Clubs.String())
	assert.True(t, Hearts.IsRed())
	assert.False(t, Clubs.IsRed())
}

func TestMeaningNumberOneOfSpades(t *testing.T) {
	m := Meaning(Number{Value: 1, Suit: Spades})

	assert.Contains(t, m, "New beginnings, potential")
	assert.Contains(t, m, "Spades")
	assert.Equal(t, "New beginnings, potential of Spades: New beginnings, potential", m)
}

func TestMeaningJokers(t *testing.T) {
	assert.Equal(t,
		"Powerful positive force, hidden potential, a guiding light within the dream",
		Meaning(WhiteJoker{}))
	assert.Equal(t,
		"Significant obstacle, fear, or negative influence in the dream",
		Meaning(BlackJoker{}))
}

func TestMeaningCourtCards(t *testing.T) {
	assert.Equal(t, "Jack of Hearts: Initiative, new ideas, adaptability", Meaning(Jack{Suit: Hearts}))
	assert.Equal(t, "Queen of Diamonds: Nurturing, intuition, emotional mastery", Meaning(Queen{Suit: Diamonds}))
	assert.Equal(t, "King of Clubs: Leadership, authority, stability", Meaning(King{Suit: Clubs}))
}

func TestMeaningIsPure(t *testing.T) {
	cards := []Card{
		Number{Value: 7, Suit: Diamonds},
		Jack{Suit: Spades},
		Queen{Suit: Hearts},
		King{Suit: Clubs},
		WhiteJoker{},
		BlackJoker{},
	}

	for _, c := range cards {
		// Structurally equal copies must read the same
		var twin Card
		switch v := c.(type) {
		case Number:
			twin = Number{Value: v.Value, Suit: v.Suit}
		default:
			twin = v
		}
		assert.Equal(t, c, twin)
		assert.Equal(t, Meaning(c), Meaning(twin))
		assert.NotEmpty(t, Meaning(c))
	}
}

func TestMeaningOutOfRangePanics(t *testing.T) {
	for _, v := range []int{0, 11, -3} {
		assert.Panics(t, func() { _ = Meaning(Number{Value: v, Suit: Hearts}) }, "value %d", v)
	}
}

func TestNewNumber(t *testing.T) {
	n, err := NewNumber(10, Clubs)
	require.NoError(t, err)
	assert.Equal(t, Number{Value: 10, Suit: Clubs}, n)

	_, err = NewNumber(0, Clubs)
	assert.ErrorIs(t, err, ErrValueOutOfRange)

	_, err = NewNumber(11, Clubs)
	assert.ErrorIs(t, err, ErrValueOutOfRange)
}

func TestParseRoundTrip(t *testing.T) {
	cards := []Card{
		Number{Value: 1, Suit: Spades},
		Number{Value: 10, Suit: Clubs},
		Jack{Suit: Hearts},
		Queen{Suit: Diamonds},
		King{Suit: Spades},
		WhiteJoker{},
		BlackJoker{},
	}

	for _, c := range cards {
		parsed, err := Parse(c.ID())
		require.NoError(t, err, c.ID())
		assert.Equal(t, c, parsed)
	}
}

func TestParseRejectsUnknownIDs(t *testing.T) {
	for _, id := range []string{"", "spades", "spades.11", "spades.0", "cups.1", "joker.red", "hearts.ace", "a.b.c"} {
		_, err := Parse(id)
		assert.ErrorIs(t, err, ErrUnknownCard, "id %q", id)
	}
}

func TestParseIsCaseInsensitive(t *testing.T) {
	c, err := Parse("  Hearts.Queen ")
	require.NoError(t, err)
	assert.Equal(t, Queen{Suit: Hearts}, c)
}

func TestNameAndSuitOf(t *testing.T) {
	assert.Equal(t, "7 of Hearts", Name(Number{Value: 7, Suit: Hearts}))
	assert.Equal(t, "Queen of Clubs", Name(Queen{Suit: Clubs}))
	assert.Equal(t, "White Joker", Name(WhiteJoker{}))

	s, ok := SuitOf(King{Suit: Diamonds})
	assert.True(t, ok)
	assert.Equal(t, Diamonds, s)

	_, ok = SuitOf(BlackJoker{})
	assert.False(t, ok)
}
