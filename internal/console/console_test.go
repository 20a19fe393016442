package console

import (
	"bytes"
	"context"
	"io"
	"strings"
	"sync"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcanaland/vadar/internal/card"
)

func newTestConsole(input string) (*Console, *bytes.Buffer, *bytes.Buffer) {
	var out, errOut bytes.Buffer
	c := New(strings.NewReader(input), &out, &errOut)
	c.SetNoColor(true)
	return c, &out, &errOut
}

var ctx = context.Background()

// syncBuffer is a bytes.Buffer safe for the reader goroutine and the test
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestAskTrimsInput(t *testing.T) {
	c, out, _ := newTestConsole("  Vadar \nnext\n")

	name, err := c.Ask(ctx, "Please let me know your name: ")
	require.NoError(t, err)
	assert.Equal(t, "Vadar", name)
	assert.Contains(t, out.String(), "[INFO] Please let me know your name:")

	next, err := c.Ask(ctx, "again")
	require.NoError(t, err)
	assert.Equal(t, "next", next)
}

func TestAskEmptyInput(t *testing.T) {
	c, _, _ := newTestConsole("   \n")
	_, err := c.Ask(ctx, "name")
	assert.ErrorIs(t, err, ErrEmptyInput)

	c, _, _ = newTestConsole("")
	_, err = c.Ask(ctx, "name")
	assert.ErrorIs(t, err, ErrEmptyInput)
	assert.ErrorIs(t, err, io.EOF)
}

func TestAskWithoutTrailingNewline(t *testing.T) {
	c, _, _ := newTestConsole("last line")
	answer, err := c.Ask(ctx, "comment")
	require.NoError(t, err)
	assert.Equal(t, "last line", answer)
}

func TestAskRetry(t *testing.T) {
	c, _, _ := newTestConsole("\n\nthird time\n")
	answer, err := c.AskRetry(ctx, "name", 3)
	require.NoError(t, err)
	assert.Equal(t, "third time", answer)

	c, _, _ = newTestConsole("\n\n\n\nlate\n")
	_, err = c.AskRetry(ctx, "name", 3)
	assert.ErrorIs(t, err, ErrEmptyInput)

	c, out, _ := newTestConsole("")
	_, err = c.AskRetry(ctx, "name", 3)
	assert.ErrorIs(t, err, ErrEmptyInput)
	assert.Equal(t, 1, strings.Count(out.String(), "[INFO] name"), "exhausted input should not be re-asked")
}

func TestAskRetryRepromptsBeforeNextLine(t *testing.T) {
	pr, pw := io.Pipe()
	t.Cleanup(func() { _ = pw.Close() })

	var out syncBuffer
	c := New(pr, &out, io.Discard)
	c.SetNoColor(true)

	type result struct {
		answer string
		err    error
	}
	done := make(chan result, 1)
	go func() {
		answer, err := c.AskRetry(ctx, "name", 3)
		done <- result{answer, err}
	}()

	_, err := pw.Write([]byte("\n"))
	require.NoError(t, err)

	assert.Eventually(t, func() bool {
		return strings.Count(out.String(), "[INFO] name") == 2
	}, 2*time.Second, 10*time.Millisecond, "second prompt must appear before the next answer is typed")

	_, err = pw.Write([]byte("Vadar\n"))
	require.NoError(t, err)

	select {
	case r := <-done:
		require.NoError(t, r.err)
		assert.Equal(t, "Vadar", r.answer)
	case <-time.After(2 * time.Second):
		t.Fatal("AskRetry did not return")
	}
}

func TestAskCancelledWhileWaiting(t *testing.T) {
	pr, pw := io.Pipe()
	t.Cleanup(func() { _ = pw.Close() })

	c := New(pr, io.Discard, io.Discard)
	cctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() {
		_, err := c.Ask(cctx, "name")
		done <- err
	}()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("Ask ignored cancellation")
	}
}

func TestStatusLines(t *testing.T) {
	c, out, errOut := newTestConsole("")

	c.Info("Welcome onboard, %s!", "Vadar")
	c.Error("Please let me know your name first!")
	c.Card("Number(1, Spades)", "New beginnings")

	assert.Equal(t, "[INFO] Welcome onboard, Vadar!\n==> Number(1, Spades)\nNew beginnings\n", out.String())
	assert.Equal(t, "[ERROR] Please let me know your name first!\n", errOut.String())
}

func TestFaceIsRectangular(t *testing.T) {
	for _, cd := range []card.Card{
		card.Number{Value: 10, Suit: card.Hearts},
		card.Queen{Suit: card.Spades},
		card.WhiteJoker{},
	} {
		face := Face(cd)
		require.Len(t, face, faceHeight+2)
		for _, line := range face {
			assert.Equal(t, faceWidth+2, utf8.RuneCountInString(line), "line %q", line)
		}
		assert.Contains(t, face[1], rankLabel(cd))
	}
}

func TestWrapText(t *testing.T) {
	lines := WrapText("Powerful positive force, hidden potential, a guiding light within the dream", 20)
	for _, l := range lines {
		assert.LessOrEqual(t, len(l), 20)
	}
	assert.Equal(t, "Powerful positive force, hidden potential, a guiding light within the dream", strings.Join(lines, " "))
	assert.Equal(t, []string{""}, WrapText("   ", 30))
}

func TestWrapTextCountsRunes(t *testing.T) {
	// 10 runes but 28 bytes per word
	lines := WrapText("♠♥♦♣·♠♥♦♣· ♠♥♦♣·♠♥♦♣·", 21)
	assert.Equal(t, []string{"♠♥♦♣·♠♥♦♣· ♠♥♦♣·♠♥♦♣·"}, lines)

	lines = WrapText("abcdefghijklmnopqrstuvwxy end", 10)
	assert.Equal(t, []string{"abcdefghij", "klmnopqrst", "uvwxy end"}, lines)
	for _, l := range lines {
		assert.LessOrEqual(t, utf8.RuneCountInString(l), 10)
	}
}

func TestShowCard(t *testing.T) {
	c, out, _ := newTestConsole("")

	c.ShowCard(card.King{Suit: card.Diamonds}, 80)

	s := out.String()
	assert.Contains(t, s, "Card: King of Diamonds")
	assert.Contains(t, s, "ID:   diamonds.king")
	assert.Contains(t, s, "Leadership, authority, stability")
}
