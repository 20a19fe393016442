package console

import (
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/fatih/color"
	"golang.org/x/term"

	"github.com/arcanaland/vadar/internal/card"
)

const (
	faceWidth  = 9 // inner width of the card frame
	faceHeight = 7
	spacing    = 4
)

// TerminalWidth returns the width of the terminal behind f, or 80 if unknown
func TerminalWidth(f *os.File) int {
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil || width <= 0 {
		return 80
	}
	return width
}

// IsTerminal reports whether f is attached to a terminal
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// rankLabel returns the corner index printed on the card face
func rankLabel(c card.Card) string {
	switch v := c.(type) {
	case card.Number:
		return fmt.Sprintf("%d", v.Value)
	case card.Jack:
		return "J"
	case card.Queen:
		return "Q"
	case card.King:
		return "K"
	default:
		return "JKR"
	}
}

func pip(c card.Card) string {
	switch c.(type) {
	case card.WhiteJoker:
		return "☆"
	case card.BlackJoker:
		return "★"
	}
	s, _ := card.SuitOf(c)
	return s.Symbol()
}

// padRight pads s with spaces to n runes
func padRight(s string, n int) string {
	if l := utf8.RuneCountInString(s); l < n {
		return s + strings.Repeat(" ", n-l)
	}
	return s
}

// padLeft right-aligns s in n runes
func padLeft(s string, n int) string {
	if l := utf8.RuneCountInString(s); l < n {
		return strings.Repeat(" ", n-l) + s
	}
	return s
}

// Face returns the lines of a small ASCII card face
func Face(c card.Card) []string {
	label := rankLabel(c)
	symbol := pip(c)

	lines := make([]string, 0, faceHeight+2)
	lines = append(lines, "┌"+strings.Repeat("─", faceWidth)+"┐")

	for row := 0; row < faceHeight; row++ {
		var inner string
		switch row {
		case 0:
			inner = padRight(label, faceWidth)
		case 1:
			inner = padRight(symbol, faceWidth)
		case faceHeight / 2:
			inner = padRight(strings.Repeat(" ", faceWidth/2)+symbol, faceWidth)
		case faceHeight - 2:
			inner = padLeft(symbol, faceWidth)
		case faceHeight - 1:
			inner = padLeft(label, faceWidth)
		default:
			inner = strings.Repeat(" ", faceWidth)
		}
		lines = append(lines, "│"+inner+"│")
	}

	lines = append(lines, "└"+strings.Repeat("─", faceWidth)+"┘")
	return lines
}

// WrapText breaks text into lines of at most width columns, counted in runes.
// Words longer than width are split.
func WrapText(text string, width int) []string {
	if width < 10 {
		width = 40
	}

	words := strings.Fields(text)
	if len(words) == 0 {
		return []string{""}
	}

	var lines []string
	var cur []rune
	for _, word := range words {
		w := []rune(word)
		for len(w) > width {
			if len(cur) > 0 {
				lines = append(lines, string(cur))
				cur = nil
			}
			lines = append(lines, string(w[:width]))
			w = w[width:]
		}

		switch {
		case len(w) == 0:
		case len(cur) == 0:
			cur = w
		case len(cur)+1+len(w) <= width:
			cur = append(append(cur, ' '), w...)
		default:
			lines = append(lines, string(cur))
			cur = w
		}
	}
	if len(cur) > 0 {
		lines = append(lines, string(cur))
	}
	return lines
}

// ShowCard prints the card face with its name, ID and meaning beside it.
// width is the terminal width used to wrap the meaning.
func (c *Console) ShowCard(cd card.Card, width int) {
	face := Face(cd)
	faceColor := c.paint(color.FgHiWhite)
	if s, ok := card.SuitOf(cd); ok && s.IsRed() {
		faceColor = c.paint(color.FgRed)
	}

	label := c.paint(color.FgCyan)
	value := c.paint(color.FgHiWhite)

	infoLines := []string{
		label.Sprint("Card: ") + value.Sprint(card.Name(cd)),
		label.Sprint("ID:   ") + value.Sprint(cd.ID()),
	}
	if s, ok := card.SuitOf(cd); ok {
		infoLines = append(infoLines, label.Sprint("Suit: ")+value.Sprintf("%s · %s", s, s.Symbol()))
	}

	faceWidthCols := faceWidth + 2
	infoStartCol := faceWidthCols + spacing

	// Calculate available width for text, ensuring it's at least 20 characters
	infoWidth := width - infoStartCol - 2
	if infoWidth < 20 {
		infoWidth = 20
	}

	infoLines = append(infoLines, "", label.Sprint("Meaning:"))
	infoLines = append(infoLines, WrapText(cd.Meaning(), infoWidth)...)

	fmt.Fprintln(c.out)

	maxLines := max(len(face), len(infoLines))
	for i := 0; i < maxLines; i++ {
		fmt.Fprint(c.out, "  ")
		if i < len(face) {
			fmt.Fprint(c.out, faceColor.Sprint(face[i]))
			fmt.Fprint(c.out, strings.Repeat(" ", spacing))
		} else {
			fmt.Fprint(c.out, strings.Repeat(" ", infoStartCol))
		}

		if i < len(infoLines) {
			fmt.Fprint(c.out, infoLines[i])
		}

		fmt.Fprintln(c.out)
	}

	fmt.Fprintln(c.out)
}
