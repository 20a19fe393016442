package teller

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/arcanaland/vadar/internal/console"
	"github.com/arcanaland/vadar/internal/deck"
	"github.com/arcanaland/vadar/internal/oracle"
	"github.com/arcanaland/vadar/internal/reading"
)

// askAttempts bounds re-prompting when Reprompt is set
const askAttempts = 3

// Session is one run of the fortune teller: greet, draw three cards, ask the
// oracle for a narrative and collect a review. A Session owns its deck.
type Session struct {
	Console *console.Console
	Oracle  oracle.Oracle
	Deck    *deck.Deck
	Logger  *log.Logger

	// Reprompt asks again on blank input instead of aborting
	Reprompt bool
	// ShowCards prints card faces for the drawn cards
	ShowCards bool
	// Width is the terminal width used by ShowCards
	Width int
}

// Run executes the session. Blank input, a short deck and a cancelled ctx
// abort the run; an oracle failure is reported and the session carries on.
func (s *Session) Run(ctx context.Context) error {
	if s.Logger == nil {
		s.Logger = log.Default()
	}
	con := s.Console

	con.Info("Welcome to Vadar Fortune Teller!")
	name, err := s.ask(ctx, "Please let me know your name: ")
	if err != nil {
		return fmt.Errorf("please let me know your name first: %w", err)
	}
	con.Info("Welcome onboard, %s!", name)

	drawn, err := s.Deck.Draw(reading.Size)
	if err != nil {
		return fmt.Errorf("draw cards: %w", err)
	}
	r, err := reading.New(drawn)
	if err != nil {
		return err
	}

	con.Info("Drawn cards:")
	for _, c := range r.Cards() {
		if s.ShowCards {
			con.ShowCard(c, s.Width)
			continue
		}
		con.Card(c.String(), c.Meaning())
	}

	prompt := r.Prompt()
	s.Logger.Debug("asking oracle", "prompt", prompt)

	lines, err := s.Oracle.Ask(ctx, prompt)
	switch {
	case err == nil:
		con.Info("Signal from the universe: \n")
		con.Println(reading.Format(lines))
	case errors.Is(err, context.Canceled):
		return err
	default:
		con.Error("%v", err)
	}

	con.Info("Thanks for using my product!")
	comment, err := s.ask(ctx, "Any comments? ")
	if err != nil {
		return fmt.Errorf("please let me know your comment: %w", err)
	}
	con.Info("Your review is %s!", comment)

	return nil
}

func (s *Session) ask(ctx context.Context, label string) (string, error) {
	if s.Reprompt {
		return s.Console.AskRetry(ctx, label, askAttempts)
	}
	return s.Console.Ask(ctx, label)
}
