package cmd

import (
	"fmt"
	"os"

	colorize "github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/arcanaland/vadar/internal/card"
	"github.com/arcanaland/vadar/internal/console"
	"github.com/arcanaland/vadar/internal/deck"
)

// deckCmd represents the deck command group
var deckCmd = &cobra.Command{
	Use:   "deck",
	Short: "Inspect the 54-card deck",
	Long:  `Commands for listing the standard deck and drawing cards from it.`,
}

// deckListCmd represents the deck ls command
var deckListCmd = &cobra.Command{
	Use:   "ls",
	Short: "List every card in the standard deck",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		noColor, _ := cmd.Flags().GetBool("no-color")
		idsOnly, _ := cmd.Flags().GetBool("ids")

		idColor := colorize.New(colorize.FgCyan, colorize.Bold)
		if noColor {
			idColor.DisableColor()
		}

		out := cmd.OutOrStdout()
		for _, c := range deck.StandardCards() {
			if idsOnly {
				fmt.Fprintln(out, c.ID())
				continue
			}
			fmt.Fprintf(out, "%s  %s\n", idColor.Sprintf("%-15s", c.ID()), c.Meaning())
		}
	},
}

// deckDrawCmd represents the deck draw command
var deckDrawCmd = &cobra.Command{
	Use:   "draw",
	Short: "Shuffle the deck and draw cards from it",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		n, _ := cmd.Flags().GetInt("count")
		show, _ := cmd.Flags().GetBool("show")
		noColor, _ := cmd.Flags().GetBool("no-color")

		drawn, err := deck.Standard().Draw(n)
		if err != nil {
			return err
		}

		con := console.New(cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr())
		con.SetNoColor(noColor || !console.IsTerminal(os.Stdout))

		for _, c := range drawn {
			if show {
				con.ShowCard(c, console.TerminalWidth(os.Stdout))
				continue
			}
			con.Card(card.Name(c), c.Meaning())
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(deckCmd)
	deckCmd.AddCommand(deckListCmd)
	deckCmd.AddCommand(deckDrawCmd)

	deckListCmd.Flags().Bool("ids", false, "Only print card IDs")
	deckDrawCmd.Flags().IntP("count", "n", 3, "Number of cards to draw")
	deckDrawCmd.Flags().Bool("show", false, "Render card faces")
}
