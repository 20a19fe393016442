package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/arcanaland/vadar/internal/card"
	"github.com/arcanaland/vadar/internal/console"
)

var showCmd = &cobra.Command{
	Use:   "show [card_id]",
	Short: "Display a card face with its meaning",
	Long: `Show renders a card from the standard deck together with its meaning.
Use canonical card IDs like 'spades.1', 'hearts.queen' or 'joker.white'.

Examples:
  vadar show spades.1
  vadar show clubs.king
  vadar show joker.black`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := card.Parse(args[0])
		if err != nil {
			return err
		}

		noColor, _ := cmd.Flags().GetBool("no-color")
		con := console.New(cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr())
		con.SetNoColor(noColor || !console.IsTerminal(os.Stdout))

		con.ShowCard(c, console.TerminalWidth(os.Stdout))
		return nil
	},
}

func init() {
	RootCmd.AddCommand(showCmd)
}
