package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/arcanaland/vadar/internal/config"
	"github.com/arcanaland/vadar/internal/console"
	"github.com/arcanaland/vadar/internal/deck"
	"github.com/arcanaland/vadar/internal/oracle"
	"github.com/arcanaland/vadar/internal/teller"
)

var fortuneCmd = &cobra.Command{
	Use:   "fortune",
	Short: "Draw three cards and have your fortune told",
	Long: `Fortune asks for your name, shuffles a fresh 54-card deck and draws three
cards for your past, present and future. Their meanings are sent to a text
generation service, which answers with a short fortune.

The API key is read from GEMINI_API_KEY (a .env file in the working
directory is honored).`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		apiKey, err := config.APIKey()
		if err != nil {
			return err
		}

		logger, err := newLogger(cmd, cfg)
		if err != nil {
			return err
		}

		flags := cmd.Flags()
		model, _ := flags.GetString("model")
		baseURL, _ := flags.GetString("base-url")
		timeout, _ := flags.GetDuration("timeout")
		reprompt, _ := flags.GetBool("reprompt")
		showCards, _ := flags.GetBool("cards")
		noColor, _ := flags.GetBool("no-color")

		if model == "" {
			model = cfg.Oracle.Model
		}
		if baseURL == "" {
			baseURL = cfg.Oracle.BaseURL
		}
		if timeout == 0 {
			timeout = cfg.Oracle.Timeout.Duration
		}

		client := oracle.NewClient(apiKey,
			oracle.WithBaseURL(baseURL),
			oracle.WithModel(model),
			oracle.WithTimeout(timeout),
			oracle.WithLogger(logger),
		)
		logger.Debug("oracle configured", "model", client.Model(), "base_url", baseURL)

		con := console.New(cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr())
		con.SetNoColor(noColor || !console.IsTerminal(os.Stdout))

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		session := &teller.Session{
			Console:   con,
			Oracle:    client,
			Deck:      deck.Standard(),
			Logger:    logger,
			Reprompt:  reprompt,
			ShowCards: showCards,
			Width:     console.TerminalWidth(os.Stdout),
		}
		return session.Run(ctx)
	},
}

func init() {
	RootCmd.AddCommand(fortuneCmd)

	fortuneCmd.Flags().String("model", "", "Model to ask (default from config, "+oracle.DefaultModel+")")
	fortuneCmd.Flags().String("base-url", "", "OpenAI-compatible API base URL (default from config)")
	fortuneCmd.Flags().Duration("timeout", 0, "Timeout for the text generation request (default from config)")
	fortuneCmd.Flags().Bool("reprompt", false, "Ask again on blank input instead of aborting")
	fortuneCmd.Flags().Bool("cards", false, "Render card faces for the drawn cards")
}
