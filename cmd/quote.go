package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/duartev/pioneiro/internal/config"
	"github.com/duartev/pioneiro/internal/quote"
)

var quoteCmd = &cobra.Command{
	Use:   "quote",
	Short: "Print a short encouragement message",
	Args:  cobra.NoArgs,
	RunE:  runQuote,
}

func runQuote(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	s := mustStore()
	profile := s.Profile()

	if cfg.Quote.Disabled {
		fmt.Println(quote.Fallback())
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	msg, err := quote.NewClient(cfg.Quote.APIKey, cfg.Quote.Model).Get(ctx, profile.Name, profile.Type)
	if err != nil {
		// Get already fell back; the error is informational only.
		fmt.Fprintf(os.Stderr, "Warning: quote API unavailable: %v\n", err)
	}
	fmt.Println(msg)
	return nil
}
