package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/duartev/pioneiro/internal/config"
	"github.com/duartev/pioneiro/internal/notify"
	"github.com/duartev/pioneiro/internal/reminder"
)

var (
	remindInterval time.Duration
	remindOnce     bool
)

var remindCmd = &cobra.Command{
	Use:   "remind",
	Short: "Run the service-day reminder daemon",
	Long: `Run the reminder daemon in the foreground.

At the configured hour it sends a desktop notification when tomorrow is a
planned service day, at most once per calendar day. Stop it with Ctrl+C.`,
	Args: cobra.NoArgs,
	RunE: runRemind,
}

func init() {
	remindCmd.Flags().DurationVar(&remindInterval, "interval", time.Minute, "Poll interval")
	remindCmd.Flags().BoolVar(&remindOnce, "once", false, "Evaluate the rule once and exit")
}

func runRemind(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	level, err := zerolog.ParseLevel(cfg.Log.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).
		Level(level).
		With().Timestamp().Logger()

	s := mustStore()
	sched := reminder.New(s, &notify.Desktop{}, log)

	if remindOnce {
		if sched.Check(time.Now()) {
			fmt.Println("Reminder sent.")
		} else {
			fmt.Println("No reminder due.")
		}
		return nil
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	sched.Run(ctx, remindInterval)
	return nil
}
