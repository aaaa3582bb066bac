// Command micstatus prints the mute state of the default microphone, the
// same way the overlay front-end sees it.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"mute-overlay/internal/micstate"
	"mute-overlay/internal/overlay"
)

var errUnknownState = errors.New("mute state unknown")

type statuser interface {
	Status() string
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		if !errors.Is(err, errUnknownState) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		watch    time.Duration
		count    int
		logLevel string
	)

	cmd := &cobra.Command{
		Use:           "micstatus",
		Short:         "Print whether the default microphone is muted",
		Long:          "Prints \"true\" when the default capture device (console role) is muted,\n\"false\" when it is not, and an \"Error: \" line when the state cannot be read.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			lvl, err := zerolog.ParseLevel(logLevel)
			if err != nil {
				return fmt.Errorf("invalid log level %q: %w", logLevel, err)
			}
			logger := zerolog.New(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr()}).Level(lvl).With().Timestamp().Logger()

			return run(cmd.Context(), cmd.OutOrStdout(), micstate.New(nil, logger), watch, count)
		},
	}

	cmd.Flags().DurationVarP(&watch, "watch", "w", 0, "repeat the query at this interval")
	cmd.Flags().IntVarP(&count, "count", "n", 0, "with --watch, stop after this many queries (0 = until interrupted)")
	cmd.Flags().StringVar(&logLevel, "log-level", "warn", "log level: trace, debug, info, warn, error")

	cmd.AddCommand(newMaskCmd())
	return cmd
}

// run prints one status line per query. Without a watch interval a single
// query is made and an unknown state is reported as errUnknownState.
func run(ctx context.Context, out io.Writer, q statuser, watch time.Duration, count int) error {
	if watch <= 0 {
		status := q.Status()
		fmt.Fprintln(out, status)
		if strings.HasPrefix(status, micstate.ErrorPrefix) {
			return errUnknownState
		}
		return nil
	}

	ticker := time.NewTicker(watch)
	defer ticker.Stop()

	for n := 1; ; n++ {
		fmt.Fprintln(out, q.Status())
		if count > 0 && n >= count {
			return nil
		}

		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}

func newMaskCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "mask",
		Short: "Print the extended window style applied to the overlay",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			style := overlay.OverlayStyle()
			out := cmd.OutOrStdout()

			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(struct {
					overlay.Style
					Mask string `json:"mask"`
				}{style, fmt.Sprintf("0x%08X", style.Mask())})
			}

			fmt.Fprintln(out, style)
			fmt.Fprintf(out, "0x%08X\n", style.Mask())
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print as JSON")
	return cmd
}
