// Package main is a small probe CLI built on scg-uikit.
//
// It fetches a URL and prints either the number of items found (optionally
// under a JSON field) or the short error message a UI would show.
package main

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/next-trace/scg-uikit/fn"
	"github.com/next-trace/scg-uikit/httperr"
)

func main() {
	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(out io.Writer) *cobra.Command {
	var (
		debug        bool
		timeout      time.Duration
		maxRedirects int
		field        string
	)

	cmd := &cobra.Command{
		Use:           "probe <url>",
		Short:         "Fetch a URL and report items or a short failure message",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(_ *cobra.Command, args []string) error {
			logger, err := newLogger(debug)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			client := &http.Client{
				Timeout:       timeout,
				CheckRedirect: httperr.RedirectPolicy(maxRedirects),
			}

			line := fn.Call(func(a fn.Attrs) string {
				return probe(a, logger)
			}, map[string]any{"client": client, "url": args[0], "field": field})

			_, err = fmt.Fprintln(out, line)
			return err
		},
	}

	cmd.Flags().BoolVar(&debug, "debug", false, "enable debug logging")
	cmd.Flags().DurationVar(&timeout, "timeout", 10*time.Second, "request timeout")
	cmd.Flags().IntVar(&maxRedirects, "max-redirects", 10, "redirects to follow before failing")
	cmd.Flags().StringVar(&field, "field", "", "JSON field holding the item list")

	return cmd
}

func newLogger(debug bool) (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	if debug {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	config.OutputPaths = []string{"stderr"}

	return config.Build()
}

// probe expects "client", "url" and "field" in a.
func probe(a fn.Attrs, logger *zap.Logger) string {
	client, ok := fn.Lookup[*http.Client](a, "client")
	if !ok {
		client = http.DefaultClient
	}
	target, _ := fn.Lookup[string](a, "url")
	field, _ := fn.Lookup[string](a, "field")

	logger.Info("Probing", zap.String("url", target), zap.String("field", field))

	line, _ := fn.Catching(func() (string, error) {
		body, err := fetch(client, target)
		if err != nil {
			return "", err
		}

		items := fn.TheseJSON(body, field)
		return fmt.Sprintf("ok: %d items", len(items)), nil
	}, fn.LogCaught(logger, "Probe failed", func(err error) string {
		return "error: " + httperr.ShortMessage(err)
	}), nil)

	return line
}

func fetch(client *http.Client, target string) ([]byte, error) {
	resp, err := client.Get(target)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if err := httperr.CheckStatus(resp); err != nil {
		return nil, err
	}

	return io.ReadAll(resp.Body)
}
