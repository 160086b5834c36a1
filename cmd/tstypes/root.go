package main

import (
	"context"
	"log"

	"github.com/hanpama/tstypes/internal/eventbus"
	"github.com/hanpama/tstypes/internal/events"
	"github.com/hanpama/tstypes/internal/otel"
	"github.com/hanpama/tstypes/internal/runid"
	"github.com/spf13/cobra"
)

type rootOptions struct {
	otelEndpoint string
	otelService  string
	verbose      bool
}

var setupTracing = otel.Setup

// newRootCmd builds the command tree. The returned shutdown flushes
// telemetry and must be called once Execute returns, whatever the outcome.
func newRootCmd() (*cobra.Command, func(context.Context) error) {
	opts := &rootOptions{}
	shutdown := func(context.Context) error { return nil }

	rootCmd := &cobra.Command{
		Use:           "tstypes",
		Short:         "Resolve TypeScript types for a GraphQL schema and its documents",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			eventbus.Use(eventbus.New())
			if opts.verbose {
				subscribeLogger()
			}
			fn, err := setupTracing(opts.otelEndpoint, opts.otelService)
			if err != nil {
				return err
			}
			shutdown = fn
			return nil
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.otelEndpoint, "otel.endpoint", "", "OTLP collector endpoint")
	flags.StringVar(&opts.otelService, "otel.service", "tstypes", "OpenTelemetry service name")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Log progress to stderr")

	registerGenerateCmd(rootCmd)
	registerCheckCmd(rootCmd)

	return rootCmd, func(ctx context.Context) error { return shutdown(ctx) }
}

func subscribeLogger() {
	eventbus.Subscribe(func(ctx context.Context, e events.GenerateStart) {
		rid, _ := runid.FromContext(ctx)
		log.Printf("run %s: %d schema file(s), %d document(s)", rid, len(e.Schemas), len(e.Documents))
	})
	eventbus.Subscribe(func(ctx context.Context, e events.SelectionComposed) {
		log.Printf("composed %s: %s", e.Path, e.Type)
	})
	eventbus.Subscribe(func(ctx context.Context, e events.GenerateFinish) {
		rid, _ := runid.FromContext(ctx)
		if e.Err != nil {
			log.Printf("run %s failed after %s: %v", rid, e.Duration, e.Err)
			return
		}
		log.Printf("run %s: %d type(s), %d operation(s) in %s", rid, e.Types, e.Operations, e.Duration)
	})
}
