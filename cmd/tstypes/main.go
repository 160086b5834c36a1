package main

import (
	"context"
	"errors"
	"io"
	"log"
	"os"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("tstypes: ")
	if err := run(context.Background(), os.Args[1:], os.Stdout); err != nil {
		log.Print(err)
		os.Exit(1)
	}
}

// run executes one command line. Telemetry is flushed even when the
// command fails so the span recording the failure is exported.
func run(ctx context.Context, args []string, out io.Writer) error {
	cmd, shutdown := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(out)
	cmd.SetErr(out)
	err := cmd.ExecuteContext(ctx)
	return errors.Join(err, shutdown(ctx))
}
