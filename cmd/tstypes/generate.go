package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/hanpama/tstypes/internal/config"
	"github.com/hanpama/tstypes/internal/discovery"
	"github.com/hanpama/tstypes/internal/generate"
	"github.com/hanpama/tstypes/internal/runid"
	"github.com/spf13/cobra"
)

const defaultConfigFile = "codegen.yml"

type inputOptions struct {
	configPath     string
	root           string
	schemas        []string
	documents      []string
	skipValidation bool
}

func (o *inputOptions) bind(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringVarP(&o.configPath, "config", "c", "", "Config file (default: ./"+defaultConfigFile+" when present)")
	flags.StringVar(&o.root, "root", ".", "Directory globs are resolved against")
	flags.StringSliceVar(&o.schemas, "schema", nil, "Schema glob, overrides the config. Repeatable")
	flags.StringSliceVar(&o.documents, "documents", nil, "Document glob, overrides the config. Repeatable")
	flags.BoolVar(&o.skipValidation, "skip-validation", false, "Do not validate documents against the schema")
}

func (o *inputOptions) loadConfig() (*config.Config, error) {
	path := o.configPath
	if path == "" {
		if _, err := os.Stat(defaultConfigFile); errors.Is(err, fs.ErrNotExist) {
			return config.Default(), nil
		}
		path = defaultConfigFile
	}
	return config.Load(path)
}

// run resolves every input the options point at.
func (o *inputOptions) run(ctx context.Context) (*generate.Result, error) {
	cfg, err := o.loadConfig()
	if err != nil {
		return nil, err
	}
	if len(o.schemas) > 0 {
		cfg.Schema = o.schemas
	}
	if len(o.documents) > 0 {
		cfg.Documents = o.documents
	}
	if len(cfg.Schema) == 0 {
		return nil, fmt.Errorf("no schema: set schema in the config or pass --schema")
	}

	disc, err := discovery.NewFileSystemDiscovery(ctx, o.root, cfg.Schema, cfg.Documents)
	if err != nil {
		return nil, err
	}
	ctx, _ = runid.NewContext(ctx)
	return generate.Run(ctx, cfg, disc, generate.Options{SkipValidation: o.skipValidation})
}

func registerGenerateCmd(parent *cobra.Command) {
	opts := &inputOptions{}
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Print the resolved types",
		Long: `Load the schema and documents, resolve every field type and fragment
composition, and print the result as a plain listing.`,
		Example: `  tstypes generate --config codegen.yml
  tstypes generate --schema 'schema/**/*.graphqls' --documents 'src/**/*.graphql'`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := opts.run(cmd.Context())
			if err != nil {
				return err
			}
			return printResult(cmd.OutOrStdout(), res)
		},
	}
	opts.bind(cmd)
	parent.AddCommand(cmd)
}

func registerCheckCmd(parent *cobra.Command) {
	opts := &inputOptions{}
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Validate the config and inputs without printing types",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := opts.run(cmd.Context())
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "ok: %d types, %d enums, %d fragments, %d operations\n",
				len(res.Types), len(res.Enums), len(res.Fragments), len(res.Operations))
			return err
		},
	}
	opts.bind(cmd)
	parent.AddCommand(cmd)
}
