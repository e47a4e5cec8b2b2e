package main

import (
	"github.com/spf13/cobra"

	"fieldmap-generator/internal/gen"
)

func newMappingsCmd(a *app) *cobra.Command {
	var (
		output    string
		outputDir string
		opts      = gen.DefaultOptions()
	)

	cmd := &cobra.Command{
		Use:   "mappings {go|js} <mappings.csv> [overrides.csv|overrides.yml]",
		Short: "Generate the ECS and RSA mapping tables",
		Args:  cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := gen.ParseFormatKind(args[0])
			if err != nil {
				return err
			}

			format, err := gen.NewFormat(kind, opts)
			if err != nil {
				return err
			}

			var overridesPath string
			if len(args) == 3 {
				overridesPath = args[2]
			}

			table, err := a.compile(args[1], overridesPath)
			if err != nil {
				return err
			}

			tables := table.EmitAll(a.cfg.Mapping().Namespaces)

			file, err := gen.Generate(format, tables)
			if err != nil {
				return err
			}

			if outputDir != "" {
				err = gen.WriteFiles([]gen.GeneratedFile{file}, outputDir)
			} else {
				err = writeOutput(cmd.OutOrStdout(), output, file.Content)
			}

			if err != nil {
				return err
			}

			a.log.Info().
				Str("format", kind.String()).
				Int("ecs", len(tables.ECS)).
				Int("rsa", len(tables.RSA)).
				Msg("Generated mappings")

			return nil
		},
	}

	addOutputFlag(cmd.Flags(), &output)
	cmd.Flags().StringVarP(&outputDir, "output-dir", "d", "", "write mappings.js or mappings_gen.go into this directory")
	cmd.MarkFlagsMutuallyExclusive("output", "output-dir")
	cmd.Flags().StringVar(&opts.PackageName, "package", opts.PackageName, "package name of generated Go code")

	return cmd
}
