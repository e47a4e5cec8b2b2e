package main

import (
	"github.com/spf13/cobra"
	"github.com/thediveo/enumflag/v2"

	"fieldmap-generator/internal/convert"
	"fieldmap-generator/internal/gen"
	"fieldmap-generator/internal/mapping"
	"fieldmap-generator/internal/schema"
	"fieldmap-generator/internal/source"
)

var macStorageIDs = map[convert.MACStorage][]string{
	convert.MACAsKeyword: {"keyword"},
	convert.MACAsMAC:     {"mac"},
}

func newSchemaCmd(a *app) *cobra.Command {
	var (
		outputDir string
		mac       convert.MACStorage
		strict    bool
	)

	cmd := &cobra.Command{
		Use:   "schema <fields.ecs.yml> <mappings.csv>",
		Short: "Generate the fields.yml and ecs.yml schema definitions",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ref, err := schema.LoadReferenceFile(args[0])
			if err != nil {
				return err
			}

			a.log.Debug().Int("fields", ref.Len()).Msg("Loaded ECS reference")

			rows, err := source.ReadRowsFile(args[1], source.LayoutOf(a.cfg))
			if err != nil {
				return err
			}

			mapCfg := a.cfg.Mapping()
			opts := schema.Options{
				Types:      mapCfg.Types,
				Namespaces: mapCfg.Namespaces,
				MACStorage: a.cfg.MAC(),
				Strict:     strict,
			}

			if cmd.Flags().Changed("mac-storage") {
				opts.MACStorage = mac
			}

			b := schema.NewBuilder(ref, opts)
			if err := b.AddAll(mapping.Rows(rows)); err != nil {
				return err
			}

			diags := b.Diagnostics()
			a.report(diags)

			if err := diags.Error(); err != nil {
				return err
			}

			files, err := b.Files()
			if err != nil {
				return err
			}

			for _, f := range files {
				a.log.Info().Str("file", f.Filename).Str("dir", outputDir).Msg("Saving")
			}

			return gen.WriteFiles(files, outputDir)
		},
	}

	cmd.Flags().StringVarP(&outputDir, "output-dir", "d", ".", "directory receiving fields.yml and ecs.yml")
	cmd.Flags().Var(enumflag.New(&mac, "storage", macStorageIDs, enumflag.EnumCaseInsensitive),
		"mac-storage", "schema type of MAC address fields: keyword or mac")
	cmd.Flags().BoolVar(&strict, "strict", false, "fail on duplicated RSA fields and undocumented ECS fields")

	return cmd
}
