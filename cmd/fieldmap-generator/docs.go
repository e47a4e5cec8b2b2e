package main

import (
	"bytes"

	"github.com/spf13/cobra"

	"fieldmap-generator/internal/docs"
)

func newDocsCmd(a *app) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "docs <fields.yml> [fields.yml...]",
		Short: "Render the markdown field table of schema definitions",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lists := make([][]docs.Entry, 0, len(args))

			for _, path := range args {
				entries, err := docs.LoadFile(path)
				if err != nil {
					return err
				}

				a.log.Debug().Str("path", path).Int("fields", len(entries)).Msg("Loaded fields")
				lists = append(lists, entries)
			}

			var buf bytes.Buffer
			if err := docs.Render(&buf, docs.Merge(lists...)); err != nil {
				return err
			}

			return writeOutput(cmd.OutOrStdout(), output, buf.Bytes())
		},
	}

	addOutputFlag(cmd.Flags(), &output)

	return cmd
}
