package main

import (
	"fmt"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"fieldmap-generator/internal/mapping"
	"fieldmap-generator/internal/namespace"
)

func newCheckCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "check <mappings.csv> [overrides.csv|overrides.yml]",
		Short: "Compile and validate the mapping table without generating output",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var overridesPath string
			if len(args) == 2 {
				overridesPath = args[1]
			}

			table, err := a.compile(args[0], overridesPath)
			if err != nil {
				return err
			}

			classifier := a.cfg.Mapping().Namespaces

			summary := tablewriter.NewTable(cmd.OutOrStdout())
			summary.Header("Namespace", "Sources", "Setters")

			for _, ns := range []namespace.Namespace{namespace.ECS, namespace.RSA} {
				entries := table.Emit(classifier.Predicate(ns))

				err := summary.Append(strings.ToUpper(ns.String()), fmt.Sprint(len(entries)), fmt.Sprint(countTargets(entries)))
				if err != nil {
					return err
				}
			}

			if err := summary.Render(); err != nil {
				return err
			}

			a.log.Info().
				Int("sources", len(table.Sources())).
				Int("destinations", len(table.Destinations())).
				Str("rsa_prefix", classifier.Prefix()).
				Msg("Mapping table is valid")

			return nil
		},
	}
}

func countTargets(entries []mapping.Entry) int {
	n := 0
	for _, e := range entries {
		n += len(e.Targets)
	}

	return n
}
