// Package main provides the CLI entrypoint for fieldmap-generator.
//
// fieldmap-generator compiles the NetWitness meta field table into:
//   - ECS and RSA mapping tables for the js and go pipelines (mappings)
//   - fields.yml and ecs.yml schema definitions (schema)
//   - markdown documentation of schema definitions (docs)
//
// The check command compiles and validates a table without writing output.
package main

import (
	"fmt"
	"os"
)

func main() {
	os.Exit(run())
}

func run() int {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return 1
	}

	return 0
}
