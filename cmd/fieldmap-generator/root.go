package main

import (
	"fmt"
	"io"

	"github.com/davecgh/go-spew/spew"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/thediveo/enumflag/v2"

	"fieldmap-generator/internal/config"
	"fieldmap-generator/internal/diagnostic"
	"fieldmap-generator/internal/gen"
	"fieldmap-generator/internal/mapping"
	"fieldmap-generator/internal/source"
)

var logLevelIDs = map[zerolog.Level][]string{
	zerolog.DebugLevel: {"debug"},
	zerolog.InfoLevel:  {"info"},
	zerolog.WarnLevel:  {"warn", "warning"},
	zerolog.ErrorLevel: {"error"},
}

// app holds the state shared by every command.
type app struct {
	configPath string
	logLevel   zerolog.Level
	dump       bool

	cfg *config.Config
	log zerolog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{logLevel: zerolog.InfoLevel}

	cmd := &cobra.Command{
		Use:           "fieldmap-generator",
		Short:         "Generates field mappings, schema definitions and docs from the meta field table",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd.ErrOrStderr())
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "project configuration file (YAML)")
	flags.Var(enumflag.New(&a.logLevel, "level", logLevelIDs, enumflag.EnumCaseInsensitive),
		"log-level", "log level: debug, info, warn or error")
	flags.BoolVar(&a.dump, "dump", false, "dump the compiled mapping table at debug level")

	cmd.AddCommand(
		newMappingsCmd(a),
		newCheckCmd(a),
		newSchemaCmd(a),
		newDocsCmd(a),
	)

	return cmd
}

func (a *app) setup(stderr io.Writer) error {
	a.log = zerolog.New(zerolog.ConsoleWriter{Out: stderr, NoColor: true, PartsExclude: []string{zerolog.TimestampFieldName}}).
		Level(a.logLevel)

	if a.configPath == "" {
		a.cfg = config.Default()
		return nil
	}

	cfg, err := config.LoadFile(a.configPath)
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.log.Debug().Str("path", a.configPath).Msg("Loaded configuration")

	return nil
}

// compile reads the mapping table at path and the optional override file,
// and returns the validated table.
func (a *app) compile(path, overridesPath string) (*mapping.Table, error) {
	var overrides *mapping.Overrides

	if overridesPath != "" {
		o, err := source.LoadOverridesFile(overridesPath)
		if err != nil {
			return nil, err
		}

		a.log.Debug().Str("path", overridesPath).Int("rules", o.Len()).Msg("Loaded overrides")
		overrides = o
	}

	rows, err := source.ReadRowsFile(path, source.LayoutOf(a.cfg))
	if err != nil {
		return nil, err
	}

	a.log.Debug().Str("path", path).Int("rows", len(rows)).Msg("Read mapping table")

	table, err := mapping.Compile(a.cfg.Mapping(), mapping.Rows(rows), overrides)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	if a.dump {
		a.dumpTable(table)
	}

	return table, nil
}

// dumpTable logs table at debug level. The dump is only built when debug
// logging is enabled.
func (a *app) dumpTable(table *mapping.Table) {
	ev := a.log.Debug()
	if !ev.Enabled() {
		return
	}

	ev.Msg("Compiled table:\n" + spew.Sdump(table))
}

// report logs every diagnostic at the level matching its severity.
func (a *app) report(diags diagnostic.Diagnostics) {
	for _, d := range diags.All() {
		var ev *zerolog.Event

		if d.Severity == diagnostic.SeverityError {
			ev = a.log.Error()
		} else {
			ev = a.log.Warn()
		}

		ev = ev.Str("code", d.Code).Str("field", d.Field)
		if len(d.Suggestions) > 0 {
			ev = ev.Strs("suggestions", d.Suggestions)
		}

		ev.Msg(d.Message)
	}
}

func addOutputFlag(fs *pflag.FlagSet, output *string) {
	fs.StringVarP(output, "output", "o", "", "output file (default stdout)")
}

// writeOutput writes content to path, or to w when path is empty.
func writeOutput(w io.Writer, path string, content []byte) error {
	if path == "" {
		_, err := w.Write(content)
		return err
	}

	return gen.WriteFile(content, path)
}
