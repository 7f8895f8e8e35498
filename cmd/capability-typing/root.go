package main

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"capability-typing/internal/config"
	"capability-typing/internal/logger"
	"capability-typing/internal/schemafile"
	"capability-typing/types"
	"capability-typing/typesys"
)

const (
	flagConfig   = "config"
	flagLogLevel = "log-level"
	flagDebug    = "debug"
)

// app is the state shared by all commands.
type app struct {
	configPath string
	logLevel   string
	debug      bool

	cfg *config.Config
	log zerolog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{log: zerolog.Nop()}

	cmd := &cobra.Command{
		Use:   "capability-typing [sub-command]",
		Short: "Type checks and converts capability discovery entries",
		Long: `capability-typing validates records against the declared types of their
interface definitions and converts discovery entries between the base,
global and meta info shapes.`,
		SilenceUsage:      true,
		DisableAutoGenTag: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().StringVar(&a.configPath, flagConfig, "", "configuration file (YAML or JSON)")
	cmd.PersistentFlags().StringVar(&a.logLevel, flagLogLevel, "", "log level (debug, info, warn, error)")
	cmd.PersistentFlags().BoolVar(&a.debug, flagDebug, false, "enable debug logging")

	cmd.AddCommand(
		newAnalyzeCmd(a),
		newValidateCmd(a),
		newCheckCmd(a),
		newConvertCmd(a),
		newSchemaCmd(a),
		newVersionCmd(a),
	)

	return cmd
}

// setup loads the configuration and applies flag overrides.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}

	if cmd.Flags().Changed(flagLogLevel) {
		cfg.Logging.Level = a.logLevel
	}

	if a.debug {
		cfg.Logging.Debug = true
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	if err := logger.Init(cfg.Logging); err != nil {
		return err
	}

	a.cfg = cfg
	a.log = logger.WithComponent(cmd.Name())

	return nil
}

// registry returns the declared types to check against: the schema document
// at path, the configured schema file, or the built-in joynr.types collection.
func (a *app) registry(path string) (*typesys.Registry, error) {
	if path == "" && a.cfg != nil {
		path = a.cfg.Check.SchemaFile
	}

	if path == "" {
		reg := typesys.NewRegistry()
		if err := types.Register(reg); err != nil {
			return nil, err
		}

		reg.Seal()
		a.log.Debug().Msg("using built-in joynr.types descriptors")

		return reg, nil
	}

	doc, err := schemafile.LoadFile(path)
	if err != nil {
		return nil, err
	}

	reg, err := schemafile.Build(doc)
	if err != nil {
		return nil, fmt.Errorf("schema file %s: %w", path, err)
	}

	reg.Seal()
	a.log.Debug().Str("file", path).Int("types", reg.Len()).Msg("loaded schema document")

	return reg, nil
}

// readInput reads the named file, or stdin for "-".
func readInput(cmd *cobra.Command, path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(cmd.InOrStdin())
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	return data, nil
}
