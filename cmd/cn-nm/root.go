package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"cn-nm/internal/config"
	"cn-nm/numeral"
)

// app is the state shared by all subcommands.
type app struct {
	configPath     string
	verbose        bool
	signed         bool
	fullWidth      bool
	lenientDecimal bool

	buildLogger func(verbose bool) (*zap.Logger, error)

	cfg    *config.Config
	logger *zap.Logger
	conv   *numeral.Converter
}

func productionLogger(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}

	return cfg.Build()
}

func newRootCmd(buildLogger func(verbose bool) (*zap.Logger, error)) *cobra.Command {
	a := &app{buildLogger: buildLogger}

	root := &cobra.Command{
		Use:   "cn-nm",
		Short: "Convert between Arabic numbers and Chinese financial numerals",
		Long: `cn-nm spells numbers as Chinese financial numerals (壹贰叁...) and reads
them back.

Examples:
  cn-nm text 10.25          # 壹拾点贰伍
  cn-nm money 10.25         # 壹拾元贰角伍分
  cn-nm number 壹万零壹      # 10001
  cn-nm --signed text -- -5 # 负伍`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&a.configPath, "config", "c", "", "YAML config file")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "Enable verbose logging")
	flags.BoolVar(&a.signed, "signed", false, "Accept negative numbers and the 负 glyph")
	flags.BoolVar(&a.fullWidth, "full-width", false, "Fold full-width digits and signs before converting")
	flags.BoolVar(&a.lenientDecimal, "lenient-decimal", false, "Truncate malformed fractions instead of rejecting them")

	root.AddCommand(a.textCmd(), a.moneyCmd(), a.numberCmd(), a.checkCmd())

	return root
}

// setup loads the config, lets explicit flags override it and builds the
// logger and converter.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	cfg := config.Default()

	if a.configPath != "" {
		loaded, err := config.LoadFile(a.configPath)
		if err != nil {
			return err
		}

		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("signed") {
		cfg.Signed = a.signed
	}

	if flags.Changed("full-width") {
		cfg.FullWidth = a.fullWidth
	}

	if flags.Changed("lenient-decimal") {
		cfg.LenientDecimal = a.lenientDecimal
	}

	logger, err := a.buildLogger(a.verbose)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	a.cfg = cfg
	a.logger = logger
	a.conv = numeral.New(numeral.WithFlags(cfg.Flags()), numeral.WithLogger(logger))

	logger.Debug("converter ready",
		zap.String("config", a.configPath),
		zap.Stringer("mode", cfg.ModeEnum()),
		zap.Int("flags", int(cfg.Flags())))

	return nil
}
