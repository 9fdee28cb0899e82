package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"cn-nm/internal/suite"
	"cn-nm/options"
)

func (a *app) textCmd() *cobra.Command {
	var money bool

	cmd := &cobra.Command{
		Use:   "text <number>...",
		Short: "Spell numbers as numeral text",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mode := a.cfg.ModeEnum()
			if cmd.Flags().Changed("money") {
				mode = options.ModePlain
				if money {
					mode = options.ModeMoney
				}
			}

			return a.spell(cmd, args, mode)
		},
	}

	cmd.Flags().BoolVarP(&money, "money", "m", false, "Spell as money (元/角/分)")

	return cmd
}

func (a *app) moneyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "money <number>...",
		Short: "Spell numbers as money text",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.spell(cmd, args, options.ModeMoney)
		},
	}
}

// spell prints one line per argument. Rejected arguments are reported on
// stderr and make the command fail after all arguments were tried.
func (a *app) spell(cmd *cobra.Command, args []string, mode options.ModeEnum) error {
	failed := 0

	for _, arg := range args {
		text, err := a.conv.Format(arg, mode)
		if err != nil {
			cmd.PrintErrln(err)
			failed++

			continue
		}

		fmt.Fprintln(cmd.OutOrStdout(), text)
	}

	return rejected(failed, len(args))
}

func (a *app) numberCmd() *cobra.Command {
	var explain, money bool

	cmd := &cobra.Command{
		Use:   "number <text>...",
		Short: "Read numeral text back as a number",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if explain {
				a.explain(cmd, args)
				return nil
			}

			parse := a.conv.ParseNumber
			if money || a.cfg.ModeEnum() == options.ModeMoney {
				parse = a.conv.ParseMoney
			}

			failed := 0

			for _, arg := range args {
				v, err := parse(arg)
				if err != nil {
					cmd.PrintErrln(err)
					failed++

					continue
				}

				fmt.Fprintln(cmd.OutOrStdout(), strconv.FormatFloat(v, 'f', -1, 64))
			}

			return rejected(failed, len(args))
		},
	}

	cmd.Flags().BoolVarP(&explain, "explain", "e", false, "List every rule the text violates")
	cmd.Flags().BoolVarP(&money, "money", "m", false, "Read money text (元/角/分)")

	return cmd
}

func (a *app) explain(cmd *cobra.Command, args []string) {
	out := cmd.OutOrStdout()

	for _, arg := range args {
		diags := a.conv.Explain(arg)
		if len(diags) == 0 {
			fmt.Fprintf(out, "%s: ok\n", arg)
			continue
		}

		fmt.Fprintf(out, "%s:\n", arg)

		for _, d := range diags {
			fmt.Fprintf(out, "  %s %s\n", d.Severity, d)
		}
	}
}

func (a *app) checkCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Run a YAML fixture suite",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := suite.LoadFile(file)
			if err != nil {
				return err
			}

			report, err := suite.NewRunner(a.conv, a.logger, a.cfg.Workers).Run(cmd.Context(), f.Cases)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()

			for _, failure := range report.Failures {
				fmt.Fprintln(out, "FAIL", failure)
			}

			fmt.Fprintf(out, "%d/%d cases passed\n", report.Total-len(report.Failures), report.Total)

			if !report.OK() {
				return fmt.Errorf("%d cases failed", len(report.Failures))
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Fixture file")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func rejected(failed, total int) error {
	if failed == 0 {
		return nil
	}

	return fmt.Errorf("%d of %d inputs rejected", failed, total)
}
