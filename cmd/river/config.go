package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/river-rush/internal/config"
)

var flagDumpFormat string

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect gameplay configuration",
}

var configDumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Print the effective config",
	Long: `Print the config a run would use after the search order and the
--difficulty preset are applied.

Examples:
  river config dump > ~/.river-rush/configs/river.yaml
  river config dump --format toml --difficulty hard`,
	Args: cobra.NoArgs,
	RunE: runConfigDump,
}

var configValidateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Validate a config file",
	Args:  cobra.ExactArgs(1),
	RunE:  runConfigValidate,
}

func init() {
	configDumpCmd.Flags().StringVar(&flagDumpFormat, "format", "yaml", "Output format: yaml or toml")
	configCmd.AddCommand(configDumpCmd)
	configCmd.AddCommand(configValidateCmd)
}

func runConfigDump(cmd *cobra.Command, _ []string) error {
	format := config.Format(flagDumpFormat)
	if format != config.FormatYAML && format != config.FormatTOML {
		return fmt.Errorf("unknown format %q (want yaml or toml)", flagDumpFormat)
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	config.ApplyPreset(&cfg, config.ParsePreset(flagDifficulty))

	data, err := config.Encode(cfg, format)
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}

func runConfigValidate(cmd *cobra.Command, args []string) error {
	path := args[0]
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config: cannot read %s: %w", path, err)
	}
	cfg, err := config.Parse(data, config.FormatFor(path))
	if err != nil {
		return fmt.Errorf("config: cannot parse %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		out := cmd.ErrOrStderr()
		fmt.Fprintf(out, "%s is invalid:\n", path)
		n := 0
		for _, e := range unwrapAll(err) {
			fmt.Fprintf(out, "  - %v\n", e)
			n++
		}
		return fmt.Errorf("%d problem(s) in %s", n, path)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s is valid\n", path)
	return nil
}

// unwrapAll flattens an errors.Join tree into its leaves.
func unwrapAll(err error) []error {
	var joined interface{ Unwrap() []error }
	if errors.As(err, &joined) {
		var out []error
		for _, e := range joined.Unwrap() {
			out = append(out, unwrapAll(e)...)
		}
		return out
	}
	return []error{err}
}
