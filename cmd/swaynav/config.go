package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/1broseidon/swaynav/internal/config"
)

func newConfigCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect and create the swaynav config file",
	}
	cmd.AddCommand(
		newConfigPrintCmd(a),
		newConfigValidateCmd(a),
		newConfigInitCmd(a),
	)
	return cmd
}

func (a *app) resolvedConfigPath() (string, error) {
	if a.configPath != "" {
		return a.configPath, nil
	}
	return config.DefaultConfigPath()
}

func newConfigPrintCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "print",
		Short: "Print the effective configuration, including flag overrides",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			out, err := yaml.Marshal(a.cfg)
			if err != nil {
				return failed(fmt.Errorf("failed to encode config: %w", err))
			}
			_, err = a.stdout.Write(out)
			return failed(err)
		},
	}
}

// setup already loads and validates the file; reaching RunE means it is valid.
func newConfigValidateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check the config file for unknown keys and invalid values",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			path, err := a.resolvedConfigPath()
			if err != nil {
				return failed(err)
			}
			if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
				fmt.Fprintf(a.stdout, "%s does not exist; defaults apply\n", path)
				return nil
			}
			color.New(color.FgGreen).Fprintf(a.stdout, "%s is valid\n", path)
			return nil
		},
	}
}

func newConfigInitCmd(a *app) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a config file with the default settings",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			path, err := a.resolvedConfigPath()
			if err != nil {
				return failed(err)
			}
			if _, err := os.Stat(path); err == nil && !force {
				return failed(fmt.Errorf("%s already exists (use --force to overwrite)", path))
			}
			if err := config.DefaultConfig().SaveTo(path); err != nil {
				return failed(err)
			}
			fmt.Fprintf(a.stdout, "wrote %s\n", path)
			return nil
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing file")
	return cmd
}
