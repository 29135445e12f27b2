package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/HerbHall/salesdesk/internal/theme"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var (
	themeOutput   string
	themeOverride string
)

func init() {
	rootCmd.AddCommand(themeCmd)
	themeCmd.AddCommand(themeDefaultCmd)
	themeCmd.AddCommand(themeResolveCmd)
	themeCmd.AddCommand(themePreviewCmd)

	themeCmd.PersistentFlags().StringVarP(&themeOverride, "override", "f", "", "YAML or JSON file holding a theme override")
	themeDefaultCmd.Flags().StringVarP(&themeOutput, "output", "o", "yaml", "Output format: yaml or json")
	themeResolveCmd.Flags().StringVarP(&themeOutput, "output", "o", "yaml", "Output format: yaml or json")
}

var themeCmd = &cobra.Command{
	Use:   "theme",
	Short: "Inspect themes offline",
	Long: `Builds themes locally from the default palette or an override file,
without a database or a running server.`,
}

var themeDefaultCmd = &cobra.Command{
	Use:   "default",
	Short: "Print the default theme",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return writeTheme(cmd.OutOrStdout(), theme.BuildDefault(), themeOutput)
	},
}

var themeResolveCmd = &cobra.Command{
	Use:   "resolve",
	Short: "Print the theme an override resolves to",
	Long: `Merges the override file given with --override into the default palette
and prints the resulting theme. Without --override this is the default theme.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := themeFromFlag()
		if err != nil {
			return err
		}
		return writeTheme(cmd.OutOrStdout(), t, themeOutput)
	},
}

var themePreviewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Render theme colors in the terminal",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := themeFromFlag()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), theme.Preview(t))
		return nil
	},
}

func themeFromFlag() (theme.Theme, error) {
	if themeOverride == "" {
		return theme.BuildDefault(), nil
	}
	ov, err := readOverride(themeOverride)
	if err != nil {
		return theme.Theme{}, err
	}
	return theme.Assemble(theme.Merge(&ov)), nil
}

// readOverride loads an override file. JSON is valid YAML, so one decoder
// covers both.
func readOverride(path string) (theme.Override, error) {
	var ov theme.Override
	data, err := os.ReadFile(path)
	if err != nil {
		return ov, fmt.Errorf("read override: %w", err)
	}
	if err := yaml.Unmarshal(data, &ov); err != nil {
		return ov, fmt.Errorf("parse override %s: %w", path, err)
	}
	if err := ov.Validate(); err != nil {
		return ov, fmt.Errorf("%s: %w", path, err)
	}
	return ov, nil
}

func writeTheme(w io.Writer, t theme.Theme, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(t)
	case "yaml", "":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(t); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown output format %q: must be yaml or json", format)
	}
}
