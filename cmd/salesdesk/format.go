package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/HerbHall/salesdesk/internal/config"
	"github.com/HerbHall/salesdesk/internal/format"
	"github.com/spf13/cobra"
)

var (
	formatCurrencyCode string
	formatLocale       string
	formatDateLayout   string
)

func init() {
	rootCmd.AddCommand(formatCmd)
	formatCmd.AddCommand(formatCurrencyCmd)
	formatCmd.AddCommand(formatPhoneCmd)
	formatCmd.AddCommand(formatDateCmd)

	formatCurrencyCmd.Flags().StringVar(&formatCurrencyCode, "currency", "", "ISO 4217 code (default: format.currency from config)")
	formatCurrencyCmd.Flags().StringVar(&formatLocale, "locale", "", "BCP 47 locale (default: format.locale from config)")
	formatDateCmd.Flags().StringVar(&formatDateLayout, "layout", "short", "Layout: short, long or iso")
}

var formatCmd = &cobra.Command{
	Use:   "format",
	Short: "Format values the way quotes and client records show them",
}

var formatCurrencyCmd = &cobra.Command{
	Use:   "currency <amount>",
	Short: "Format a money amount",
	Example: `  salesdesk format currency 1234.5
  salesdesk format currency --currency EUR --locale de-DE 1234.5`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		amount, err := strconv.ParseFloat(args[0], 64)
		if err != nil {
			return fmt.Errorf("invalid amount %q", args[0])
		}
		f, err := formatter()
		if err != nil {
			return err
		}
		out, err := f.Money(amount)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), out)
		return nil
	},
}

var formatPhoneCmd = &cobra.Command{
	Use:   "phone <number>",
	Short: "Format a phone number",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintln(cmd.OutOrStdout(), format.Phone(args[0]))
		return nil
	},
}

var formatDateCmd = &cobra.Command{
	Use:   "date <yyyy-mm-dd>",
	Short: "Format a calendar date",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := time.Parse("2006-01-02", args[0])
		if err != nil {
			return fmt.Errorf("invalid date %q: expected yyyy-mm-dd", args[0])
		}
		fmt.Fprintln(cmd.OutOrStdout(), format.Date(t, formatDateLayout))
		return nil
	},
}

// formatter resolves currency and locale from flags, falling back to config.
func formatter() (format.Formatter, error) {
	f := format.Formatter{Currency: formatCurrencyCode, Locale: formatLocale}
	if f.Currency != "" && f.Locale != "" {
		return f, nil
	}
	v, err := config.Load(configPath)
	if err != nil {
		return f, err
	}
	if f.Currency == "" {
		f.Currency = v.GetString("format.currency")
	}
	if f.Locale == "" {
		f.Locale = v.GetString("format.locale")
	}
	return f, nil
}
