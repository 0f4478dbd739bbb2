package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/conneroisu/devutils/internal/config"
	"github.com/conneroisu/devutils/internal/logging"
)

// ListFlags are the operands of the list command.
type ListFlags struct {
	Separator string
	Index     int
	Length    int
}

func addListFlags(cmd *cobra.Command, flags *ListFlags) {
	cmd.Flags().StringVarP(&flags.Separator, "separator", "s", config.DefaultListSeparator, "token separator (default from list.separator)")
	cmd.Flags().IntVarP(&flags.Index, "index", "i", 0, "slice: number of tokens to skip")
	cmd.Flags().IntVarP(&flags.Length, "length", "n", -1, "slice: number of tokens to take (all when omitted)")
	AddFlagValidation(cmd.Flags(), "separator", ValidateSeparator)
	AddFlagValidation(cmd.Flags(), "index", ValidateNonNegative)
}

// PercentageFlags are the operands of the percentage command. The float
// operands are read through Changed so that a missing one can be told apart
// from zero.
type PercentageFlags struct {
	From       float64
	To         float64
	Percentage float64
	Of         float64
	Precision  int
}

func addPercentageFlags(cmd *cobra.Command, flags *PercentageFlags) {
	cmd.Flags().Float64Var(&flags.From, "from", 0, "to, change: starting number")
	cmd.Flags().Float64Var(&flags.To, "to", 0, "to, change: target number")
	cmd.Flags().Float64Var(&flags.Percentage, "percentage", 0, "of: the percentage")
	cmd.Flags().Float64Var(&flags.Of, "of", 0, "of: the number to take the percentage of")
	cmd.Flags().IntVarP(&flags.Precision, "precision", "p", config.DefaultPercentagePrecision, "decimal places (default from percentage.precision)")
	AddFlagValidation(cmd.Flags(), "precision", ValidatePrecisionFlag)
}

// TokenFlags shape generated tokens and identifiers.
type TokenFlags struct {
	Length      int
	NoUppercase bool
	NoLowercase bool
	NoNumbers   bool
	NoSymbols   bool
	UUIDVersion int
	Namespace   string
	Name        string
	NodeID      string
	Count       int
}

func addTokenFlags(cmd *cobra.Command, flags *TokenFlags) {
	cmd.Flags().IntVar(&flags.Length, "length", config.DefaultTokenLength, "token: number of characters (default from generate.token_length)")
	cmd.Flags().BoolVarP(&flags.NoUppercase, "no-uppercase", "u", false, "token: leave out uppercase letters")
	cmd.Flags().BoolVarP(&flags.NoLowercase, "no-lowercase", "l", false, "token: leave out lowercase letters")
	cmd.Flags().BoolVarP(&flags.NoNumbers, "no-numbers", "n", false, "token: leave out digits")
	cmd.Flags().BoolVarP(&flags.NoSymbols, "no-symbols", "s", false, "token: leave out symbols")
	cmd.Flags().IntVar(&flags.UUIDVersion, "uuid-version", 4, "uuid: version (1, 3, 4, 5)")
	cmd.Flags().StringVar(&flags.Namespace, "namespace", "dns", "uuid: namespace for v3/v5 (dns, url, oid, x500 or a uuid)")
	cmd.Flags().StringVar(&flags.Name, "name", "", "uuid: name for v3/v5")
	cmd.Flags().StringVar(&flags.NodeID, "node-id", "", "uuid: node for v1 as 12 hex digits or a MAC address (default the host's)")
	cmd.Flags().IntVar(&flags.Count, "count", 1, "how many values to generate, one per line")
	AddFlagValidation(cmd.Flags(), "length", ValidateTokenLength)
	AddFlagValidation(cmd.Flags(), "count", ValidatePositive)
}

// AddFlagValidation adds validation for a specific flag
func AddFlagValidation(flags *pflag.FlagSet, flagName string, validator func(string) error) {
	flag := flags.Lookup(flagName)
	if flag == nil {
		return
	}

	flag.Value = &validatingValue{
		Value:       flag.Value,
		validator:   validator,
		originalSet: flag.Value.Set,
	}
}

type validatingValue struct {
	pflag.Value
	validator   func(string) error
	originalSet func(string) error
}

func (v *validatingValue) Set(val string) error {
	if v.validator != nil {
		if err := v.validator(val); err != nil {
			return err
		}
	}
	return v.originalSet(val)
}

func ValidateSeparator(s string) error {
	if s == "" {
		return fmt.Errorf("separator cannot be empty")
	}
	return nil
}

func ValidatePrecisionFlag(s string) error {
	n, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("invalid precision: %s", s)
	}
	return config.ValidatePrecision(n)
}

func ValidateTokenLength(s string) error {
	n, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("invalid length: %s", s)
	}
	if n < 1 || n > config.MaxTokenLength {
		return fmt.Errorf("length must be between 1 and %d, got %d", config.MaxTokenLength, n)
	}
	return nil
}

func ValidatePositive(s string) error {
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return fmt.Errorf("must be a positive number, got %s", s)
	}
	return nil
}

func ValidateNonNegative(s string) error {
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return fmt.Errorf("must be zero or more, got %s", s)
	}
	return nil
}

func ValidateLogLevel(s string) error {
	_, err := logging.ParseLevel(s)
	return err
}

func ValidateLogFormat(s string) error {
	switch strings.ToLower(s) {
	case "text", "json":
		return nil
	}
	return fmt.Errorf("invalid log format %s, must be one of: text, json", s)
}
