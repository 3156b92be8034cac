package cmd

import (
	"errors"
	"fmt"
	"strings"

	"helperkit/core/utils"

	"github.com/spf13/cobra"
)

var errEmptyText = errors.New("text is empty")

// colorCmd prints the deterministic color of a text
var colorCmd = &cobra.Command{
	Use:   "color <text...>",
	Short: "Print the #rrggbb color derived from a text",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, ok := utils.StringToColor(strings.Join(args, " "))
		if !ok {
			return errEmptyText
		}
		fmt.Fprintln(cmd.OutOrStdout(), c)
		return nil
	},
}

// initialsCmd prints the initials of a name
var initialsCmd = &cobra.Command{
	Use:   "initials <name...>",
	Short: "Print the two-letter initials of a name",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		initials, err := utils.Initials(strings.Join(args, " "))
		if err != nil {
			return fmt.Errorf("initials: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), initials)
		return nil
	},
}

// camelCmd prints a text in lower camel case
var camelCmd = &cobra.Command{
	Use:   "camel <text...>",
	Short: "Print a text in lower camel case",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), utils.CamelCase(strings.Join(args, " ")))
	},
}

// hyphenateCmd prints a text with whitespace runs replaced by hyphens
var hyphenateCmd = &cobra.Command{
	Use:   "hyphenate <text...>",
	Short: "Replace whitespace runs with hyphens",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), utils.Hyphenate(strings.Join(args, " ")))
	},
}

func init() {
	RootCmd.AddCommand(colorCmd, initialsCmd, camelCmd, hyphenateCmd)
}
