package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"helperkit/core/utils"

	"github.com/spf13/cobra"
)

var deepFlag bool

// readInput reads the file named by the first argument, or stdin.
func readInput(cmd *cobra.Command, args []string) ([]byte, error) {
	if len(args) > 0 && args[0] != "-" {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", args[0], err)
		}
		return data, nil
	}
	return io.ReadAll(cmd.InOrStdin())
}

func writeJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// pruneCmd removes empty values from a JSON document
var pruneCmd = &cobra.Command{
	Use:   "prune [file]",
	Short: "Remove empty strings, nulls and empty arrays from a JSON document",
	Long: `Reads a JSON document from a file or stdin and removes keys whose value is
an empty string, null or an empty array. With --deep, nested objects and arrays
are pruned too and containers left empty are removed.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := readInput(cmd, args)
		if err != nil {
			return err
		}

		var doc any
		if err := json.Unmarshal(data, &doc); err != nil {
			return fmt.Errorf("invalid JSON: %w", err)
		}

		if deepFlag {
			return writeJSON(cmd, utils.PruneEmptyDeep(doc))
		}
		r, ok := doc.(map[string]any)
		if !ok {
			return utils.ErrNotObject
		}
		return writeJSON(cmd, utils.PruneEmpty(r))
	},
}

// errmsgCmd prints the first message of a field-error document
var errmsgCmd = &cobra.Command{
	Use:   "errmsg [file]",
	Short: "Print the first field message of a validation error document",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := readInput(cmd, args)
		if err != nil {
			return err
		}
		fe, err := utils.ParseFieldErrors(data)
		if err != nil {
			return err
		}
		msg, ok := utils.ExtractErrorMessage(fe)
		if !ok {
			return errors.New("no field errors")
		}
		fmt.Fprintln(cmd.OutOrStdout(), msg)
		return nil
	},
}

// typeofCmd prints the coarse type of a JSON value
var typeofCmd = &cobra.Command{
	Use:   "typeof [file]",
	Short: "Print the type tag (array, object, string, number, boolean) of a JSON value",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := readInput(cmd, args)
		if err != nil {
			return err
		}
		var v any
		if err := json.Unmarshal(data, &v); err != nil {
			return fmt.Errorf("invalid JSON: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), utils.TypeOf(v))
		return nil
	},
}

func init() {
	pruneCmd.Flags().BoolVar(&deepFlag, "deep", false, "Prune nested objects and arrays")
	RootCmd.AddCommand(pruneCmd, errmsgCmd, typeofCmd)
}
