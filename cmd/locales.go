package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/dotcommander/seoscore/internal/locale"
)

var localesCmd = &cobra.Command{
	Use:   "locales",
	Short: "List the languages with built-in assessment data",
	Long: `List the languages with built-in assessment data, with their text direction.
Requests in any other locale are assessed as "` + locale.DefaultCode + `".`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runLocales(cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(localesCmd)
}

func runLocales(out io.Writer) error {
	for _, code := range locale.Supported() {
		if _, err := fmt.Fprintf(out, "%s\t%s\n", code, locale.Resolve(code).Direction()); err != nil {
			return err
		}
	}
	return nil
}
