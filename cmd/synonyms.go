package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dotcommander/seoscore/internal/metastore"
)

var synonymsCmd = &cobra.Command{
	Use:   "synonyms",
	Short: "Convert keyphrase synonyms to and from their stored form",
	Long: `Convert keyphrase synonyms to and from the form the CMS stores them in:
a one-element JSON array holding the comma-joined list.

EXAMPLES:

  echo '["fast", "quick"]' | seoscore synonyms encode   # ["fast, quick"]
  echo '["fast, quick"]' | seoscore synonyms decode     # ["fast","quick"]`,
}

var synonymsEncodeCmd = &cobra.Command{
	Use:   "encode",
	Short: "Read a JSON array of synonyms from stdin and print the stored form",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSynonymsEncode(cmd.InOrStdin(), cmd.OutOrStdout())
	},
}

var synonymsDecodeCmd = &cobra.Command{
	Use:   "decode",
	Short: "Read the stored form from stdin and print the synonyms as a JSON array",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSynonymsDecode(cmd.InOrStdin(), cmd.OutOrStdout())
	},
}

func init() {
	synonymsCmd.AddCommand(synonymsEncodeCmd, synonymsDecodeCmd)
	rootCmd.AddCommand(synonymsCmd)
}

func runSynonymsEncode(in io.Reader, out io.Writer) error {
	raw, err := io.ReadAll(in)
	if err != nil {
		return fmt.Errorf("error reading stdin: %w", err)
	}
	var synonyms []string
	if err := json.Unmarshal(raw, &synonyms); err != nil {
		return fmt.Errorf("expected a JSON array of strings: %w", err)
	}
	encoded, err := metastore.EncodeSynonyms(synonyms)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, encoded)
	return err
}

func runSynonymsDecode(in io.Reader, out io.Writer) error {
	raw, err := io.ReadAll(in)
	if err != nil {
		return fmt.Errorf("error reading stdin: %w", err)
	}
	data, err := json.Marshal(metastore.DecodeSynonyms(strings.TrimSpace(string(raw))))
	if err != nil {
		return fmt.Errorf("error encoding synonyms: %w", err)
	}
	_, err = fmt.Fprintln(out, string(data))
	return err
}
