package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/dotcommander/seoscore/internal/config"
	"github.com/dotcommander/seoscore/internal/metastore"
)

var metaCmd = &cobra.Command{
	Use:   "meta",
	Short: "Read or write the stored SEO metadata of a document",
	Long: `Read or write the SEO metadata stored for a document id: meta description,
SEO title, focus keyword and keyword synonyms.

Requires store.driver to be "redis" (or "memory" for a throwaway store).

EXAMPLES:

  seoscore meta get 42
  echo '{"title": "Fast cars", "synonyms": ["quick autos"]}' | seoscore meta put 42`,
}

var metaGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Print the stored metadata of a document as JSON",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(cmd.Context(), func(ctx context.Context, s metastore.Store) error {
			return runMetaGet(ctx, s, args[0], cmd.OutOrStdout())
		})
	},
}

var metaPutCmd = &cobra.Command{
	Use:   "put <id>",
	Short: "Store metadata read from stdin as JSON",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(cmd.Context(), func(ctx context.Context, s metastore.Store) error {
			return runMetaPut(ctx, s, args[0], cmd.InOrStdin())
		})
	},
}

func init() {
	metaCmd.AddCommand(metaGetCmd, metaPutCmd)
	rootCmd.AddCommand(metaCmd)
}

var errNoStore = errors.New(`no metadata store configured (set store.driver to "redis")`)

func withStore(ctx context.Context, fn func(context.Context, metastore.Store) error) error {
	if ctx == nil {
		ctx = context.Background()
	}
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(ctx, cfg.Timeout)
	defer cancel()

	store, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	if store == nil {
		return errNoStore
	}
	defer store.Close()
	return fn(ctx, store)
}

func runMetaGet(ctx context.Context, s metastore.Store, id string, out io.Writer) error {
	m, err := s.Get(ctx, id)
	if err != nil {
		return fmt.Errorf("document %s: %w", id, err)
	}
	enc := json.NewEncoder(out)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(m)
}

func runMetaPut(ctx context.Context, s metastore.Store, id string, in io.Reader) error {
	var m metastore.Meta
	if err := json.NewDecoder(in).Decode(&m); err != nil {
		return fmt.Errorf("expected a metadata JSON object: %w", err)
	}
	if err := s.Put(ctx, id, m); err != nil {
		return fmt.Errorf("document %s: %w", id, err)
	}
	return nil
}
