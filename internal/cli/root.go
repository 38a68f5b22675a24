// Package cli implements the family-tree CLI commands.
package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Andreyhiitola/family-tree-v2/internal/family"
	"github.com/Andreyhiitola/family-tree-v2/internal/storage"
)

var (
	dbPath     string
	formatFlag string
	verbose    bool
)

// RootCmd is the top-level command.
var RootCmd = &cobra.Command{
	Use:   "family-tree",
	Short: "Edit and explore a family tree",
	Long:  "A CLI family-tree editor: people, spouse and parent/child links, derived trees, statistics and timelines. SQLite-backed, single binary.",
}

func init() {
	RootCmd.PersistentFlags().StringVarP(&dbPath, "db", "d", "", "Database path (default: $FAMILY_TREE_DB, config file, or ~/.family-tree/family.db)")
	RootCmd.PersistentFlags().StringVarP(&formatFlag, "format", "f", "json", "Output format: json or text")
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log progress to stderr")
}

func getDBPath() string {
	if dbPath != "" {
		return dbPath
	}
	if env := os.Getenv("FAMILY_TREE_DB"); env != "" {
		return env
	}
	if cfg := loadConfig(); cfg.DBPath != "" {
		return cfg.DBPath
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".family-tree", "family.db")
}

func newLogger() *zap.Logger {
	if !verbose {
		return zap.NewNop()
	}
	logger, err := zap.NewDevelopment()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}

func openStore() (storage.Store, error) {
	return storage.NewSQLiteStore(getDBPath(), newLogger())
}

// loadTree opens the store and builds the in-memory tree from the saved
// snapshot.
func loadTree(ctx context.Context) (storage.Store, *family.Tree, error) {
	s, err := openStore()
	if err != nil {
		return nil, nil, err
	}
	people, err := s.Load(ctx)
	if err != nil {
		s.Close()
		return nil, nil, fmt.Errorf("load snapshot: %w", err)
	}
	return s, family.Load(people), nil
}

// saveTree persists the full collection. Called after every successful
// mutation.
func saveTree(ctx context.Context, s storage.Store, tree *family.Tree) error {
	if err := s.Save(ctx, tree.All()); err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	return nil
}

func exitErr(msg string, err error) {
	fmt.Fprintf(os.Stderr, "error: %s: %v\n", msg, err)
	os.Exit(1)
}
