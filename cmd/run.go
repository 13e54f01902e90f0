package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/skadvisory/findna/internal/app"
	"github.com/skadvisory/findna/internal/catalog"
	"github.com/skadvisory/findna/internal/store"
	"github.com/skadvisory/findna/internal/submit"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	cat, err := resolveCatalog(cmd)
	if err != nil {
		return err
	}

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	logger, err := buildLogger()
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	return app.Run(app.Options{
		Catalog:   cat,
		EventRepo: st.EventRepo(),
		Client:    submit.NewClient(formURL(), logger),
		Logger:    logger,
	})
}

// resolveCatalog loads the catalog from the --catalog flag, falling back to
// the built-in question set.
func resolveCatalog(cmd *cobra.Command) (catalog.Catalog, error) {
	path, _ := cmd.Flags().GetString("catalog")
	if path == "" {
		return catalog.Default(), nil
	}
	cat, err := catalog.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load catalog %s: %w", path, err)
	}
	return cat, nil
}

// formURL returns the submission endpoint. FINDNA_FORM_URL overrides the
// production form; setting it to "off" disables submission entirely.
func formURL() string {
	v, set := os.LookupEnv("FINDNA_FORM_URL")
	if !set {
		return submit.DefaultFormURL
	}
	if v == "off" {
		return ""
	}
	return v
}

// buildLogger writes structured logs to a file next to the database, so
// log lines never tear the TUI.
func buildLogger() (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	logPath := os.Getenv("FINDNA_LOG")
	if logPath == "" {
		return zap.NewNop(), nil
	}
	cfg.OutputPaths = []string{logPath}
	cfg.ErrorOutputPaths = []string{logPath}
	return cfg.Build()
}
