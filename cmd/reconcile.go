package cmd

import (
	"context"
	"fmt"

	"thermodb/core/config"
	"thermodb/core/database"
	"thermodb/core/logger"
	"thermodb/feature/export"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Flags for the reconcile command
	reconcileSource    string
	reconcileReference string
	reconcileExport    bool
	reconcilePublish   string
)

// reconcileCmd merges the source database with a reference database.
var reconcileCmd = &cobra.Command{
	Use:   "reconcile",
	Short: "Reconcile the source database against a reference database",
	Long: `Reconcile decides, per master species, whether the reference database
supplies authoritative thermodynamic data directly, via a substitute product
species, or not at all, and builds a merged database accordingly.

Examples:
  # Report only
  thermodb reconcile --reference llnl.dat

  # Merge and export to the configured database (sqlite by default)
  thermodb reconcile --reference llnl.dat --export`,
	RunE: runReconcile,
}

func init() {
	reconcileCmd.Flags().StringVar(&reconcileSource, "source", "", "Source database (defaults to catalog.source config)")
	reconcileCmd.Flags().StringVar(&reconcileReference, "reference", "", "Reference database (defaults to catalog.reference config)")
	reconcileCmd.Flags().BoolVar(&reconcileExport, "export", false, "Export the merged database via the configured driver")
	reconcileCmd.Flags().StringVar(&reconcilePublish, "publish", "", "Publish the merged database as a JSON snapshot object under this name")

	RootCmd.AddCommand(reconcileCmd)
}

func runReconcile(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	source := reconcileSource
	if source == "" {
		source = cfg.Catalog.Source
	}
	reference := reconcileReference
	if reference == "" {
		reference = cfg.Catalog.Reference
	}
	if reference == "" {
		return fmt.Errorf("no reference database given (use --reference or catalog.reference config)")
	}

	svc, err := newCatalogService(cfg, l)
	if err != nil {
		return err
	}

	l.Info("Starting reconciliation",
		zap.String("source", source),
		zap.String("reference", reference),
	)

	merged, report, err := svc.Reconcile(ctx, source, reference)
	if err != nil {
		return err
	}

	// Pretty console output
	fmt.Println("\n--- Reconciliation Report ---")
	fmt.Printf("Master species:  %d\n", report.Summary.Masters)
	fmt.Printf("Direct matches:  %d\n", report.Summary.DirectMatches)
	fmt.Printf("Substitutes:     %d\n", report.Summary.Substitutes)
	fmt.Printf("Unresolved:      %d\n", report.Summary.Unresolved)
	for _, name := range report.Unresolved {
		fmt.Printf("  unresolved: %s\n", name)
	}

	if reconcilePublish != "" {
		if err := svc.Publish(ctx, reconcilePublish, merged); err != nil {
			return err
		}
	}

	if !reconcileExport {
		if reconcilePublish == "" {
			l.Info("No export requested. Use --export or --publish to persist the merged database.")
		}
		return nil
	}

	db, err := database.Connect(cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to export database: %w", err)
	}

	exportReport, err := export.NewService(db, l).Export(ctx, merged)
	if err != nil {
		return fmt.Errorf("failed to export merged database: %w", err)
	}

	// Sanity-check the written schema.
	for _, table := range []string{"elements", "species"} {
		columns, err := database.GetTableColumns(db, table)
		if err != nil {
			return fmt.Errorf("failed to inspect exported table %q: %w", table, err)
		}
		if len(columns) == 0 {
			return fmt.Errorf("exported table %q is missing", table)
		}
	}

	l.Info("Export finished",
		zap.Int("elements", exportReport.Elements),
		zap.Int("species", exportReport.Species),
	)
	return nil
}
