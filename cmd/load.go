package cmd

import (
	"context"
	"fmt"

	"thermodb/core/config"
	"thermodb/core/logger"
	"thermodb/core/storage"
	"thermodb/feature/catalog"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// loadCmd loads a database file and prints its summary.
var loadCmd = &cobra.Command{
	Use:   "load [source]",
	Short: "Load a thermodynamic database and print its summary",
	Long: `Loads a PHREEQC-style database file (local path or storage object, depending
on configuration) and prints element, species and master-species counts.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		source := ""
		if len(args) > 0 {
			source = args[0]
		}
		return runLoad(cmd.Context(), source)
	},
}

func init() {
	RootCmd.AddCommand(loadCmd)
}

// newCatalogService builds a catalog service from configuration, creating a
// storage client only when database files live in object storage.
func newCatalogService(cfg *config.Config, logg *zap.Logger) (*catalog.Service, error) {
	var client storage.Client
	if cfg.Catalog.FromStorage {
		c, err := storage.NewClient(cfg.Storage)
		if err != nil {
			return nil, fmt.Errorf("failed to create storage client: %w", err)
		}
		client = c
	}
	return catalog.NewService(client, cfg.Storage.Bucket, logg, cfg.Catalog), nil
}

func runLoad(ctx context.Context, source string) error {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	if source == "" {
		source = cfg.Catalog.Source
	}

	svc, err := newCatalogService(cfg, logg)
	if err != nil {
		return err
	}

	c, err := svc.LoadCatalog(ctx, source)
	if err != nil {
		return err
	}

	// Pretty console output
	fmt.Println("\n--- Catalog Summary ---")
	fmt.Printf("Source:          %s\n", source)
	fmt.Printf("Elements:        %d\n", c.NumElements())
	fmt.Printf("Aqueous species: %d\n", c.NumAqueousSpecies())
	fmt.Printf("Gaseous species: %d\n", c.NumGaseousSpecies())
	fmt.Printf("Mineral species: %d\n", c.NumMineralSpecies())
	fmt.Printf("Master species:  %d\n", len(c.MasterSpecies()))
	return nil
}
