package cmd

import (
	"context"
	"fmt"
	"sort"

	"thermodb/core/config"
	"thermodb/core/logger"

	"github.com/spf13/cobra"
)

// speciesCmd shows the detailed view of a single species.
var speciesCmd = &cobra.Command{
	Use:   "species [name]",
	Short: "View details of a species in the configured source database",
	Long:  `Shows composition, charge, canonical name and the active thermodynamic variant of a species (e.g. 'SO4-2', 'Calcite', 'CO2(g)').`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSpeciesDetail(cmd.Context(), args[0])
	},
}

func init() {
	RootCmd.AddCommand(speciesCmd)
}

func runSpeciesDetail(ctx context.Context, name string) error {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	svc, err := newCatalogService(cfg, logg)
	if err != nil {
		return err
	}

	detail, err := svc.SpeciesDetail(ctx, name)
	if err != nil {
		return err
	}

	// Pretty console output
	fmt.Println("\n--- Species Detail ---")
	fmt.Printf("Name:           %s\n", detail.Name)
	if detail.CanonicalName != "" {
		fmt.Printf("Canonical name: %s\n", detail.CanonicalName)
	}
	fmt.Printf("Kind:           %s\n", detail.Kind)
	if detail.Kind == "aqueous" {
		fmt.Printf("Charge:         %+g\n", detail.Charge)
	}
	fmt.Printf("Thermo variant: %s\n", detail.ThermoKind)
	fmt.Printf("log K:          %g\n", detail.LogK)
	fmt.Printf("delta H:        %g kJ/mol\n", detail.DeltaH)

	symbols := make([]string, 0, len(detail.Elements))
	for symbol := range detail.Elements {
		symbols = append(symbols, symbol)
	}
	sort.Strings(symbols)
	fmt.Println("Composition:")
	for _, symbol := range symbols {
		fmt.Printf("  %-4s %g\n", symbol, detail.Elements[symbol])
	}

	if detail.Master {
		fmt.Printf("Master species: yes (%d product species)\n", len(detail.Products))
		for _, product := range detail.Products {
			fmt.Printf("  %s\n", product)
		}
	}
	return nil
}
