package export

import (
	"context"
	"encoding/json"
	"fmt"

	"thermodb/core/chem"
	"thermodb/feature/export/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// insertBatchSize bounds the row count per INSERT statement.
const insertBatchSize = 200

// Report summarizes one export run.
type Report struct {
	Elements int `json:"elements"`
	Species  int `json:"species"`
}

// Service writes finalized databases to a relational store.
type Service struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewService creates a new export service.
func NewService(db *gorm.DB, logger *zap.Logger) *Service {
	return &Service{db: db, logger: logger}
}

// Export replaces the element and species tables with the content of the
// given database.
func (s *Service) Export(ctx context.Context, database *chem.Database) (*Report, error) {
	db := s.db.WithContext(ctx)

	if err := db.AutoMigrate(&models.ElementRow{}, &models.SpeciesRow{}); err != nil {
		return nil, fmt.Errorf("migrating export tables: %w", err)
	}

	elements := make([]models.ElementRow, 0, database.NumElements())
	for _, e := range database.Elements() {
		elements = append(elements, models.ElementRow{Name: e.Name, MolarMass: e.MolarMass})
	}

	species := make([]models.SpeciesRow, 0,
		database.NumAqueousSpecies()+database.NumGaseousSpecies()+database.NumMineralSpecies())
	for _, sp := range database.AllAqueousSpecies() {
		row, err := speciesRow(sp.Name, chem.KindAqueous, sp.Charge, sp.Elements, sp.Thermo)
		if err != nil {
			return nil, err
		}
		species = append(species, row)
	}
	for _, sp := range database.AllGaseousSpecies() {
		row, err := speciesRow(sp.Name, chem.KindGaseous, 0, sp.Elements, sp.Thermo)
		if err != nil {
			return nil, err
		}
		species = append(species, row)
	}
	for _, sp := range database.AllMineralSpecies() {
		row, err := speciesRow(sp.Name, chem.KindMineral, 0, sp.Elements, sp.Thermo)
		if err != nil {
			return nil, err
		}
		species = append(species, row)
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&models.SpeciesRow{}).Error; err != nil {
			return fmt.Errorf("clearing species table: %w", err)
		}
		if err := tx.Where("1 = 1").Delete(&models.ElementRow{}).Error; err != nil {
			return fmt.Errorf("clearing elements table: %w", err)
		}
		if len(elements) > 0 {
			if err := tx.CreateInBatches(elements, insertBatchSize).Error; err != nil {
				return fmt.Errorf("inserting elements: %w", err)
			}
		}
		if len(species) > 0 {
			if err := tx.CreateInBatches(species, insertBatchSize).Error; err != nil {
				return fmt.Errorf("inserting species: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	report := &Report{Elements: len(elements), Species: len(species)}
	s.logger.Info("Database exported",
		zap.Int("elements", report.Elements),
		zap.Int("species", report.Species),
	)
	return report, nil
}

// speciesRow flattens one species into its relational form.
func speciesRow(name string, kind chem.SpeciesKind, charge float64, elements chem.ElementMap, thermo chem.ThermoData) (models.SpeciesRow, error) {
	composition := make(map[string]float64, len(elements))
	for e, coeff := range elements {
		composition[e.Name] = coeff
	}
	compositionJSON, err := json.Marshal(composition)
	if err != nil {
		return models.SpeciesRow{}, fmt.Errorf("encoding composition of %q: %w", name, err)
	}

	row := models.SpeciesRow{
		Name:        name,
		Kind:        kind.String(),
		Charge:      charge,
		ThermoKind:  thermo.Kind.String(),
		Composition: string(compositionJSON),
	}
	if thermo.Phreeqc != nil {
		row.LogK = thermo.Phreeqc.LogK
		row.DeltaH = thermo.Phreeqc.DeltaH
		analyticJSON, err := json.Marshal(thermo.Phreeqc.Analytic)
		if err != nil {
			return models.SpeciesRow{}, fmt.Errorf("encoding analytic coefficients of %q: %w", name, err)
		}
		row.Analytic = string(analyticJSON)
	}
	if thermo.Properties != nil && len(thermo.Properties.Volumes) > 0 {
		row.MolarVolume = thermo.Properties.Volumes[0]
	}
	return row, nil
}
