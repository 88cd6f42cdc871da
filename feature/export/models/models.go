package models

// ElementRow is the relational mapping of one chemical element.
type ElementRow struct {
	ID        uint    `gorm:"primaryKey" json:"id"`
	Name      string  `gorm:"uniqueIndex;size:32" json:"name"`
	MolarMass float64 `json:"molar_mass"`
}

// TableName overrides the GORM default.
func (ElementRow) TableName() string { return "elements" }

// SpeciesRow is the relational mapping of one species of any kind. The
// composition and analytic coefficients are stored as JSON strings so the
// schema stays flat.
type SpeciesRow struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	Name        string  `gorm:"index;size:64" json:"name"`
	Kind        string  `gorm:"index;size:16" json:"kind"`
	Charge      float64 `json:"charge"`
	ThermoKind  string  `gorm:"size:16" json:"thermo_kind"`
	LogK        float64 `json:"log_k"`
	DeltaH      float64 `json:"delta_h"`
	Analytic    string  `gorm:"size:256" json:"analytic"`
	Composition string  `gorm:"size:512" json:"composition"`
	// MolarVolume is the reference-condition molar volume in m3/mol.
	// Only minerals carry a non-zero value.
	MolarVolume float64 `json:"molar_volume"`
}

// TableName overrides the GORM default.
func (SpeciesRow) TableName() string { return "species" }
