package chem

// Reference conditions for single-node mineral property tables.
const (
	// ReferenceTemperature is the node temperature in Kelvin.
	ReferenceTemperature = 278.15

	// ReferencePressure is the node pressure in Pascal.
	ReferencePressure = 1e5
)

// ThermoKind identifies which thermodynamic-data variant a species carries.
type ThermoKind int

const (
	// ThermoPhreeqc holds source-native reaction parameters.
	ThermoPhreeqc ThermoKind = iota

	// ThermoHKF holds a zero/default HKF parameter set. Installed for
	// elemental master species without a decomposition reaction and for
	// master species left unresolved by reconciliation.
	ThermoHKF

	// ThermoMineral holds source-native reaction parameters plus an
	// interpolated molar-volume table.
	ThermoMineral
)

// String returns a short label for the variant kind.
func (k ThermoKind) String() string {
	switch k {
	case ThermoPhreeqc:
		return "phreeqc"
	case ThermoHKF:
		return "hkf"
	case ThermoMineral:
		return "mineral"
	default:
		return "unknown"
	}
}

// PhreeqcParams are the source-native thermodynamic parameters of a species:
// its reaction equation, the equilibrium constant at the reference
// temperature, an enthalpy-of-reaction proxy, and the six coefficients of
// the analytic log K temperature expression.
type PhreeqcParams struct {
	Reaction ReactionEquation `json:"reaction"`
	LogK     float64          `json:"log_k"`
	DeltaH   float64          `json:"delta_h"`
	Analytic [6]float64       `json:"analytic"`
}

// HKFParams is the HKF equation-of-state parameter container. The zero
// value is the explicit "no data" parameter set used when a species has no
// reaction information to derive properties from.
type HKFParams struct {
	Gf   float64 `json:"gf"`
	Hf   float64 `json:"hf"`
	Sr   float64 `json:"sr"`
	A1   float64 `json:"a1"`
	A2   float64 `json:"a2"`
	A3   float64 `json:"a3"`
	A4   float64 `json:"a4"`
	C1   float64 `json:"c1"`
	C2   float64 `json:"c2"`
	Wref float64 `json:"wref"`
}

// InterpolatedProperties is a temperature/pressure interpolation table for
// species properties. Mineral species are seeded with a single node carrying
// the molar volume at reference conditions; no further dependence is
// modeled.
type InterpolatedProperties struct {
	// Temperatures are the node temperatures in Kelvin.
	Temperatures []float64 `json:"temperatures"`

	// Pressures are the node pressures in Pascal.
	Pressures []float64 `json:"pressures"`

	// Volumes are the molar volumes in cubic meters per mole, one per node.
	Volumes []float64 `json:"volumes"`
}

// ThermoData is the closed tagged variant of thermodynamic data a species
// can hold. Exactly one variant is active, identified by Kind.
type ThermoData struct {
	Kind       ThermoKind              `json:"kind"`
	Phreeqc    *PhreeqcParams          `json:"phreeqc,omitempty"`
	HKF        *HKFParams              `json:"hkf,omitempty"`
	Properties *InterpolatedProperties `json:"properties,omitempty"`
}

// NewPhreeqcThermoData wraps source-native parameters.
func NewPhreeqcThermoData(params PhreeqcParams) ThermoData {
	return ThermoData{Kind: ThermoPhreeqc, Phreeqc: &params}
}

// NewDefaultHKFThermoData returns the zero/default HKF variant.
func NewDefaultHKFThermoData() ThermoData {
	return ThermoData{Kind: ThermoHKF, HKF: &HKFParams{}}
}

// NewMineralThermoData wraps source-native parameters together with a
// single-node molar-volume table at reference conditions. The volume is
// given in cubic meters per mole.
func NewMineralThermoData(params PhreeqcParams, molarVolume float64) ThermoData {
	return ThermoData{
		Kind:    ThermoMineral,
		Phreeqc: &params,
		Properties: &InterpolatedProperties{
			Temperatures: []float64{ReferenceTemperature},
			Pressures:    []float64{ReferencePressure},
			Volumes:      []float64{molarVolume},
		},
	}
}

// Clone returns a deep copy of the thermodynamic data, so that reconciled
// output never aliases the source catalog.
func (d ThermoData) Clone() ThermoData {
	out := ThermoData{Kind: d.Kind}
	if d.Phreeqc != nil {
		params := *d.Phreeqc
		params.Reaction = d.Phreeqc.Reaction.Clone()
		out.Phreeqc = &params
	}
	if d.HKF != nil {
		hkf := *d.HKF
		out.HKF = &hkf
	}
	if d.Properties != nil {
		props := InterpolatedProperties{
			Temperatures: append([]float64(nil), d.Properties.Temperatures...),
			Pressures:    append([]float64(nil), d.Properties.Pressures...),
			Volumes:      append([]float64(nil), d.Properties.Volumes...),
		}
		out.Properties = &props
	}
	return out
}
