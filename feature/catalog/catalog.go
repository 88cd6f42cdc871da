package catalog

import (
	"fmt"
	"sort"

	"thermodb/core/chem"
	"thermodb/core/phreeqc"
	"thermodb/core/utils"
)

// Catalog holds the typed content of one loaded thermodynamic database:
// element and species collections in declaration order, the master-species
// set, and the master-to-product reverse index. All derived structures are
// rebuilt from scratch by Load; nothing is updated incrementally.
type Catalog struct {
	// IsGas classifies a phase record as gas or mineral. When nil, the
	// record's own discriminant is used.
	IsGas func(phreeqc.PhaseRecord) bool

	elements  []chem.Element
	elementBy map[string]chem.Element
	aqueous   []chem.AqueousSpecies
	gaseous   []chem.GaseousSpecies
	minerals  []chem.MineralSpecies

	// masterNames is the master-species name set; masterOrder holds, per
	// master in declaration order, the index of its aqueous species.
	masterNames map[string]struct{}
	masterOrder []int

	// masterProducts has exactly one entry per master species: the set of
	// species and phase names whose reaction equation references it.
	masterProducts []map[string]struct{}
}

// New creates an empty catalog.
func New() *Catalog {
	return &Catalog{}
}

// Load clears all prior state and rebuilds the catalog from the given
// record source. Any structural error reported by the source, and any
// master species without a matching aqueous record, aborts the load; no
// partial state is left queryable.
func (c *Catalog) Load(source phreeqc.Source) error {
	c.elements = nil
	c.elementBy = make(map[string]chem.Element)
	c.aqueous = nil
	c.gaseous = nil
	c.minerals = nil
	c.masterNames = make(map[string]struct{})
	c.masterOrder = nil
	c.masterProducts = nil

	records, err := source.Records()
	if err != nil {
		return fmt.Errorf("loading database records: %w", err)
	}

	for _, rec := range records.Elements {
		element := chem.Element{Name: rec.Name, MolarMass: rec.MolarMass}
		c.elements = append(c.elements, element)
		c.elementBy[rec.Name] = element
	}

	for _, rec := range records.Species {
		species, err := c.buildAqueousSpecies(rec)
		if err != nil {
			return err
		}
		c.aqueous = append(c.aqueous, species)
	}

	for _, rec := range records.Phases {
		if c.isGas(rec) {
			species, err := c.buildGaseousSpecies(rec)
			if err != nil {
				return err
			}
			c.gaseous = append(c.gaseous, species)
		} else {
			species, err := c.buildMineralSpecies(rec)
			if err != nil {
				return err
			}
			c.minerals = append(c.minerals, species)
		}
	}

	if err := c.buildMasterIndex(records.Masters); err != nil {
		return err
	}
	return nil
}

func (c *Catalog) isGas(rec phreeqc.PhaseRecord) bool {
	if c.IsGas != nil {
		return c.IsGas(rec)
	}
	return rec.Gas
}

// resolveElements maps composition entries onto already-built elements.
// Referencing an undeclared element is a load error.
func (c *Catalog) resolveElements(owner string, entries []phreeqc.CompositionEntry) (chem.ElementMap, error) {
	elements := make(chem.ElementMap, len(entries))
	for _, entry := range entries {
		element, ok := c.elementBy[entry.Element]
		if !ok {
			return nil, fmt.Errorf("species %q references undeclared element %q", owner, entry.Element)
		}
		elements[element] += entry.Coefficient
	}
	return elements, nil
}

// reactionEquation converts record reaction entries to the domain type.
func reactionEquation(entries []phreeqc.ReactionEntry) chem.ReactionEquation {
	if len(entries) == 0 {
		return nil
	}
	equation := make(chem.ReactionEquation, 0, len(entries))
	for _, entry := range entries {
		equation = append(equation, chem.ReactionTerm{Species: entry.Species, Coefficient: entry.Coefficient})
	}
	return equation
}

func phreeqcParams(reaction chem.ReactionEquation, logK, deltaH float64, analytic [6]float64) chem.PhreeqcParams {
	return chem.PhreeqcParams{Reaction: reaction, LogK: logK, DeltaH: deltaH, Analytic: analytic}
}

// buildAqueousSpecies copies name and charge verbatim, resolves the
// composition, and installs the source-native thermo variant when reaction
// data exists. Elemental master species with no decomposition get the
// zero/default HKF variant.
func (c *Catalog) buildAqueousSpecies(rec phreeqc.SpeciesRecord) (chem.AqueousSpecies, error) {
	elements, err := c.resolveElements(rec.Name, rec.Elements)
	if err != nil {
		return chem.AqueousSpecies{}, err
	}
	equation := reactionEquation(rec.Reaction)
	thermo := chem.NewDefaultHKFThermoData()
	if !equation.Empty() {
		thermo = chem.NewPhreeqcThermoData(phreeqcParams(equation, rec.LogK, rec.DeltaH, rec.Analytic))
	}
	return chem.AqueousSpecies{
		Name:     rec.Name,
		Charge:   rec.Charge,
		Elements: elements,
		Thermo:   thermo,
	}, nil
}

// buildGaseousSpecies always installs the source-native variant; gases are
// assumed to always carry a reaction.
func (c *Catalog) buildGaseousSpecies(rec phreeqc.PhaseRecord) (chem.GaseousSpecies, error) {
	elements, err := c.resolveElements(rec.Name, rec.Elements)
	if err != nil {
		return chem.GaseousSpecies{}, err
	}
	params := phreeqcParams(reactionEquation(rec.Reaction), rec.LogK, rec.DeltaH, rec.Analytic)
	return chem.GaseousSpecies{
		Name:     rec.Name,
		Elements: elements,
		Thermo:   chem.NewPhreeqcThermoData(params),
	}, nil
}

// buildMineralSpecies additionally converts the -Vm coefficient from cm3 to
// m3 and seeds a single-node volume table at reference conditions.
func (c *Catalog) buildMineralSpecies(rec phreeqc.PhaseRecord) (chem.MineralSpecies, error) {
	elements, err := c.resolveElements(rec.Name, rec.Elements)
	if err != nil {
		return chem.MineralSpecies{}, err
	}
	params := phreeqcParams(reactionEquation(rec.Reaction), rec.LogK, rec.DeltaH, rec.Analytic)
	volume := utils.CubicCentimeterToCubicMeter(rec.MolarVolume)
	return chem.MineralSpecies{
		Name:     rec.Name,
		Elements: elements,
		Thermo:   chem.NewMineralThermoData(params, volume),
	}, nil
}

// buildMasterIndex records the master-species set in declaration order and
// builds the reverse index from each master to every species or phase whose
// reaction equation references it.
func (c *Catalog) buildMasterIndex(masters []string) error {
	aqueousIndex := make(map[string]int, len(c.aqueous))
	for i, s := range c.aqueous {
		aqueousIndex[s.Name] = i
	}

	for _, master := range masters {
		if _, ok := c.masterNames[master]; ok {
			continue
		}
		i, ok := aqueousIndex[master]
		if !ok {
			return fmt.Errorf("master species %q has no aqueous species record", master)
		}
		c.masterNames[master] = struct{}{}
		c.masterOrder = append(c.masterOrder, i)
	}

	c.masterProducts = make([]map[string]struct{}, len(c.masterOrder))
	for i, aqIdx := range c.masterOrder {
		master := c.aqueous[aqIdx].Name
		products := make(map[string]struct{})
		for _, s := range c.aqueous {
			if reactionOf(s.Thermo).Contains(master) {
				products[s.Name] = struct{}{}
			}
		}
		for _, s := range c.gaseous {
			if reactionOf(s.Thermo).Contains(master) {
				products[s.Name] = struct{}{}
			}
		}
		for _, s := range c.minerals {
			if reactionOf(s.Thermo).Contains(master) {
				products[s.Name] = struct{}{}
			}
		}
		c.masterProducts[i] = products
	}
	return nil
}

// reactionOf returns the reaction equation of a thermo variant, or nil for
// variants without reaction data.
func reactionOf(data chem.ThermoData) chem.ReactionEquation {
	if data.Phreeqc == nil {
		return nil
	}
	return data.Phreeqc.Reaction
}

// Elements returns all elements in declaration order.
func (c *Catalog) Elements() []chem.Element { return c.elements }

// AqueousSpecies returns all aqueous species in declaration order.
func (c *Catalog) AqueousSpecies() []chem.AqueousSpecies { return c.aqueous }

// GaseousSpecies returns all gaseous species in declaration order.
func (c *Catalog) GaseousSpecies() []chem.GaseousSpecies { return c.gaseous }

// MineralSpecies returns all mineral species in declaration order.
func (c *Catalog) MineralSpecies() []chem.MineralSpecies { return c.minerals }

// NumElements returns the number of elements.
func (c *Catalog) NumElements() int { return len(c.elements) }

// NumAqueousSpecies returns the number of aqueous species.
func (c *Catalog) NumAqueousSpecies() int { return len(c.aqueous) }

// NumGaseousSpecies returns the number of gaseous species.
func (c *Catalog) NumGaseousSpecies() int { return len(c.gaseous) }

// NumMineralSpecies returns the number of mineral species.
func (c *Catalog) NumMineralSpecies() int { return len(c.minerals) }

// MasterSpecies returns the master species names in declaration order.
func (c *Catalog) MasterSpecies() []string {
	names := make([]string, len(c.masterOrder))
	for i, aqIdx := range c.masterOrder {
		names[i] = c.aqueous[aqIdx].Name
	}
	return names
}

// IsMasterSpecies reports whether the given name is a declared master
// species.
func (c *Catalog) IsMasterSpecies(name string) bool {
	_, ok := c.masterNames[name]
	return ok
}

// ProductsOf returns, sorted lexicographically, the names of all species
// and phases whose reaction equation references the given master species.
// The second return value is false if the name is not a master species.
func (c *Catalog) ProductsOf(master string) ([]string, bool) {
	for i, aqIdx := range c.masterOrder {
		if c.aqueous[aqIdx].Name != master {
			continue
		}
		products := make([]string, 0, len(c.masterProducts[i]))
		for name := range c.masterProducts[i] {
			products = append(products, name)
		}
		sort.Strings(products)
		return products, true
	}
	return nil, false
}

// Database exports the loaded entities, under source-format naming, into a
// freshly owned database container.
func (c *Catalog) Database() *chem.Database {
	db := chem.NewDatabase()
	for _, e := range c.elements {
		db.AddElement(e)
	}
	for _, s := range c.aqueous {
		db.AddAqueousSpecies(s.Clone())
	}
	for _, s := range c.gaseous {
		db.AddGaseousSpecies(s.Clone())
	}
	for _, s := range c.minerals {
		db.AddMineralSpecies(s.Clone())
	}
	return db
}

// CanonicalDatabase exports the loaded entities with aqueous species
// renamed to canonical external form, suitable for use as the reference
// input of a reconciliation. Gas and mineral names are identical across
// conventions and are exported unchanged.
func (c *Catalog) CanonicalDatabase() *chem.Database {
	db := chem.NewDatabase()
	for _, e := range c.elements {
		db.AddElement(e)
	}
	for _, s := range c.aqueous {
		cp := s.Clone()
		cp.Name = chem.CanonicalName(s.Name)
		db.AddAqueousSpecies(cp)
	}
	for _, s := range c.gaseous {
		db.AddGaseousSpecies(s.Clone())
	}
	for _, s := range c.minerals {
		db.AddMineralSpecies(s.Clone())
	}
	return db
}
