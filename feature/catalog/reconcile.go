package catalog

import (
	"fmt"
	"sort"

	"thermodb/core/chem"
)

// ReconcileSummary provides aggregate counts for a reconciliation.
type ReconcileSummary struct {
	// Masters is the number of master species examined.
	Masters int `json:"masters"`

	// DirectMatches counts masters present in the reference under their
	// canonical name.
	DirectMatches int `json:"direct_matches"`

	// Substitutes counts masters replaced by a product species found in the
	// reference.
	Substitutes int `json:"substitutes"`

	// Unresolved counts masters with neither a direct nor substitute match.
	Unresolved int `json:"unresolved"`
}

// ReconcileReport describes the per-master decisions of a reconciliation.
type ReconcileReport struct {
	// Primary lists the source-format names whose thermodynamic data came
	// from the reference database, in claim order.
	Primary []string `json:"primary"`

	// Unresolved lists master species downgraded to the zero/default HKF
	// parameter set, in declaration order.
	Unresolved []string `json:"unresolved"`

	// Summary provides aggregate counts.
	Summary ReconcileSummary `json:"summary"`
}

// Reconcile merges the loaded catalog with a reference database and returns
// a freshly owned database whose thermodynamic data preferentially comes
// from the reference, while species identities and naming are preserved.
// Neither the catalog nor the reference is mutated.
//
// For each master species, in declaration order: if the reference contains
// an aqueous species under the master's canonical name, the master is
// marked primary. Otherwise its product set is searched, in lexicographic
// order, for the first species present in the reference (aqueous under
// canonical naming, gas or mineral under its own name) that no earlier
// master has claimed. With no eligible candidate the master is recorded as
// unresolved and its data is replaced by the zero/default HKF set in the
// output.
//
// The only error path is a reference database that claims containment but
// fails retrieval, which indicates a broken collaborator.
func (c *Catalog) Reconcile(reference *chem.Database) (*chem.Database, *ReconcileReport, error) {
	primary := make(map[string]struct{})
	unresolved := make(map[string]struct{})
	report := &ReconcileReport{}
	report.Summary.Masters = len(c.masterOrder)

	claim := func(name string) {
		primary[name] = struct{}{}
		report.Primary = append(report.Primary, name)
	}

	for i, aqIdx := range c.masterOrder {
		master := c.aqueous[aqIdx].Name
		if reference.ContainsAqueousSpecies(chem.CanonicalName(master)) {
			claim(master)
			report.Summary.DirectMatches++
			continue
		}
		if substitute := c.findSubstitute(i, reference, primary); substitute != "" {
			claim(substitute)
			report.Summary.Substitutes++
			continue
		}
		unresolved[master] = struct{}{}
		report.Unresolved = append(report.Unresolved, master)
		report.Summary.Unresolved++
	}

	merged := chem.NewDatabase()
	for _, e := range c.elements {
		merged.AddElement(e)
	}
	for _, s := range c.aqueous {
		out, err := constructAqueous(s, reference, primary, unresolved)
		if err != nil {
			return nil, nil, err
		}
		merged.AddAqueousSpecies(out)
	}
	for _, s := range c.gaseous {
		out, err := constructGaseous(s, reference, primary)
		if err != nil {
			return nil, nil, err
		}
		merged.AddGaseousSpecies(out)
	}
	for _, s := range c.minerals {
		out, err := constructMineral(s, reference, primary)
		if err != nil {
			return nil, nil, err
		}
		merged.AddMineralSpecies(out)
	}
	return merged, report, nil
}

// findSubstitute returns the first product species of the i-th master, in
// lexicographic order, that is present in the reference database and not
// yet claimed as primary. Returns "" when no candidate qualifies; a master
// with an empty product set can never find a substitute.
func (c *Catalog) findSubstitute(i int, reference *chem.Database, primary map[string]struct{}) string {
	products := make([]string, 0, len(c.masterProducts[i]))
	for name := range c.masterProducts[i] {
		products = append(products, name)
	}
	sort.Strings(products)

	for _, product := range products {
		if _, claimed := primary[product]; claimed {
			continue
		}
		if reference.ContainsAqueousSpecies(chem.CanonicalName(product)) ||
			reference.ContainsGaseousSpecies(product) ||
			reference.ContainsMineralSpecies(product) {
			return product
		}
	}
	return ""
}

// constructAqueous decides the output form of one aqueous species. Primary
// species take a copy of the reference data with the source-format name
// restored; unresolved masters keep their identity but are downgraded to
// the zero/default HKF variant; everything else passes through unchanged.
func constructAqueous(s chem.AqueousSpecies, reference *chem.Database, primary, unresolved map[string]struct{}) (chem.AqueousSpecies, error) {
	if _, ok := primary[s.Name]; ok {
		canonical := chem.CanonicalName(s.Name)
		ref, found := reference.AqueousSpecies(canonical)
		if !found {
			return chem.AqueousSpecies{}, fmt.Errorf("reference database claims species %q but retrieval failed", canonical)
		}
		out := ref.Clone()
		out.Name = s.Name
		return out, nil
	}
	if _, ok := unresolved[s.Name]; ok {
		out := s.Clone()
		out.Thermo = chem.NewDefaultHKFThermoData()
		return out, nil
	}
	return s.Clone(), nil
}

// constructGaseous and constructMineral replace primary species entirely
// with the reference entry of the same name; no name translation applies to
// these kinds.
func constructGaseous(s chem.GaseousSpecies, reference *chem.Database, primary map[string]struct{}) (chem.GaseousSpecies, error) {
	if _, ok := primary[s.Name]; ok {
		ref, found := reference.GaseousSpecies(s.Name)
		if !found {
			return chem.GaseousSpecies{}, fmt.Errorf("reference database claims gas %q but retrieval failed", s.Name)
		}
		return ref.Clone(), nil
	}
	return s.Clone(), nil
}

func constructMineral(s chem.MineralSpecies, reference *chem.Database, primary map[string]struct{}) (chem.MineralSpecies, error) {
	if _, ok := primary[s.Name]; ok {
		ref, found := reference.MineralSpecies(s.Name)
		if !found {
			return chem.MineralSpecies{}, fmt.Errorf("reference database claims mineral %q but retrieval failed", s.Name)
		}
		return ref.Clone(), nil
	}
	return s.Clone(), nil
}
