package chem

// Database is a container of finalized elements and species. Membership
// queries are by exact name per kind. Insertion order is preserved so that
// iteration over the collections is deterministic.
//
// A Database is mutated only by its builder, via the Add* methods; consumers
// treat it as read-only.
type Database struct {
	elements      []Element
	aqueous       []AqueousSpecies
	gaseous       []GaseousSpecies
	minerals      []MineralSpecies
	elementIndex  map[string]int
	aqueousIndex  map[string]int
	gaseousIndex  map[string]int
	mineralsIndex map[string]int
}

// NewDatabase creates an empty database.
func NewDatabase() *Database {
	return &Database{
		elementIndex:  make(map[string]int),
		aqueousIndex:  make(map[string]int),
		gaseousIndex:  make(map[string]int),
		mineralsIndex: make(map[string]int),
	}
}

// AddElement inserts an element. An element with the same name replaces the
// previous entry in place.
func (d *Database) AddElement(e Element) {
	if i, ok := d.elementIndex[e.Name]; ok {
		d.elements[i] = e
		return
	}
	d.elementIndex[e.Name] = len(d.elements)
	d.elements = append(d.elements, e)
}

// AddAqueousSpecies inserts an aqueous species, replacing any existing entry
// with the same name.
func (d *Database) AddAqueousSpecies(s AqueousSpecies) {
	if i, ok := d.aqueousIndex[s.Name]; ok {
		d.aqueous[i] = s
		return
	}
	d.aqueousIndex[s.Name] = len(d.aqueous)
	d.aqueous = append(d.aqueous, s)
}

// AddGaseousSpecies inserts a gaseous species, replacing any existing entry
// with the same name.
func (d *Database) AddGaseousSpecies(s GaseousSpecies) {
	if i, ok := d.gaseousIndex[s.Name]; ok {
		d.gaseous[i] = s
		return
	}
	d.gaseousIndex[s.Name] = len(d.gaseous)
	d.gaseous = append(d.gaseous, s)
}

// AddMineralSpecies inserts a mineral species, replacing any existing entry
// with the same name.
func (d *Database) AddMineralSpecies(s MineralSpecies) {
	if i, ok := d.mineralsIndex[s.Name]; ok {
		d.minerals[i] = s
		return
	}
	d.mineralsIndex[s.Name] = len(d.minerals)
	d.minerals = append(d.minerals, s)
}

// ContainsAqueousSpecies reports whether an aqueous species with the exact
// name exists.
func (d *Database) ContainsAqueousSpecies(name string) bool {
	_, ok := d.aqueousIndex[name]
	return ok
}

// ContainsGaseousSpecies reports whether a gaseous species with the exact
// name exists.
func (d *Database) ContainsGaseousSpecies(name string) bool {
	_, ok := d.gaseousIndex[name]
	return ok
}

// ContainsMineralSpecies reports whether a mineral species with the exact
// name exists.
func (d *Database) ContainsMineralSpecies(name string) bool {
	_, ok := d.mineralsIndex[name]
	return ok
}

// AqueousSpecies returns the aqueous species with the given name.
func (d *Database) AqueousSpecies(name string) (AqueousSpecies, bool) {
	i, ok := d.aqueousIndex[name]
	if !ok {
		return AqueousSpecies{}, false
	}
	return d.aqueous[i], true
}

// GaseousSpecies returns the gaseous species with the given name.
func (d *Database) GaseousSpecies(name string) (GaseousSpecies, bool) {
	i, ok := d.gaseousIndex[name]
	if !ok {
		return GaseousSpecies{}, false
	}
	return d.gaseous[i], true
}

// MineralSpecies returns the mineral species with the given name.
func (d *Database) MineralSpecies(name string) (MineralSpecies, bool) {
	i, ok := d.mineralsIndex[name]
	if !ok {
		return MineralSpecies{}, false
	}
	return d.minerals[i], true
}

// Elements returns all elements in insertion order.
func (d *Database) Elements() []Element { return d.elements }

// AllAqueousSpecies returns all aqueous species in insertion order.
func (d *Database) AllAqueousSpecies() []AqueousSpecies { return d.aqueous }

// AllGaseousSpecies returns all gaseous species in insertion order.
func (d *Database) AllGaseousSpecies() []GaseousSpecies { return d.gaseous }

// AllMineralSpecies returns all mineral species in insertion order.
func (d *Database) AllMineralSpecies() []MineralSpecies { return d.minerals }

// NumElements returns the number of elements.
func (d *Database) NumElements() int { return len(d.elements) }

// NumAqueousSpecies returns the number of aqueous species.
func (d *Database) NumAqueousSpecies() int { return len(d.aqueous) }

// NumGaseousSpecies returns the number of gaseous species.
func (d *Database) NumGaseousSpecies() int { return len(d.gaseous) }

// NumMineralSpecies returns the number of mineral species.
func (d *Database) NumMineralSpecies() int { return len(d.minerals) }
