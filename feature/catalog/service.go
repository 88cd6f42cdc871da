package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"thermodb/core/chem"
	"thermodb/core/phreeqc"
	"thermodb/core/storage"
	"thermodb/feature/catalog/models"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// Service orchestrates catalog loading and reconciliation. Database files
// are read from the local filesystem or fetched from object storage,
// depending on configuration.
type Service struct {
	client storage.Client
	bucket string
	logger *zap.Logger
	cfg    Config
	cache  *cacheStore
}

// NewService creates a new catalog service.
func NewService(client storage.Client, bucket string, logger *zap.Logger, cfg Config) *Service {
	return &Service{
		client: client,
		bucket: bucket,
		logger: logger,
		cfg:    cfg,
		cache:  newCacheStore(),
	}
}

// openSource resolves a source identifier to a readable stream.
func (s *Service) openSource(ctx context.Context, identifier string) (io.ReadCloser, error) {
	if s.cfg.FromStorage {
		if s.client == nil {
			return nil, fmt.Errorf("storage client not configured for object %q", identifier)
		}
		obj, err := s.client.GetObject(ctx, s.bucket, identifier, minio.GetObjectOptions{})
		if err != nil {
			return nil, fmt.Errorf("fetching database object %q: %w", identifier, err)
		}
		return obj, nil
	}
	f, err := os.Open(identifier)
	if err != nil {
		return nil, fmt.Errorf("opening database file %q: %w", identifier, err)
	}
	return f, nil
}

// LoadCatalog loads (or returns the cached) catalog for the given source
// identifier.
func (s *Service) LoadCatalog(ctx context.Context, identifier string) (*Catalog, error) {
	ttl := time.Duration(s.cfg.CacheTTLSeconds) * time.Second
	return s.cache.getOrLoad(identifier, ttl, func() (*Catalog, error) {
		started := time.Now()
		src, err := s.openSource(ctx, identifier)
		if err != nil {
			return nil, err
		}
		defer src.Close()

		c := New()
		if err := c.Load(phreeqc.NewReader(src)); err != nil {
			return nil, fmt.Errorf("loading catalog %q: %w", identifier, err)
		}
		s.logger.Info("Catalog loaded",
			zap.String("source", identifier),
			zap.Int("elements", c.NumElements()),
			zap.Int("aqueous", c.NumAqueousSpecies()),
			zap.Int("gaseous", c.NumGaseousSpecies()),
			zap.Int("minerals", c.NumMineralSpecies()),
			zap.Int("masters", len(c.MasterSpecies())),
			zap.Duration("elapsed", time.Since(started)),
		)
		return c, nil
	})
}

// Invalidate drops the cached catalog for the given identifier.
func (s *Service) Invalidate(identifier string) {
	s.cache.invalidate(identifier)
}

// Summary loads the configured source catalog and returns aggregate counts.
func (s *Service) Summary(ctx context.Context) (*models.Summary, error) {
	c, err := s.LoadCatalog(ctx, s.cfg.Source)
	if err != nil {
		return nil, err
	}
	return &models.Summary{
		Source:         s.cfg.Source,
		Elements:       c.NumElements(),
		AqueousSpecies: c.NumAqueousSpecies(),
		GaseousSpecies: c.NumGaseousSpecies(),
		MineralSpecies: c.NumMineralSpecies(),
		MasterSpecies:  len(c.MasterSpecies()),
		GeneratedAt:    time.Now().Format(time.RFC3339),
	}, nil
}

// SpeciesDetail returns the detailed view of one species of the configured
// source catalog, searched by exact source-format name across all kinds.
func (s *Service) SpeciesDetail(ctx context.Context, name string) (*models.SpeciesDetail, error) {
	c, err := s.LoadCatalog(ctx, s.cfg.Source)
	if err != nil {
		return nil, err
	}
	detail, ok := speciesDetail(c, name)
	if !ok {
		return nil, fmt.Errorf("species %q not found in catalog", name)
	}
	return detail, nil
}

// Masters returns the master-species listing of the configured source
// catalog, in declaration order.
func (s *Service) Masters(ctx context.Context) ([]models.MasterEntry, error) {
	c, err := s.LoadCatalog(ctx, s.cfg.Source)
	if err != nil {
		return nil, err
	}
	masters := c.MasterSpecies()
	entries := make([]models.MasterEntry, 0, len(masters))
	for _, name := range masters {
		products, _ := c.ProductsOf(name)
		entries = append(entries, models.MasterEntry{
			Name:          name,
			CanonicalName: chem.CanonicalName(name),
			Products:      products,
		})
	}
	return entries, nil
}

// Databases lists the database objects available in the configured bucket.
// Requires object storage; local filesystem sources are opened directly by
// identifier and are not enumerable.
func (s *Service) Databases(ctx context.Context) ([]string, error) {
	if s.client == nil {
		return nil, fmt.Errorf("storage client not configured")
	}
	names := []string{}
	for obj := range s.client.ListObjects(ctx, s.bucket, minio.ListObjectsOptions{Recursive: true}) {
		if obj.Err != nil {
			return nil, fmt.Errorf("listing databases in bucket %q: %w", s.bucket, obj.Err)
		}
		names = append(names, obj.Key)
	}
	return names, nil
}

// Publish uploads a merged database as a JSON snapshot object.
func (s *Service) Publish(ctx context.Context, objectName string, database *chem.Database) error {
	if s.client == nil {
		return fmt.Errorf("storage client not configured")
	}
	snapshot := struct {
		Elements []chem.Element        `json:"elements"`
		Aqueous  []chem.AqueousSpecies `json:"aqueous_species"`
		Gaseous  []chem.GaseousSpecies `json:"gaseous_species"`
		Minerals []chem.MineralSpecies `json:"mineral_species"`
	}{
		Elements: database.Elements(),
		Aqueous:  database.AllAqueousSpecies(),
		Gaseous:  database.AllGaseousSpecies(),
		Minerals: database.AllMineralSpecies(),
	}
	payload, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("encoding snapshot %q: %w", objectName, err)
	}
	_, err = s.client.PutObject(ctx, s.bucket, objectName, bytes.NewReader(payload), int64(len(payload)),
		minio.PutObjectOptions{ContentType: "application/json"})
	if err != nil {
		return fmt.Errorf("publishing snapshot %q: %w", objectName, err)
	}
	s.logger.Info("Snapshot published",
		zap.String("object", objectName),
		zap.Int("bytes", len(payload)),
	)
	return nil
}

// Reconcile loads the source and reference catalogs and merges them. The
// reference catalog is exported under canonical naming before matching.
func (s *Service) Reconcile(ctx context.Context, source, reference string) (*chem.Database, *ReconcileReport, error) {
	src, err := s.LoadCatalog(ctx, source)
	if err != nil {
		return nil, nil, err
	}
	ref, err := s.LoadCatalog(ctx, reference)
	if err != nil {
		return nil, nil, err
	}

	started := time.Now()
	merged, report, err := src.Reconcile(ref.CanonicalDatabase())
	if err != nil {
		return nil, nil, fmt.Errorf("reconciling %q against %q: %w", source, reference, err)
	}
	s.logger.Info("Reconciliation finished",
		zap.String("source", source),
		zap.String("reference", reference),
		zap.Int("masters", report.Summary.Masters),
		zap.Int("direct_matches", report.Summary.DirectMatches),
		zap.Int("substitutes", report.Summary.Substitutes),
		zap.Int("unresolved", report.Summary.Unresolved),
		zap.Duration("elapsed", time.Since(started)),
	)
	return merged, report, nil
}

// speciesDetail builds the detail view for one species by exact name.
func speciesDetail(c *Catalog, name string) (*models.SpeciesDetail, bool) {
	elementsOf := func(m chem.ElementMap) map[string]float64 {
		out := make(map[string]float64, len(m))
		for e, coeff := range m {
			out[e.Name] = coeff
		}
		return out
	}
	paramsOf := func(d chem.ThermoData) (logK, deltaH float64) {
		if d.Phreeqc != nil {
			return d.Phreeqc.LogK, d.Phreeqc.DeltaH
		}
		return 0, 0
	}

	for _, sp := range c.AqueousSpecies() {
		if sp.Name != name {
			continue
		}
		logK, deltaH := paramsOf(sp.Thermo)
		detail := &models.SpeciesDetail{
			Name:          sp.Name,
			CanonicalName: chem.CanonicalName(sp.Name),
			Kind:          chem.KindAqueous.String(),
			Charge:        sp.Charge,
			Elements:      elementsOf(sp.Elements),
			ThermoKind:    sp.Thermo.Kind.String(),
			LogK:          logK,
			DeltaH:        deltaH,
			Master:        c.IsMasterSpecies(sp.Name),
		}
		if detail.Master {
			detail.Products, _ = c.ProductsOf(sp.Name)
		}
		return detail, true
	}
	for _, sp := range c.GaseousSpecies() {
		if sp.Name != name {
			continue
		}
		logK, deltaH := paramsOf(sp.Thermo)
		return &models.SpeciesDetail{
			Name:       sp.Name,
			Kind:       chem.KindGaseous.String(),
			Elements:   elementsOf(sp.Elements),
			ThermoKind: sp.Thermo.Kind.String(),
			LogK:       logK,
			DeltaH:     deltaH,
		}, true
	}
	for _, sp := range c.MineralSpecies() {
		if sp.Name != name {
			continue
		}
		logK, deltaH := paramsOf(sp.Thermo)
		return &models.SpeciesDetail{
			Name:       sp.Name,
			Kind:       chem.KindMineral.String(),
			Elements:   elementsOf(sp.Elements),
			ThermoKind: sp.Thermo.Kind.String(),
			LogK:       logK,
			DeltaH:     deltaH,
		}, true
	}
	return nil, false
}
