package catalog

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"thermodb/core/chem"
	"thermodb/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const sourceFixture = `
SOLUTION_MASTER_SPECIES
H        H+      -1.0  H     1.008
Ca       Ca+2    0.0   Ca    40.08
C        CO3-2   2.0   HCO3  12.011
O        H2O     0.0   O     15.999

SOLUTION_SPECIES
H+ = H+
Ca+2 = Ca+2
CO3-2 = CO3-2
H2O = H2O
CO3-2 + H+ = HCO3-
	log_k 10.329

PHASES
Calcite
	CaCO3 = CO3-2 + Ca+2
	log_k -8.48
	-Vm 36.934

CO2(g)
	CO2 = CO3-2 + 2 H+
	log_k -1.468

END
`

const referenceFixture = `
SOLUTION_MASTER_SPECIES
H        H+      -1.0  H     1.008
Ca       Ca+2    0.0   Ca    40.08

SOLUTION_SPECIES
H+ = H+
Ca+2 = Ca+2

END
`

// writeFixture writes a database fixture into a temp dir and returns its path.
func writeFixture(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func newFileService(t *testing.T, source string) *Service {
	t.Helper()
	cfg := Config{Source: source, CacheTTLSeconds: 300}
	return NewService(nil, "", zap.NewNop(), cfg)
}

func TestService_LoadCatalog_FromFile(t *testing.T) {
	path := writeFixture(t, "source.dat", sourceFixture)
	svc := newFileService(t, path)

	c, err := svc.LoadCatalog(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, 4, c.NumElements())
	assert.Equal(t, 5, c.NumAqueousSpecies())
	assert.Equal(t, []string{"H+", "Ca+2", "CO3-2", "H2O"}, c.MasterSpecies())
}

func TestService_LoadCatalog_FileMissing(t *testing.T) {
	svc := newFileService(t, "nope.dat")
	_, err := svc.LoadCatalog(context.Background(), "nope.dat")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "opening database file")
}

func TestService_LoadCatalog_FromStorage(t *testing.T) {
	mockClient := new(mocks.Client)
	cfg := Config{Source: "source.dat", FromStorage: true, CacheTTLSeconds: 300}
	svc := NewService(mockClient, "test-bucket", zap.NewNop(), cfg)

	mockClient.On("GetObject", mock.Anything, "test-bucket", "source.dat", mock.Anything).
		Return(io.NopCloser(strings.NewReader(sourceFixture)), nil).Once()

	c, err := svc.LoadCatalog(context.Background(), "source.dat")
	require.NoError(t, err)
	assert.Equal(t, 4, c.NumElements())

	// served from cache, no second fetch
	again, err := svc.LoadCatalog(context.Background(), "source.dat")
	require.NoError(t, err)
	assert.Same(t, c, again)
	mockClient.AssertNumberOfCalls(t, "GetObject", 1)

	t.Run("InvalidateForcesReload", func(t *testing.T) {
		mockClient.On("GetObject", mock.Anything, "test-bucket", "source.dat", mock.Anything).
			Return(io.NopCloser(strings.NewReader(sourceFixture)), nil).Once()

		svc.Invalidate("source.dat")
		_, err := svc.LoadCatalog(context.Background(), "source.dat")
		require.NoError(t, err)
		mockClient.AssertNumberOfCalls(t, "GetObject", 2)
	})
}

func TestService_LoadCatalog_StorageClientMissing(t *testing.T) {
	cfg := Config{Source: "source.dat", FromStorage: true}
	svc := NewService(nil, "test-bucket", zap.NewNop(), cfg)

	_, err := svc.LoadCatalog(context.Background(), "source.dat")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "storage client not configured")
}

func TestService_Summary(t *testing.T) {
	path := writeFixture(t, "source.dat", sourceFixture)
	svc := newFileService(t, path)

	summary, err := svc.Summary(context.Background())
	require.NoError(t, err)
	assert.Equal(t, path, summary.Source)
	assert.Equal(t, 4, summary.Elements)
	assert.Equal(t, 5, summary.AqueousSpecies)
	assert.Equal(t, 1, summary.GaseousSpecies)
	assert.Equal(t, 1, summary.MineralSpecies)
	assert.Equal(t, 4, summary.MasterSpecies)
	assert.NotEmpty(t, summary.GeneratedAt)
}

func TestService_Masters(t *testing.T) {
	path := writeFixture(t, "source.dat", sourceFixture)
	svc := newFileService(t, path)

	masters, err := svc.Masters(context.Background())
	require.NoError(t, err)
	require.Len(t, masters, 4)
	assert.Equal(t, "Ca+2", masters[1].Name)
	assert.Equal(t, "Ca++", masters[1].CanonicalName)
	assert.Equal(t, []string{"Calcite"}, masters[1].Products)
	assert.Equal(t, "H2O", masters[3].Name)
	assert.Equal(t, "H2O(l)", masters[3].CanonicalName)
}

func TestService_SpeciesDetail(t *testing.T) {
	path := writeFixture(t, "source.dat", sourceFixture)
	svc := newFileService(t, path)

	t.Run("Aqueous", func(t *testing.T) {
		detail, err := svc.SpeciesDetail(context.Background(), "HCO3-")
		require.NoError(t, err)
		assert.Equal(t, "HCO3-", detail.Name)
		assert.Equal(t, "HCO3-", detail.CanonicalName)
		assert.Equal(t, "aqueous", detail.Kind)
		assert.Equal(t, float64(-1), detail.Charge)
		assert.Equal(t, "phreeqc", detail.ThermoKind)
		assert.Equal(t, 10.329, detail.LogK)
		assert.False(t, detail.Master)
		assert.Equal(t, map[string]float64{"H": 1, "C": 1, "O": 3}, detail.Elements)
	})

	t.Run("Master", func(t *testing.T) {
		detail, err := svc.SpeciesDetail(context.Background(), "CO3-2")
		require.NoError(t, err)
		assert.True(t, detail.Master)
		assert.Equal(t, []string{"CO2(g)", "Calcite", "HCO3-"}, detail.Products)
		assert.Equal(t, "hkf", detail.ThermoKind)
	})

	t.Run("Mineral", func(t *testing.T) {
		detail, err := svc.SpeciesDetail(context.Background(), "Calcite")
		require.NoError(t, err)
		assert.Equal(t, "mineral", detail.Kind)
		assert.Equal(t, "mineral", detail.ThermoKind)
		assert.Equal(t, -8.48, detail.LogK)
	})

	t.Run("NotFound", func(t *testing.T) {
		_, err := svc.SpeciesDetail(context.Background(), "Quartz")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not found in catalog")
	})
}

func TestService_Databases(t *testing.T) {
	mockClient := new(mocks.Client)
	svc := NewService(mockClient, "test-bucket", zap.NewNop(), Config{FromStorage: true})

	ch := make(chan minio.ObjectInfo, 2)
	ch <- minio.ObjectInfo{Key: "phreeqc.dat"}
	ch <- minio.ObjectInfo{Key: "llnl.dat"}
	close(ch)
	mockClient.On("ListObjects", mock.Anything, "test-bucket", mock.Anything).
		Return((<-chan minio.ObjectInfo)(ch))

	names, err := svc.Databases(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"phreeqc.dat", "llnl.dat"}, names)
}

func TestService_Databases_NoClient(t *testing.T) {
	svc := NewService(nil, "", zap.NewNop(), Config{})
	_, err := svc.Databases(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "storage client not configured")
}

func TestService_Publish(t *testing.T) {
	mockClient := new(mocks.Client)
	svc := NewService(mockClient, "test-bucket", zap.NewNop(), Config{FromStorage: true})

	mockClient.On("PutObject", mock.Anything, "test-bucket", "merged.json",
		mock.Anything, mock.AnythingOfType("int64"), mock.Anything).
		Return(minio.UploadInfo{}, nil)

	db := chem.NewDatabase()
	db.AddElement(chem.Element{Name: "Ca", MolarMass: 40.08})
	db.AddAqueousSpecies(chem.AqueousSpecies{Name: "Ca+2", Charge: 2})

	require.NoError(t, svc.Publish(context.Background(), "merged.json", db))
	mockClient.AssertExpectations(t)
}

func TestService_Reconcile(t *testing.T) {
	source := writeFixture(t, "source.dat", sourceFixture)
	reference := writeFixture(t, "reference.dat", referenceFixture)
	svc := newFileService(t, source)

	merged, report, err := svc.Reconcile(context.Background(), source, reference)
	require.NoError(t, err)

	// H+ and Ca+2 match the reference directly (after canonical renaming of
	// the reference); CO3-2 and H2O find no match or substitute.
	assert.Equal(t, 4, report.Summary.Masters)
	assert.Equal(t, 2, report.Summary.DirectMatches)
	assert.Equal(t, 0, report.Summary.Substitutes)
	assert.Equal(t, 2, report.Summary.Unresolved)
	assert.Equal(t, []string{"H+", "Ca+2"}, report.Primary)
	assert.Equal(t, []string{"CO3-2", "H2O"}, report.Unresolved)

	sp, ok := merged.AqueousSpecies("Ca+2")
	require.True(t, ok)
	assert.Equal(t, "Ca+2", sp.Name)
}
