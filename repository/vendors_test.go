package repository

import (
	"os"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"vendorflow-backend/database"
	"vendorflow-backend/models"
)

// testRepository connects to the Postgres addressed by TEST_DATABASE_URL
// (Testcontainers or a local instance) and starts from an empty vendors table.
func testRepository(t *testing.T) *VendorRepository {
	t.Helper()

	url := os.Getenv("TEST_DATABASE_URL")
	if url == "" {
		t.Skip("TEST_DATABASE_URL not set; skipping repository tests")
	}

	db, err := database.Connect(url)
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(db))
	require.NoError(t, db.Exec("DELETE FROM vendors").Error)

	return NewVendorRepository(db)
}

func TestInsertForcesPendingAndServerTimestamp(t *testing.T) {
	repo := testRepository(t)

	by := "nobody"
	stale := time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)
	vendor := models.Vendor{
		CompanyName: "Acme Supply Co",
		Status:      models.StatusApproved, // client-supplied values must be ignored
		SubmittedAt: stale,
		ApprovedBy:  &by,
	}

	require.NoError(t, repo.Insert(&vendor))
	require.NotZero(t, vendor.Id)

	got, err := repo.GetByID(vendor.Id)
	require.NoError(t, err)
	require.Equal(t, models.StatusPending, got.Status)
	require.WithinDuration(t, time.Now().UTC(), got.SubmittedAt, 5*time.Second)
	require.Nil(t, got.ApprovedAt)
	require.Nil(t, got.ApprovedBy)
	require.Nil(t, got.W9Filename)
	require.Nil(t, got.InsuranceCertificateFilename)
}

func TestListAllEmptyTableIsNotNil(t *testing.T) {
	repo := testRepository(t)

	vendors, err := repo.ListAll()
	require.NoError(t, err)
	require.NotNil(t, vendors)
	require.Empty(t, vendors)
}

func TestListAllNewestFirst(t *testing.T) {
	repo := testRepository(t)

	base := time.Now().UTC().Add(-time.Hour)
	for i, name := range []string{"Alpha Inc", "Beta LLC", "Gamma Corp"} {
		vendor := models.Vendor{
			CompanyName: name,
			CreatedAt:   base.Add(time.Duration(i) * time.Minute),
		}
		require.NoError(t, repo.Insert(&vendor))
	}

	vendors, err := repo.ListAll()
	require.NoError(t, err)
	require.Len(t, vendors, 3)
	require.Equal(t, "Gamma Corp", vendors[0].CompanyName)
	require.Equal(t, "Beta LLC", vendors[1].CompanyName)
	require.Equal(t, "Alpha Inc", vendors[2].CompanyName)
}

func TestGetByIDNotFound(t *testing.T) {
	repo := testRepository(t)

	_, err := repo.GetByID(987654)
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestApproveSetsAuditFieldsOnce(t *testing.T) {
	repo := testRepository(t)

	vendor := models.Vendor{CompanyName: "Acme Supply Co"}
	require.NoError(t, repo.Insert(&vendor))

	first, err := repo.Approve(vendor.Id, "alice")
	require.NoError(t, err)
	require.Equal(t, models.StatusApproved, first.Status)
	require.NotNil(t, first.ApprovedAt)
	require.NotNil(t, first.ApprovedBy)
	require.Equal(t, "alice", *first.ApprovedBy)

	// Re-approval is a no-op: first writer wins.
	second, err := repo.Approve(vendor.Id, "bob")
	require.NoError(t, err)
	require.Equal(t, "alice", *second.ApprovedBy)
	require.Equal(t, first.ApprovedAt.Unix(), second.ApprovedAt.Unix())
}

func TestApproveUnknownVendor(t *testing.T) {
	repo := testRepository(t)

	_, err := repo.Approve(987654, "alice")
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestApproveConcurrentFirstWriterWins(t *testing.T) {
	repo := testRepository(t)

	vendor := models.Vendor{CompanyName: "Acme Supply Co"}
	require.NoError(t, repo.Insert(&vendor))

	var wg sync.WaitGroup
	results := make([]*models.Vendor, 2)
	errs := make([]error, 2)
	for i, actor := range []string{"alice", "bob"} {
		wg.Add(1)
		go func(i int, actor string) {
			defer wg.Done()
			results[i], errs[i] = repo.Approve(vendor.Id, actor)
		}(i, actor)
	}
	wg.Wait()

	require.NoError(t, errs[0])
	require.NoError(t, errs[1])

	// Exactly one approver is recorded and both callers see the same state.
	require.NotNil(t, results[0].ApprovedBy)
	require.NotNil(t, results[1].ApprovedBy)
	require.Equal(t, *results[0].ApprovedBy, *results[1].ApprovedBy)

	final, err := repo.GetByID(vendor.Id)
	require.NoError(t, err)
	require.Equal(t, *results[0].ApprovedBy, *final.ApprovedBy)
}
