package repository

import (
	"time"

	"gorm.io/gorm"

	"vendorflow-backend/models"
)

// VendorRepository owns all reads and writes of the vendors table.
type VendorRepository struct {
	db *gorm.DB
}

func NewVendorRepository(db *gorm.DB) *VendorRepository {
	return &VendorRepository{db: db}
}

// Insert creates the row with status forced to pending and submitted_at forced
// to the server clock, regardless of anything the caller set.
func (r *VendorRepository) Insert(vendor *models.Vendor) error {
	vendor.Id = 0
	vendor.Status = models.StatusPending
	vendor.SubmittedAt = time.Now().UTC()
	vendor.ApprovedAt = nil
	vendor.ApprovedBy = nil
	return r.db.Create(vendor).Error
}

// ListAll returns every vendor, newest first. The slice is never nil so an
// empty table serializes as [] rather than null.
func (r *VendorRepository) ListAll() ([]models.Vendor, error) {
	vendors := make([]models.Vendor, 0)
	if err := r.db.Order("created_at DESC").Find(&vendors).Error; err != nil {
		return nil, err
	}
	return vendors, nil
}

func (r *VendorRepository) GetByID(id uint) (*models.Vendor, error) {
	var vendor models.Vendor
	if err := r.db.First(&vendor, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &vendor, nil
}

// Approve flips a pending vendor to approved in a single conditional UPDATE,
// so two concurrent approvals cannot both record an approver. The loser of the
// race (and any re-approval) gets the already-approved row back unchanged.
func (r *VendorRepository) Approve(id uint, approvedBy string) (*models.Vendor, error) {
	now := time.Now().UTC()
	res := r.db.Model(&models.Vendor{}).
		Where("id = ? AND status = ?", id, models.StatusPending).
		Updates(map[string]any{
			"status":      models.StatusApproved,
			"approved_at": now,
			"approved_by": approvedBy,
		})
	if res.Error != nil {
		return nil, res.Error
	}

	var vendor models.Vendor
	if err := r.db.First(&vendor, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &vendor, nil
}
