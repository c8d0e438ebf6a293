package controllers

import (
	"errors"
	"os"

	"github.com/gofiber/fiber/v2"

	"vendorflow-backend/middlewares"
	"vendorflow-backend/models"
	"vendorflow-backend/storage"
	"vendorflow-backend/utils"
)

// VendorStore is the repository surface the controllers depend on.
type VendorStore interface {
	Insert(vendor *models.Vendor) error
	ListAll() ([]models.Vendor, error)
	GetByID(id uint) (*models.Vendor, error)
	Approve(id uint, approvedBy string) (*models.Vendor, error)
}

type VendorController struct {
	vendors VendorStore
	files   *storage.Store
}

func NewVendorController(vendors VendorStore, files *storage.Store) *VendorController {
	return &VendorController{vendors: vendors, files: files}
}

// VendorSubmissionDTO is the vendor registration form. Only company_name is
// mandatory; everything else is free-form and optional.
type VendorSubmissionDTO struct {
	CompanyName  string `form:"company_name" validate:"required,min=1"`
	Dba          string `form:"dba" validate:"omitempty"`
	Address      string `form:"address" validate:"omitempty"`
	City         string `form:"city" validate:"omitempty"`
	State        string `form:"state" validate:"omitempty"`
	Zip          string `form:"zip" validate:"omitempty"`
	Phone        string `form:"phone" validate:"omitempty"`
	Email        string `form:"email" validate:"omitempty"`
	Website      string `form:"website" validate:"omitempty"`
	BusinessType string `form:"business_type" validate:"omitempty"`

	Ein               string `form:"ein" validate:"omitempty"`
	TaxClassification string `form:"tax_classification" validate:"omitempty"`

	BankName      string `form:"bank_name" validate:"omitempty"`
	AccountHolder string `form:"account_holder" validate:"omitempty"`
	RoutingNumber string `form:"routing_number" validate:"omitempty"`
	AccountNumber string `form:"account_number" validate:"omitempty"`
	AccountType   string `form:"account_type" validate:"omitempty"`

	InsurancePolicyNumber   string `form:"insurance_policy_number" validate:"omitempty"`
	InsuranceExpiration     string `form:"insurance_expiration" validate:"omitempty"`
	InsuranceCoverageAmount string `form:"insurance_coverage_amount" validate:"omitempty"`

	PrimaryContactName  string `form:"primary_contact_name" validate:"omitempty"`
	PrimaryContactEmail string `form:"primary_contact_email" validate:"omitempty"`
	PrimaryContactPhone string `form:"primary_contact_phone" validate:"omitempty"`
	ApContactName       string `form:"ap_contact_name" validate:"omitempty"`
	ApContactEmail      string `form:"ap_contact_email" validate:"omitempty"`
	ApContactPhone      string `form:"ap_contact_phone" validate:"omitempty"`
}

// POST /api/vendors
func (ct *VendorController) SubmitVendor(c *fiber.Ctx) error {
	var in VendorSubmissionDTO
	if err := middlewares.BindAndValidate(c, &in); err != nil {
		return err
	}
	utils.NormalizeDTO(&in)

	vendor := models.Vendor{
		CompanyName:             in.CompanyName,
		Dba:                     optional(in.Dba),
		Address:                 optional(in.Address),
		City:                    optional(in.City),
		State:                   optional(in.State),
		Zip:                     optional(in.Zip),
		Phone:                   optional(in.Phone),
		Email:                   optional(in.Email),
		Website:                 optional(in.Website),
		BusinessType:            optional(in.BusinessType),
		Ein:                     optional(in.Ein),
		TaxClassification:       optional(in.TaxClassification),
		BankName:                optional(in.BankName),
		AccountHolder:           optional(in.AccountHolder),
		RoutingNumber:           optional(in.RoutingNumber),
		AccountNumber:           optional(in.AccountNumber),
		AccountType:             optional(in.AccountType),
		InsurancePolicyNumber:   optional(in.InsurancePolicyNumber),
		InsuranceExpiration:     optional(in.InsuranceExpiration),
		InsuranceCoverageAmount: optional(in.InsuranceCoverageAmount),
		PrimaryContactName:      optional(in.PrimaryContactName),
		PrimaryContactEmail:     optional(in.PrimaryContactEmail),
		PrimaryContactPhone:     optional(in.PrimaryContactPhone),
		ApContactName:           optional(in.ApContactName),
		ApContactEmail:          optional(in.ApContactEmail),
		ApContactPhone:          optional(in.ApContactPhone),
	}

	// Attachments are validated and written before the insert; a row is never
	// created for a rejected file.
	var stored []storage.StoredFile

	if fh, err := c.FormFile("w9_file"); err == nil && fh != nil {
		saved, err := ct.files.Save(fh)
		if err != nil {
			return uploadError(err)
		}
		stored = append(stored, saved)
		vendor.W9Filename = &saved.Name
		vendor.W9Filepath = &saved.Path
	}

	if fh, err := c.FormFile("insurance_certificate"); err == nil && fh != nil {
		saved, err := ct.files.Save(fh)
		if err != nil {
			removeStored(stored)
			return uploadError(err)
		}
		stored = append(stored, saved)
		vendor.InsuranceCertificateFilename = &saved.Name
		vendor.InsuranceCertificateFilepath = &saved.Path
	}

	if err := ct.vendors.Insert(&vendor); err != nil {
		removeStored(stored)
		c.Status(fiber.StatusInternalServerError)
		return c.JSON(fiber.Map{
			"success": false,
			"message": "Error submitting vendor",
			"error":   err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"success":   true,
		"message":   "Vendor submitted successfully",
		"vendor_id": vendor.Id,
	})
}

func uploadError(err error) error {
	if errors.Is(err, storage.ErrUnsupportedFileType) || errors.Is(err, storage.ErrFileTooLarge) {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	return err
}

// removeStored deletes files written before a failed insert so rejected
// submissions leave no orphans behind.
func removeStored(files []storage.StoredFile) {
	for _, f := range files {
		_ = os.Remove(f.Path)
	}
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
