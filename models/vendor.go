package models

import "time"

const (
	StatusPending  = "pending"
	StatusApproved = "approved"
)

// Vendor is one onboarding submission with its profile, attachments, and
// approval state. Optional columns are pointers so absent form fields persist
// as SQL NULL rather than empty strings.
type Vendor struct {
	Id     uint   `json:"id" gorm:"primaryKey"`
	Status string `json:"status" gorm:"not null;default:pending"`

	// Company profile
	CompanyName  string  `json:"company_name" gorm:"not null"`
	Dba          *string `json:"dba"`
	Address      *string `json:"address"`
	City         *string `json:"city"`
	State        *string `json:"state"`
	Zip          *string `json:"zip"`
	Phone        *string `json:"phone"`
	Email        *string `json:"email"`
	Website      *string `json:"website"`
	BusinessType *string `json:"business_type"`

	// Tax identity
	Ein               *string `json:"ein"`
	TaxClassification *string `json:"tax_classification"`
	W9Filename        *string `json:"w9_filename"`
	W9Filepath        *string `json:"w9_filepath"`

	// Banking
	BankName      *string `json:"bank_name"`
	AccountHolder *string `json:"account_holder"`
	RoutingNumber *string `json:"routing_number"`
	AccountNumber *string `json:"account_number"`
	AccountType   *string `json:"account_type"`

	// Insurance
	InsurancePolicyNumber        *string `json:"insurance_policy_number"`
	InsuranceExpiration          *string `json:"insurance_expiration"`
	InsuranceCertificateFilename *string `json:"insurance_certificate_filename"`
	InsuranceCertificateFilepath *string `json:"insurance_certificate_filepath"`
	InsuranceCoverageAmount      *string `json:"insurance_coverage_amount"`

	// Contacts
	PrimaryContactName  *string `json:"primary_contact_name"`
	PrimaryContactEmail *string `json:"primary_contact_email"`
	PrimaryContactPhone *string `json:"primary_contact_phone"`
	ApContactName       *string `json:"ap_contact_name"`
	ApContactEmail      *string `json:"ap_contact_email"`
	ApContactPhone      *string `json:"ap_contact_phone"`

	SubmittedAt time.Time  `json:"submitted_at" gorm:"not null"`
	ApprovedAt  *time.Time `json:"approved_at"`
	ApprovedBy  *string    `json:"approved_by"`
	CreatedAt   time.Time  `json:"created_at"`
}
