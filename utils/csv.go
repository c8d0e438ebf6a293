package utils

import (
	"strconv"
	"strings"
	"time"

	"vendorflow-backend/models"
)

// vendorCSVHeader is the fixed export column order.
var vendorCSVHeader = []string{
	"ID", "Status", "Company Name", "DBA", "Email", "Phone", "Address", "City", "State", "Zip",
	"EIN", "Bank Name", "Routing Number", "Account Number", "Account Type",
	"Primary Contact", "Primary Email", "Primary Phone",
	"AP Contact", "AP Email", "AP Phone",
	"Insurance Policy", "Insurance Expiration", "Coverage Amount",
	"Submitted At", "Approved At",
}

// VendorsCSV serializes vendors (in the order given) into a CSV document.
// Every cell is quoted; missing optional values render as empty strings.
func VendorsCSV(vendors []models.Vendor) []byte {
	rows := make([]string, 0, len(vendors)+1)
	rows = append(rows, csvRow(vendorCSVHeader))

	for _, v := range vendors {
		rows = append(rows, csvRow([]string{
			strconv.FormatUint(uint64(v.Id), 10),
			v.Status,
			v.CompanyName,
			strValue(v.Dba),
			strValue(v.Email),
			strValue(v.Phone),
			strValue(v.Address),
			strValue(v.City),
			strValue(v.State),
			strValue(v.Zip),
			strValue(v.Ein),
			strValue(v.BankName),
			strValue(v.RoutingNumber),
			strValue(v.AccountNumber),
			strValue(v.AccountType),
			strValue(v.PrimaryContactName),
			strValue(v.PrimaryContactEmail),
			strValue(v.PrimaryContactPhone),
			strValue(v.ApContactName),
			strValue(v.ApContactEmail),
			strValue(v.ApContactPhone),
			strValue(v.InsurancePolicyNumber),
			strValue(v.InsuranceExpiration),
			strValue(v.InsuranceCoverageAmount),
			v.SubmittedAt.Format(time.RFC3339),
			timeValue(v.ApprovedAt),
		}))
	}

	return []byte(strings.Join(rows, "\n"))
}

func csvRow(cells []string) string {
	quoted := make([]string, len(cells))
	for i, cell := range cells {
		quoted[i] = `"` + strings.ReplaceAll(cell, `"`, `""`) + `"`
	}
	return strings.Join(quoted, ",")
}

func strValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func timeValue(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(time.RFC3339)
}
