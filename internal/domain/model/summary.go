package model

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// BillingPrefix starts every generated billing number.
const BillingPrefix = "U4RAD"

// CampDetail is the camp snapshot stored on a cost summary.
type CampDetail struct {
	Location  string `bson:"location" json:"location"`
	District  string `bson:"district" json:"district"`
	State     string `bson:"state" json:"state"`
	PinCode   string `bson:"pin_code" json:"pin_code"`
	Landmark  string `bson:"landmark" json:"landmark"`
	StartDate string `bson:"start_date" json:"start_date"`
	EndDate   string `bson:"end_date" json:"end_date"`
}

// PackageLine is one priced package of a cost summary.
type PackageLine struct {
	PackageName      string          `bson:"package_name" json:"package_name"`
	Services         []string        `bson:"services" json:"services"`
	TotalCase        int64           `bson:"total_case" json:"total_case"`
	TPrice           decimal.Decimal `bson:"t_price" json:"t_price"`
	Markup           decimal.Decimal `bson:"markup" json:"markup"`
	RevisedUnitPrice decimal.Decimal `bson:"revised_unit_price" json:"revised_unit_price"`
	TotalPrice       decimal.Decimal `bson:"total_price" json:"total_price"`
}

// CostSummary is a finalized estimate for a company.
type CostSummary struct {
	ID              int64           `bson:"_id" json:"id"`
	CompanyID       int64           `bson:"company_id" json:"company_id"`
	BillingNumber   string          `bson:"billing_number" json:"billing_number"`
	CompanyName     string          `bson:"company_name" json:"company_name"`
	CompanyState    string          `bson:"company_state" json:"company_state"`
	CompanyDistrict string          `bson:"company_district" json:"company_district"`
	CompanyPincode  string          `bson:"company_pincode" json:"company_pincode"`
	CompanyLandmark string          `bson:"company_landmark" json:"company_landmark"`
	CompanyAddress  string          `bson:"company_address" json:"company_address"`
	CampDetails     []CampDetail    `bson:"camp_details" json:"camp_details"`
	ServiceDetails  []PackageLine   `bson:"service_details" json:"service_details"`
	GrandTotal      decimal.Decimal `bson:"grand_total" json:"grand_total"`
	CreatedAt       time.Time       `bson:"created_at" json:"created_at"`
}

func (s *CostSummary) GetID() int64 { return s.ID }
func (s *CostSummary) SetID(id int64) { s.ID = id }
func (s *CostSummary) GetCreatedAt() time.Time { return s.CreatedAt }
func (s *CostSummary) SetCreatedAt(t time.Time) { s.CreatedAt = t }

// Validate requires a company and at least one package line.
func (s *CostSummary) Validate() error {
	errs := ValidationErrors{}
	if s.CompanyID <= 0 {
		errs["company_id"] = "this field is required"
	}
	if len(s.ServiceDetails) == 0 {
		errs["service_details"] = "at least one package line is required"
	}
	for _, line := range s.ServiceDetails {
		if line.TotalCase < 0 || line.TPrice.IsNegative() {
			errs["service_details"] = "total_case and t_price must not be negative"
			break
		}
	}
	return errs.orNil()
}

// Compute validates the summary and recomputes every line and the grand total.
// A markup that is not positive is treated as 1.
func (s *CostSummary) Compute() error {
	if err := s.Validate(); err != nil {
		return err
	}

	total := decimal.Zero
	for i := range s.ServiceDetails {
		line := &s.ServiceDetails[i]
		markup := line.Markup
		if !markup.IsPositive() {
			markup = decimal.NewFromInt(1)
			line.Markup = markup
		}
		line.RevisedUnitPrice = line.TPrice.Div(markup).Round(2)
		line.TotalPrice = line.RevisedUnitPrice.Mul(decimal.NewFromInt(line.TotalCase)).Round(2)
		total = total.Add(line.TotalPrice)
	}
	s.GrandTotal = total
	return nil
}

// BillingNumber formats the billing number of the seq-th summary of a day.
func BillingNumber(day time.Time, seq int64) string {
	return fmt.Sprintf("%s-%s-%03d", BillingPrefix, day.Format("20060102"), seq)
}
