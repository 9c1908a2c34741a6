package model

import (
	"fmt"
	"math"
	"time"

	"github.com/shopspring/decimal"
)

// Report delivery modes.
const (
	ReportTypeDigital  = "digital"
	ReportTypeHardCopy = "hard copy"
)

// MaxCaseCount bounds case_per_day and number_of_days so their product
// always fits in total_case.
const MaxCaseCount = math.MaxInt32

// TestData is the test-case plan of one service inside a package.
// TotalCase and ReportTypeCost are derived and recomputed on every write.
type TestData struct {
	ID             int64           `bson:"_id" json:"id"`
	CompanyID      int64           `bson:"company_id" json:"company_id"`
	PackageName    string          `bson:"package_name" json:"package_name"`
	ServiceName    string          `bson:"service_name" json:"service_name"`
	CasePerDay     int64           `bson:"case_per_day" json:"case_per_day"`
	NumberOfDays   int64           `bson:"number_of_days" json:"number_of_days"`
	TotalCase      int64           `bson:"total_case" json:"total_case"`
	ReportType     string          `bson:"report_type" json:"report_type"`
	ReportTypeCost decimal.Decimal `bson:"report_type_cost" json:"report_type_cost"`
	CreatedAt      time.Time       `bson:"created_at" json:"created_at"`
}

func (t *TestData) GetID() int64 { return t.ID }
func (t *TestData) SetID(id int64) { t.ID = id }
func (t *TestData) GetCreatedAt() time.Time { return t.CreatedAt }
func (t *TestData) SetCreatedAt(ts time.Time) { t.CreatedAt = ts }

// Validate checks the inputs of the derived fields.
// An empty report type defaults to digital.
func (t *TestData) Validate() error {
	errs := ValidationErrors{}
	if t.CompanyID <= 0 {
		errs["company_id"] = "this field is required"
	}
	if t.PackageName == "" {
		errs["package_name"] = "this field is required"
	}
	if t.ServiceName == "" {
		errs["service_name"] = "this field is required"
	}
	if msg := caseCountError(t.CasePerDay); msg != "" {
		errs["case_per_day"] = msg
	}
	if msg := caseCountError(t.NumberOfDays); msg != "" {
		errs["number_of_days"] = msg
	}
	if t.ReportType == "" {
		t.ReportType = ReportTypeDigital
	}
	if t.ReportType != ReportTypeDigital && t.ReportType != ReportTypeHardCopy {
		errs["report_type"] = `must be one of "digital", "hard copy"`
	}
	return errs.orNil()
}

// Compute validates the row and fills TotalCase and ReportTypeCost.
func (t *TestData) Compute() error {
	if err := t.Validate(); err != nil {
		return err
	}
	t.TotalCase = t.CasePerDay * t.NumberOfDays
	if t.ReportType == ReportTypeHardCopy {
		t.ReportTypeCost = HardCopyRatePerCase.Mul(decimal.NewFromInt(t.TotalCase))
	} else {
		t.ReportTypeCost = decimal.Zero
	}
	return nil
}

func caseCountError(n int64) string {
	switch {
	case n <= 0:
		return "must be greater than 0"
	case n > MaxCaseCount:
		return fmt.Sprintf("must be at most %d", MaxCaseCount)
	}
	return ""
}
