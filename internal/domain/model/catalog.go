package model

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// DiscountCoupon is a discount code. Code is unique.
type DiscountCoupon struct {
	ID                 int64           `bson:"_id" json:"id"`
	Code               string          `bson:"code" json:"code"`
	DiscountPercentage decimal.Decimal `bson:"discount_percentage" json:"discount_percentage"`
}

func (c *DiscountCoupon) GetID() int64 { return c.ID }
func (c *DiscountCoupon) SetID(id int64) { c.ID = id }

var hundred = decimal.NewFromInt(100)

// Validate checks the code and that the percentage is within 0..100.
func (c *DiscountCoupon) Validate() error {
	errs := ValidationErrors{}
	c.Code = strings.TrimSpace(c.Code)
	if c.Code == "" {
		errs["code"] = "this field is required"
	}
	if c.DiscountPercentage.IsNegative() || c.DiscountPercentage.GreaterThan(hundred) {
		errs["discount_percentage"] = "must be between 0 and 100"
	}
	return errs.orNil()
}

// CopyPrice is the configured price of a printed report copy.
type CopyPrice struct {
	ID            int64           `bson:"_id" json:"id"`
	Name          string          `bson:"name" json:"name" binding:"required,max=100"`
	HardCopyPrice decimal.Decimal `bson:"hard_copy_price" json:"hard_copy_price"`
}

func (c *CopyPrice) GetID() int64 { return c.ID }
func (c *CopyPrice) SetID(id int64) { c.ID = id }

// ServiceDetail is a nested service row of CompanyDetails.
type ServiceDetail struct {
	ServiceName string `bson:"service_name" json:"service_name" binding:"required"`
	TotalCases  int64  `bson:"total_cases" json:"total_cases" binding:"gte=0"`
}

// CompanyDetails is a per-company service total, optionally grouped under a
// parent company.
type CompanyDetails struct {
	ID           int64           `bson:"_id" json:"id"`
	CompanyName  string          `bson:"company_name" json:"company_name" binding:"required,max=255"`
	GrandTotal   decimal.Decimal `bson:"grand_total" json:"grand_total"`
	SuperCompany string          `bson:"super_company" json:"super_company" binding:"max=255"`
	Services     []ServiceDetail `bson:"services" json:"services" binding:"dive"`
}

func (c *CompanyDetails) GetID() int64 { return c.ID }
func (c *CompanyDetails) SetID(id int64) { c.ID = id }

// Estimation is an uploaded estimate PDF.
type Estimation struct {
	ID          int64     `bson:"_id" json:"id"`
	CompanyName string    `bson:"company_name" json:"company_name"`
	PDFFile     string    `bson:"pdf_file" json:"pdf_file"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
}

func (e *Estimation) GetID() int64 { return e.ID }
func (e *Estimation) SetID(id int64) { e.ID = id }
func (e *Estimation) GetCreatedAt() time.Time { return e.CreatedAt }
func (e *Estimation) SetCreatedAt(t time.Time) { e.CreatedAt = t }
