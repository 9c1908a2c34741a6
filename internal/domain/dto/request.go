// Package dto defines Data Transfer Objects for HTTP request and response handling.
//
// Entities that are exchanged as-is live in the model package; this package
// holds the request and response shapes that differ from them.
package dto

import (
	"github.com/shopspring/decimal"
	"github.com/u4rad/camp-service/internal/domain/model"
)

// CreateUserRequest is the body of the user create endpoint.
//
// @Description Request to create a coordinator account
type CreateUserRequest struct {
	Username    string `json:"username" binding:"required,min=3,max=150" example:"coordinator"`
	Password    string `json:"password" binding:"required,min=6" example:"s3cret!"`
	CompanyName string `json:"company_name" binding:"required,max=255" example:"U4RAD Diagnostics"`
} // @name CreateUserRequest

// Validate performs custom validation on the request.
func (r *CreateUserRequest) Validate() error {
	errs := model.ValidationErrors{}
	if len(r.Username) < 3 {
		errs["username"] = "must be at least 3 characters"
	}
	if len(r.Password) < 6 {
		errs["password"] = "must be at least 6 characters"
	}
	if r.CompanyName == "" {
		errs["company_name"] = "this field is required"
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// UpdateUserRequest is the body of the user update endpoint.
// An empty password keeps the current one.
type UpdateUserRequest struct {
	CompanyName string `json:"company_name" binding:"required,max=255"`
	Password    string `json:"password" binding:"omitempty,min=6"`
} // @name UpdateUserRequest

// ServiceSelectionRequest is the body of the package selection endpoints.
//
// @Description Package selection of a company
// @Example {"company_id": 1, "packages": [{"package_name": "Basic", "services": ["CBC", "Lipid"]}]}
type ServiceSelectionRequest struct {
	CompanyID int64           `json:"company_id" example:"1"`
	Packages  []model.Package `json:"packages"`
} // @name ServiceSelectionRequest

// ToModel converts the request to a ServiceSelection.
func (r *ServiceSelectionRequest) ToModel() *model.ServiceSelection {
	return &model.ServiceSelection{CompanyID: r.CompanyID, Packages: r.Packages}
}

// Validate performs custom validation on the request.
func (r *ServiceSelectionRequest) Validate() error {
	return r.ToModel().Validate()
}

// QuoteRequest asks for a price quote of the test plan of a company.
//
// @Description Price quote request
// @Example {"company_id": 1, "partner_margin": 20, "coupon_code": "SAVE10"}
type QuoteRequest struct {
	CompanyID     int64           `json:"company_id" binding:"required,gt=0" example:"1"`
	PartnerMargin decimal.Decimal `json:"partner_margin" swaggertype:"number" example:"20"`
	CouponCode    string          `json:"coupon_code,omitempty" example:"SAVE10"`
} // @name QuoteRequest

// Validate performs custom validation on the request.
func (r *QuoteRequest) Validate() error {
	errs := model.ValidationErrors{}
	if r.CompanyID <= 0 {
		errs["company_id"] = "this field is required"
	}
	if r.PartnerMargin.IsNegative() {
		errs["partner_margin"] = "must not be negative"
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// MessageResponse carries a human readable confirmation.
type MessageResponse struct {
	Message string `json:"message" example:"Package costs saved successfully"`
} // @name MessageResponse

// CostDistributionResponse is returned after distributing package costs.
type CostDistributionResponse struct {
	Message string `json:"message" example:"Package costs saved successfully"`
	Saved   int    `json:"saved" example:"4"`
} // @name CostDistributionResponse

// UploadPDFResponse is returned after a PDF upload.
type UploadPDFResponse struct {
	Message string `json:"message" example:"PDF uploaded successfully!"`
	PDFID   int64  `json:"pdf_id" example:"12"`
} // @name UploadPDFResponse

// CouponResponse is the result of a coupon lookup.
type CouponResponse struct {
	Code               string          `json:"code" example:"SAVE10"`
	DiscountPercentage decimal.Decimal `json:"discount_percentage" swaggertype:"number" example:"10"`
} // @name CouponResponse

// PackageSheetResponse prices the current selection of a company.
type PackageSheetResponse struct {
	CompanyID int64                    `json:"company_id"`
	Packages  []model.PackageSheetLine `json:"packages"`
} // @name PackageSheetResponse
