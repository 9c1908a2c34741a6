package dto

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/u4rad/camp-service/internal/domain/model"
)

func TestCreateUserRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		req     CreateUserRequest
		wantErr []string
	}{
		{name: "valid", req: CreateUserRequest{Username: "coordinator", Password: "s3cret!", CompanyName: "U4RAD"}},
		{name: "short username", req: CreateUserRequest{Username: "ab", Password: "s3cret!", CompanyName: "U4RAD"}, wantErr: []string{"username"}},
		{name: "short password and no company", req: CreateUserRequest{Username: "coordinator", Password: "123"}, wantErr: []string{"password", "company_name"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if len(tt.wantErr) == 0 {
				assert.NoError(t, err)
				return
			}
			var verrs model.ValidationErrors
			require.ErrorAs(t, err, &verrs)
			for _, field := range tt.wantErr {
				assert.Contains(t, verrs, field)
			}
		})
	}
}

func TestServiceSelectionRequest_Validate(t *testing.T) {
	req := ServiceSelectionRequest{CompanyID: 2, Packages: []model.Package{{PackageName: "Basic", Services: []string{"CBC"}}}}
	require.NoError(t, req.Validate())

	sel := req.ToModel()
	assert.Equal(t, int64(2), sel.CompanyID)
	assert.Equal(t, req.Packages, sel.Packages)

	var verrs model.ValidationErrors
	require.ErrorAs(t, (&ServiceSelectionRequest{CompanyID: 2}).Validate(), &verrs)
	assert.Contains(t, verrs, "packages")
}

func TestQuoteRequest_Validate(t *testing.T) {
	assert.NoError(t, (&QuoteRequest{CompanyID: 1, PartnerMargin: decimal.NewFromInt(20)}).Validate())

	var verrs model.ValidationErrors
	require.ErrorAs(t, (&QuoteRequest{PartnerMargin: decimal.NewFromInt(-1)}).Validate(), &verrs)
	assert.Contains(t, verrs, "company_id")
	assert.Contains(t, verrs, "partner_margin")
}
