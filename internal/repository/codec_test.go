//go:build !integration

package repository

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/u4rad/camp-service/internal/domain/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
)

func TestDecimalCodec_RoundTrip(t *testing.T) {
	reg := NewRegistry()
	in := model.CostSummary{
		ID:        7,
		CompanyID: 3,
		ServiceDetails: []model.PackageLine{{
			PackageName: "Basic",
			Services:    []string{"CBC", "Lipid"},
			TotalCase:   120,
			TPrice:      decimal.RequireFromString("390.75"),
			Markup:      decimal.RequireFromString("1.3"),
		}},
		GrandTotal: decimal.RequireFromString("46890.00"),
	}

	raw, err := bson.MarshalWithRegistry(reg, in)
	require.NoError(t, err)

	grand := bson.Raw(raw).Lookup("grand_total")
	assert.Equal(t, bsontype.Decimal128, grand.Type, "money is stored as Decimal128")

	var out model.CostSummary
	require.NoError(t, bson.UnmarshalWithRegistry(reg, raw, &out))
	assert.True(t, in.GrandTotal.Equal(out.GrandTotal))
	assert.True(t, in.ServiceDetails[0].TPrice.Equal(out.ServiceDetails[0].TPrice))
	assert.Equal(t, in.ServiceDetails[0].Services, out.ServiceDetails[0].Services)
}

func TestDecimalCodec_DecodesOtherNumericTypes(t *testing.T) {
	reg := NewRegistry()

	tests := []struct {
		name     string
		value    interface{}
		expected string
	}{
		{name: "int32", value: int32(25), expected: "25"},
		{name: "int64", value: int64(1200), expected: "1200"},
		{name: "double", value: 12.5, expected: "12.5"},
		{name: "string", value: "99.99", expected: "99.99"},
		{name: "null", value: nil, expected: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw, err := bson.Marshal(bson.M{"code": "SAVE10", "discount_percentage": tt.value})
			require.NoError(t, err)

			var coupon model.DiscountCoupon
			require.NoError(t, bson.UnmarshalWithRegistry(reg, raw, &coupon))
			assert.True(t, decimal.RequireFromString(tt.expected).Equal(coupon.DiscountPercentage), "got %s", coupon.DiscountPercentage)
		})
	}
}

func TestDecimalCodec_RejectsUnsupportedType(t *testing.T) {
	raw, err := bson.Marshal(bson.M{"discount_percentage": true})
	require.NoError(t, err)

	var coupon model.DiscountCoupon
	assert.Error(t, bson.UnmarshalWithRegistry(NewRegistry(), raw, &coupon))
}
