package model

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestService_PricePerCase(t *testing.T) {
	svc := Service{
		Name: "CBC",
		PriceRanges: []PriceRange{
			{MaxCases: 500, Price: d("80")},
			{MaxCases: 100, Price: d("120")},
			{MaxCases: 250, Price: d("100")},
		},
	}

	tests := []struct {
		cases    int64
		expected string
	}{
		{cases: 1, expected: "120"},
		{cases: 100, expected: "120"},
		{cases: 101, expected: "100"},
		{cases: 250, expected: "100"},
		{cases: 499, expected: "80"},
		{cases: 501, expected: "0"},
	}

	for _, tt := range tests {
		assert.True(t, d(tt.expected).Equal(svc.PricePerCase(tt.cases)), "cases=%d got %s", tt.cases, svc.PricePerCase(tt.cases))
	}
	assert.Equal(t, int64(500), svc.PriceRanges[0].MaxCases, "tiers are not reordered in place")
}

func TestService_PricePerCaseWithoutTiers(t *testing.T) {
	assert.True(t, (&Service{}).PricePerCase(10).IsZero())
}

func TestServiceCost_Rates(t *testing.T) {
	cost := ServiceCost{
		Salary:      d("10"),
		Incentive:   d("2.5"),
		Misc:        d("1"),
		Equipment:   d("3"),
		Consumables: d("4"),
		Reporting:   d("0.5"),
	}

	assert.True(t, d("17").Equal(cost.QuoteRate()))
	assert.True(t, d("21").Equal(cost.Total()))
}
