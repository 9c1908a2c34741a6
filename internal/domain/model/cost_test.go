package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCostDistribution_Rows(t *testing.T) {
	dist := CostDistribution{
		CompanyID: 1,
		Packages: []PackageCost{
			{PackageName: "Basic", Travel: 100, Stay: 50, Food: 20, Services: []string{"CBC", "Lipid"}},
			{PackageName: "Eye", Travel: 300, Stay: 0, Food: 10, Services: []string{"Vision", "", "CBC"}},
		},
	}

	rows := dist.Rows()
	require.Len(t, rows, 3)

	assert.Equal(t, CostDetails{CompanyID: 1, ServiceName: "CBC", Travel: 300, Food: 10}, rows[0], "the last package listing a service wins")
	assert.Equal(t, CostDetails{CompanyID: 1, ServiceName: "Lipid", Travel: 100, Stay: 50, Food: 20}, rows[1])
	assert.Equal(t, "Vision", rows[2].ServiceName)
	for _, r := range rows {
		assert.Zero(t, r.Salary+r.Misc+r.Equipment+r.Consumables+r.Reporting)
	}
}

func TestCostDistribution_Validate(t *testing.T) {
	assert.NoError(t, (&CostDistribution{CompanyID: 1, Packages: []PackageCost{{PackageName: "Basic"}}}).Validate())
	assert.NoError(t, (&CostDistribution{CompanyID: 1}).Validate(), "packages are optional")

	err := (&CostDistribution{}).Validate()
	var verrs ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Equal(t, ValidationErrors{"company_id": "this field is required"}, verrs)

	err = (&CostDistribution{CompanyID: 1, Packages: []PackageCost{{Travel: -1}}}).Validate()
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs, "packages")
}

func TestNewPackageSheetLine(t *testing.T) {
	pkg := Package{PackageName: "Basic", Services: []string{"CBC", "Lipid", "Unknown"}}
	costs := map[string]ServiceCost{
		"CBC":   {Salary: d("10"), Consumables: d("5")},
		"Lipid": {Salary: d("20"), Reporting: d("5")},
	}
	details := map[string]CostDetails{
		"Lipid": {ServiceName: "Lipid", Travel: 100, Stay: 40, Food: 20},
	}

	line := NewPackageSheetLine(pkg, costs, details)

	assert.True(t, d("40").Equal(line.Base), "base %s", line.Base)
	assert.Equal(t, int64(100), line.Travel)
	assert.Equal(t, int64(40), line.Stay)
	assert.Equal(t, int64(20), line.Food)
	// (40 + 160) * 1.5 = 300; 300 * 1.3 = 390
	assert.True(t, d("300").Equal(line.Overhead), "overhead %s", line.Overhead)
	assert.True(t, d("390").Equal(line.TPrice), "t_price %s", line.TPrice)
}

func TestNewPackageSheetLine_NoCosts(t *testing.T) {
	line := NewPackageSheetLine(Package{PackageName: "Empty"}, nil, nil)
	assert.True(t, line.Base.IsZero())
	assert.True(t, line.TPrice.IsZero())
}
