package model

import "github.com/shopspring/decimal"

// Package sheet multipliers.
var (
	OverheadFactor = decimal.RequireFromString("1.5")
	ProfitFactor   = decimal.RequireFromString("1.3")
)

// CostDetails holds the cost buckets of one service for one company.
// (CompanyID, ServiceName) is unique.
type CostDetails struct {
	ID          int64  `bson:"_id" json:"id"`
	CompanyID   int64  `bson:"company_id" json:"company_id"`
	ServiceName string `bson:"service_name" json:"service_name"`
	Travel      int64  `bson:"travel" json:"travel"`
	Stay        int64  `bson:"stay" json:"stay"`
	Food        int64  `bson:"food" json:"food"`
	Salary      int64  `bson:"salary" json:"salary"`
	Misc        int64  `bson:"misc" json:"misc"`
	Equipment   int64  `bson:"equipment" json:"equipment"`
	Consumables int64  `bson:"consumables" json:"consumables"`
	Reporting   int64  `bson:"reporting" json:"reporting"`
}

func (c *CostDetails) GetID() int64 { return c.ID }
func (c *CostDetails) SetID(id int64) { c.ID = id }

// PackageCost carries the camp logistics totals of one package.
type PackageCost struct {
	PackageName string   `json:"package_name"`
	Travel      int64    `json:"travel"`
	Stay        int64    `json:"stay"`
	Food        int64    `json:"food"`
	TotalCost   int64    `json:"total_cost"`
	Services    []string `json:"services"`
}

// CostDistribution applies package logistics totals to every service of
// each package.
type CostDistribution struct {
	CompanyID int64         `json:"company_id"`
	Packages  []PackageCost `json:"packages"`
}

// Validate requires a company. An empty package list is valid and writes nothing.
func (d *CostDistribution) Validate() error {
	errs := ValidationErrors{}
	if d.CompanyID <= 0 {
		errs["company_id"] = "this field is required"
	}
	for _, p := range d.Packages {
		if p.Travel < 0 || p.Stay < 0 || p.Food < 0 {
			errs["packages"] = "travel, stay and food must not be negative"
			break
		}
	}
	return errs.orNil()
}

// Rows expands the distribution into one CostDetails row per service.
// Buckets other than travel, stay and food are zero. When a service is
// listed more than once the last package wins.
func (d *CostDistribution) Rows() []CostDetails {
	index := make(map[string]int)
	var rows []CostDetails
	for _, p := range d.Packages {
		for _, service := range p.Services {
			if service == "" {
				continue
			}
			row := CostDetails{
				CompanyID:   d.CompanyID,
				ServiceName: service,
				Travel:      p.Travel,
				Stay:        p.Stay,
				Food:        p.Food,
			}
			if i, ok := index[service]; ok {
				rows[i] = row
				continue
			}
			index[service] = len(rows)
			rows = append(rows, row)
		}
	}
	return rows
}

// PackageSheetLine is the computed price of one selected package.
type PackageSheetLine struct {
	PackageName string          `json:"package_name"`
	Services    []string        `json:"services"`
	Base        decimal.Decimal `json:"base"`
	Travel      int64           `json:"travel"`
	Stay        int64           `json:"stay"`
	Food        int64           `json:"food"`
	Overhead    decimal.Decimal `json:"overhead"`
	TPrice      decimal.Decimal `json:"t_price"`
}

// NewPackageSheetLine prices pkg from the service costs keyed by test type
// and the company cost details keyed by service name.
func NewPackageSheetLine(pkg Package, costs map[string]ServiceCost, details map[string]CostDetails) PackageSheetLine {
	line := PackageSheetLine{
		PackageName: pkg.PackageName,
		Services:    pkg.Services,
		Base:        decimal.Zero,
	}

	logisticsSet := false
	for _, service := range pkg.Services {
		if cost, ok := costs[service]; ok {
			line.Base = line.Base.Add(cost.Total())
		}
		if d, ok := details[service]; ok && !logisticsSet {
			line.Travel, line.Stay, line.Food = d.Travel, d.Stay, d.Food
			logisticsSet = true
		}
	}

	logistics := decimal.NewFromInt(line.Travel + line.Stay + line.Food)
	line.Overhead = line.Base.Add(logistics).Mul(OverheadFactor)
	line.TPrice = line.Overhead.Mul(ProfitFactor)
	return line
}
