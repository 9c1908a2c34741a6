package model

import (
	"sort"

	"github.com/shopspring/decimal"
)

// PriceRange is one tier of a service price list: Price applies per case
// up to MaxCases cases.
type PriceRange struct {
	MaxCases int64           `bson:"max_cases" json:"max_cases"`
	Price    decimal.Decimal `bson:"price" json:"price"`
}

// Service is a testing service with its tiered price list.
type Service struct {
	ID          int64        `bson:"_id" json:"id"`
	Name        string       `bson:"name" json:"name"`
	PriceRanges []PriceRange `bson:"price_ranges" json:"price_ranges"`
}

func (s *Service) GetID() int64 { return s.ID }
func (s *Service) SetID(id int64) { s.ID = id }

// PricePerCase returns the price of the smallest tier that covers totalCase.
// Zero is returned when no tier covers it.
func (s *Service) PricePerCase(totalCase int64) decimal.Decimal {
	tiers := make([]PriceRange, len(s.PriceRanges))
	copy(tiers, s.PriceRanges)
	sort.SliceStable(tiers, func(i, j int) bool { return tiers[i].MaxCases < tiers[j].MaxCases })

	for _, tier := range tiers {
		if totalCase <= tier.MaxCases {
			return tier.Price
		}
	}
	return decimal.Zero
}

// ServiceCost is the fixed per-case cost breakdown of a test type.
type ServiceCost struct {
	ID           int64           `bson:"_id" json:"id"`
	TestTypeName string          `bson:"test_type_name" json:"test_type"`
	Salary       decimal.Decimal `bson:"salary" json:"salary"`
	Incentive    decimal.Decimal `bson:"incentive" json:"incentive"`
	Misc         decimal.Decimal `bson:"misc" json:"misc"`
	Equipment    decimal.Decimal `bson:"equipment" json:"equipment"`
	Consumables  decimal.Decimal `bson:"consumables" json:"consumables"`
	Reporting    decimal.Decimal `bson:"reporting" json:"reporting"`
}

func (s *ServiceCost) GetID() int64 { return s.ID }
func (s *ServiceCost) SetID(id int64) { s.ID = id }

// QuoteRate is the per-case rate used when quoting. Consumables are billed
// separately and are not part of it.
func (s *ServiceCost) QuoteRate() decimal.Decimal {
	return s.Salary.Add(s.Incentive).Add(s.Misc).Add(s.Equipment).Add(s.Reporting)
}

// Total is the sum of every cost bucket.
func (s *ServiceCost) Total() decimal.Decimal {
	return s.QuoteRate().Add(s.Consumables)
}
