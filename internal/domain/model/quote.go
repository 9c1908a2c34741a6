package model

import "github.com/shopspring/decimal"

// Quote line sources.
const (
	RateSourceServiceCost = "service_cost"
	RateSourcePriceTier   = "price_tier"
)

// QuoteLine prices one TestData row.
type QuoteLine struct {
	PackageName    string          `json:"package_name"`
	ServiceName    string          `json:"service_name"`
	TotalCase      int64           `json:"total_case"`
	Rate           decimal.Decimal `json:"rate"`
	ReportTypeCost decimal.Decimal `json:"report_type_cost"`
	Amount         decimal.Decimal `json:"amount"`
	Source         string          `json:"source"`
}

// NewQuoteLine prices td with its ServiceCost when one exists, and with the
// service price tiers plus the report surcharge otherwise. Both cost and
// service may be nil.
func NewQuoteLine(td TestData, cost *ServiceCost, service *Service) QuoteLine {
	line := QuoteLine{
		PackageName: td.PackageName,
		ServiceName: td.ServiceName,
		TotalCase:   td.TotalCase,
	}
	cases := decimal.NewFromInt(td.TotalCase)

	if cost != nil {
		line.Rate = cost.QuoteRate()
		line.ReportTypeCost = decimal.Zero
		line.Amount = line.Rate.Mul(cases)
		line.Source = RateSourceServiceCost
		return line
	}

	line.Rate = decimal.Zero
	if service != nil {
		line.Rate = service.PricePerCase(td.TotalCase)
	}
	line.ReportTypeCost = td.ReportTypeCost
	line.Amount = line.Rate.Mul(cases).Add(td.ReportTypeCost)
	line.Source = RateSourcePriceTier
	return line
}

// Quote is an ad-hoc price quote for the test plan of a company.
type Quote struct {
	CompanyID          int64           `json:"company_id"`
	Lines              []QuoteLine     `json:"lines"`
	Subtotal           decimal.Decimal `json:"subtotal"`
	PartnerMargin      decimal.Decimal `json:"partner_margin"`
	CouponCode         string          `json:"coupon_code,omitempty"`
	DiscountPercentage decimal.Decimal `json:"discount_percentage"`
	GrandTotal         decimal.Decimal `json:"grand_total"`
}

// Finalize sums the lines and applies the partner margin, then the discount.
func (q *Quote) Finalize() {
	q.Subtotal = decimal.Zero
	for _, line := range q.Lines {
		q.Subtotal = q.Subtotal.Add(line.Amount)
	}
	withMargin := q.Subtotal.Mul(hundred.Add(q.PartnerMargin)).Div(hundred)
	q.GrandTotal = withMargin.Mul(hundred.Sub(q.DiscountPercentage)).Div(hundred).Round(2)
}
