package service

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/u4rad/camp-service/internal/domain/model"
	"github.com/xuri/excelize/v2"
)

const summarySheet = "Estimate"

// ExportSummary renders a cost summary as an XLSX workbook and returns its
// bytes and a download filename.
func (s *SummaryService) ExportSummary(ctx context.Context, id int64) ([]byte, string, error) {
	cs, err := s.Get(ctx, id)
	if err != nil {
		return nil, "", err
	}
	data, err := SummaryWorkbook(cs)
	if err != nil {
		return nil, "", err
	}
	name := cs.BillingNumber
	if name == "" {
		name = fmt.Sprintf("estimate-%d", cs.ID)
	}
	return data, name + ".xlsx", nil
}

// SummaryWorkbook writes the header, camps and package lines of cs to a
// single-sheet workbook.
func SummaryWorkbook(cs *model.CostSummary) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", summarySheet); err != nil {
		return nil, err
	}
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, err
	}

	row := 1
	put := func(values ...interface{}) error {
		cell, err := excelize.CoordinatesToCellName(1, row)
		if err != nil {
			return err
		}
		row++
		return f.SetSheetRow(summarySheet, cell, &values)
	}
	heading := func(values ...interface{}) error {
		start := row
		if err := put(values...); err != nil {
			return err
		}
		from, _ := excelize.CoordinatesToCellName(1, start)
		to, _ := excelize.CoordinatesToCellName(len(values), start)
		return f.SetCellStyle(summarySheet, from, to, bold)
	}

	steps := []func() error{
		func() error { return heading("Billing number", cs.BillingNumber) },
		func() error { return put("Company", cs.CompanyName) },
		func() error { return put("Address", cs.CompanyAddress) },
		func() error { return put("District", cs.CompanyDistrict) },
		func() error { return put("State", cs.CompanyState) },
		func() error { return put("Pincode", cs.CompanyPincode) },
		func() error { return put("Landmark", cs.CompanyLandmark) },
		func() error { row++; return heading("Camp location", "District", "State", "Start date", "End date") },
	}
	for _, camp := range cs.CampDetails {
		camp := camp
		steps = append(steps, func() error {
			return put(camp.Location, camp.District, camp.State, camp.StartDate, camp.EndDate)
		})
	}
	steps = append(steps, func() error {
		row++
		return heading("Package", "Services", "Total cases", "T price", "Markup", "Unit price", "Total price")
	})
	for _, line := range cs.ServiceDetails {
		line := line
		steps = append(steps, func() error {
			return put(line.PackageName, strings.Join(line.Services, ", "), line.TotalCase,
				line.TPrice.InexactFloat64(), line.Markup.InexactFloat64(),
				line.RevisedUnitPrice.InexactFloat64(), line.TotalPrice.InexactFloat64())
		})
	}
	steps = append(steps, func() error {
		row++
		return heading("Grand total", cs.GrandTotal.InexactFloat64())
	})

	for _, step := range steps {
		if err := step(); err != nil {
			return nil, err
		}
	}
	if err := f.SetColWidth(summarySheet, "A", "B", 24); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
