package services

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"time"

	"fleetrecord/internal/domain/models"
	"fleetrecord/internal/utils"

	"github.com/phpdave11/gofpdf"
	"github.com/xuri/excelize/v2"
)

var usageExportHeader = []string{
	"LogID", "Date", "User", "Company", "VehicleID", "PlateNo",
	"OdoStart", "OdoEnd", "Distance", "Purpose", "AnomalyFlag", "AnomalyNote", "ApprovedBy",
}

// ExportService renders the usage report as CSV or Excel and the monthly
// rollup as PDF. All exports are built in memory and handed back as bytes.
type ExportService struct {
	RequestID string
}

func (s ExportService) UsageCSV(trips []models.TripRecord) ([]byte, string, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(usageExportHeader); err != nil {
		return nil, "", err
	}
	for _, t := range trips {
		if err := w.Write(usageRow(t)); err != nil {
			return nil, "", err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, "", err
	}

	utils.LogEvent(s.RequestID, "export", "usage_csv", fmt.Sprintf("rows=%d", len(trips)))
	return buf.Bytes(), exportFilename("usage_export", "csv"), nil
}

func (s ExportService) UsageExcel(trips []models.TripRecord) ([]byte, string, error) {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Usage"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, "", err
	}

	for col, h := range usageExportHeader {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, "", err
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return nil, "", err
		}
	}

	for i, t := range trips {
		values := []any{
			t.LogID, t.Date, t.User, t.Company, t.VehicleID, t.PlateNo,
			cellNumber(t.OdoStart), cellNumber(t.OdoEnd), cellNumber(t.Distance),
			t.Purpose, t.AnomalyFlag, t.AnomalyNote, t.ApprovedBy,
		}
		for col, v := range values {
			if v == nil {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return nil, "", err
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, "", err
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, "", err
	}

	utils.LogEvent(s.RequestID, "export", "usage_xlsx", fmt.Sprintf("rows=%d", len(trips)))
	return buf.Bytes(), exportFilename("usage_export", "xlsx"), nil
}

func (s ExportService) MonthlyPDF(aggs []models.MonthlyAggregate) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Monthly Mileage", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, "MONTHLY MILEAGE REPORT")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 10)
	pdf.Cell(0, 6, "Generated "+time.Now().Format("2006-01-02 15:04"))
	pdf.Ln(10)

	widths := []float64{45, 35, 45, 45}
	headers := []string{"Vehicle", "Month", "Distance", "Flag"}

	pdf.SetFont("Helvetica", "B", 11)
	for i, h := range headers {
		pdf.CellFormat(widths[i], 8, h, "1", 0, "L", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 11)
	for _, a := range aggs {
		distance := "-"
		if a.MonthlyDistance != nil {
			distance = strconv.FormatFloat(*a.MonthlyDistance, 'f', -1, 64)
		}
		cols := []string{a.VehicleID, a.Month, distance, a.MonthlyFlag}
		for i, v := range cols {
			pdf.CellFormat(widths[i], 8, v, "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}

	utils.LogEvent(s.RequestID, "export", "monthly_pdf", fmt.Sprintf("rows=%d", len(aggs)))
	return buf.Bytes(), exportFilename("monthly_mileage", "pdf"), nil
}

func usageRow(t models.TripRecord) []string {
	return []string{
		strconv.FormatInt(t.LogID, 10),
		t.Date,
		t.User,
		t.Company,
		t.VehicleID,
		t.PlateNo,
		csvNumber(t.OdoStart),
		csvNumber(t.OdoEnd),
		csvNumber(t.Distance),
		t.Purpose,
		t.AnomalyFlag,
		t.AnomalyNote,
		t.ApprovedBy,
	}
}

// csvNumber keeps unknown readings as empty cells, never zero.
func csvNumber(p *float64) string {
	if p == nil {
		return ""
	}
	return strconv.FormatFloat(*p, 'f', -1, 64)
}

func cellNumber(p *float64) any {
	if p == nil {
		return nil
	}
	return *p
}

func exportFilename(base, ext string) string {
	return fmt.Sprintf("%s_%s.%s", base, time.Now().Format("20060102"), ext)
}
