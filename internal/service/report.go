// 报表导出服务

package service

import (
	"bytes"
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"

	"github.com/kevin123-bit/FLEET-MANAGEMENT-1/internal/model"
)

// ReportService exports fleet history as spreadsheets
type ReportService struct {
	db *gorm.DB
}

// NewReportService creates a new report service
func NewReportService(db *gorm.DB) *ReportService {
	return &ReportService{db: db}
}

// ExportFuelRecords renders all fuel records to an xlsx workbook,
// newest first, with vehicle and driver names resolved
func (s *ReportService) ExportFuelRecords(ctx context.Context) (*bytes.Buffer, error) {
	var records []model.FuelRecord
	if err := s.db.WithContext(ctx).Preload("Vehicle").Preload("Driver").Order("date DESC").Find(&records).Error; err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Fuel Records"
	f.SetSheetName("Sheet1", sheetName)

	headers := []string{"Date", "Vehicle", "Driver", "Quantity", "Cost", "Location"}
	for i, h := range headers {
		cell := fmt.Sprintf("%c1", 'A'+i)
		f.SetCellValue(sheetName, cell, h)
	}

	for i, r := range records {
		row := i + 2
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), r.Date.Format("2006-01-02 15:04"))
		if r.Vehicle != nil {
			f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), r.Vehicle.Name)
		}
		if r.Driver != nil {
			f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), r.Driver.Name)
		}
		f.SetCellValue(sheetName, fmt.Sprintf("D%d", row), r.Quantity)
		f.SetCellValue(sheetName, fmt.Sprintf("E%d", row), r.Cost)
		f.SetCellValue(sheetName, fmt.Sprintf("F%d", row), r.Location)
	}

	for i := range headers {
		col := string(rune('A' + i))
		f.SetColWidth(sheetName, col, col, 20)
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return &buf, nil
}

// ExportMaintenanceRecords renders all maintenance records to an xlsx
// workbook, newest first
func (s *ReportService) ExportMaintenanceRecords(ctx context.Context) (*bytes.Buffer, error) {
	var records []model.MaintenanceRecord
	if err := s.db.WithContext(ctx).Preload("Vehicle").Order("date DESC").Find(&records).Error; err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Maintenance Records"
	f.SetSheetName("Sheet1", sheetName)

	headers := []string{"Date", "Vehicle", "Description", "Cost", "Status"}
	for i, h := range headers {
		cell := fmt.Sprintf("%c1", 'A'+i)
		f.SetCellValue(sheetName, cell, h)
	}

	for i, r := range records {
		row := i + 2
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), r.Date.Format("2006-01-02"))
		if r.Vehicle != nil {
			f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), r.Vehicle.Name)
		}
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), r.Description)
		f.SetCellValue(sheetName, fmt.Sprintf("D%d", row), r.Cost)
		f.SetCellValue(sheetName, fmt.Sprintf("E%d", row), r.Status)
	}

	for i := range headers {
		col := string(rune('A' + i))
		f.SetColWidth(sheetName, col, col, 20)
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return &buf, nil
}
