// Package export renders recognition records as downloadable files.
package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/xuri/excelize/v2"

	"github.com/seadex/seadex/internal/records"
)

// Format selects the export file format.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
)

// utf8BOM keeps spreadsheet applications from mangling the Chinese columns
// in the CSV export.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

var exportHeaders = []string{
	"ID", "用户ID", "图片URL", "识别结果", "学名", "置信度", "状态", "创建时间",
}

// ContentType returns the MIME type for a format.
func ContentType(f Format) string {
	if f == FormatXLSX {
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	}
	return "text/csv;charset=UTF-8"
}

// Render produces the export file bytes for the given records.
func Render(f Format, recs []records.Record) ([]byte, error) {
	switch f {
	case FormatXLSX:
		return renderXLSX(recs)
	case FormatCSV, "":
		return renderCSV(recs)
	default:
		return nil, fmt.Errorf("unknown export format: %s", f)
	}
}

func renderCSV(recs []records.Record) ([]byte, error) {
	var buf bytes.Buffer
	buf.Write(utf8BOM)

	w := csv.NewWriter(&buf)
	if err := w.Write(exportHeaders); err != nil {
		return nil, fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, r := range recs {
		row := []string{
			strconv.FormatInt(r.ID, 10),
			strconv.FormatInt(r.UserID, 10),
			r.ImageURL,
			r.RecognitionResult,
			r.ScientificName,
			strconv.FormatFloat(r.Confidence, 'f', 2, 64),
			strconv.Itoa(r.Status),
			r.CreatedAt.Format("2006-01-02 15:04:05"),
		}
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush CSV: %w", err)
	}
	return buf.Bytes(), nil
}

func renderXLSX(recs []records.Record) ([]byte, error) {
	f := excelize.NewFile()
	const sheet = "Records"

	index, err := f.NewSheet(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("failed to drop default sheet: %w", err)
	}

	for i, h := range exportHeaders {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return nil, err
		}
	}

	for rowIdx, r := range recs {
		values := []any{
			r.ID, r.UserID, r.ImageURL, r.RecognitionResult, r.ScientificName,
			r.Confidence, r.Status, r.CreatedAt.Format("2006-01-02 15:04:05"),
		}
		for colIdx, v := range values {
			cell, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, err
			}
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("failed to serialize workbook: %w", err)
	}
	return buf.Bytes(), nil
}

// Filename returns the download filename for a format with the given
// timestamp suffix.
func Filename(f Format, timestamp string) string {
	if f == FormatXLSX {
		return "recognition_records_" + timestamp + ".xlsx"
	}
	return "recognition_records_" + timestamp + ".csv"
}
