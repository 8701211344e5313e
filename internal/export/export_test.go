package export

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/seadex/seadex/internal/records"
)

func sampleRecords() []records.Record {
	created := time.Date(2025, 6, 1, 12, 30, 0, 0, time.UTC)
	return []records.Record{
		{
			ID:                1,
			UserID:            7,
			ImageURL:          "/uploads/images/a.jpg",
			RecognitionResult: "蓝鲸",
			ScientificName:    "Balaenoptera musculus",
			Confidence:        0.95,
			Status:            1,
			CreatedAt:         created,
		},
		{
			ID:                2,
			UserID:            7,
			ImageURL:          "/uploads/images/b.jpg",
			RecognitionResult: "小丑鱼",
			ScientificName:    "Amphiprion ocellaris",
			Confidence:        0.8,
			Status:            1,
			CreatedAt:         created,
		},
	}
}

func TestRenderCSV(t *testing.T) {
	data, err := Render(FormatCSV, sampleRecords())
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	if !bytes.HasPrefix(data, utf8BOM) {
		t.Error("CSV export missing UTF-8 BOM")
	}

	r := csv.NewReader(bytes.NewReader(bytes.TrimPrefix(data, utf8BOM)))
	rows, err := r.ReadAll()
	if err != nil {
		t.Fatalf("export is not valid CSV: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("rows = %d, want header + 2", len(rows))
	}
	if rows[0][3] != "识别结果" {
		t.Errorf("header = %v", rows[0])
	}
	if rows[1][3] != "蓝鲸" || rows[1][5] != "0.95" {
		t.Errorf("first row = %v", rows[1])
	}
	if rows[1][7] != "2025-06-01 12:30:00" {
		t.Errorf("timestamp = %q", rows[1][7])
	}
}

func TestRenderCSV_EmptyFormatDefaults(t *testing.T) {
	data, err := Render("", nil)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if !bytes.HasPrefix(data, utf8BOM) {
		t.Error("default format should be CSV with BOM")
	}
}

func TestRenderXLSX(t *testing.T) {
	data, err := Render(FormatXLSX, sampleRecords())
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("export is not a valid workbook: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows("Records")
	if err != nil {
		t.Fatalf("reading Records sheet: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("rows = %d, want header + 2", len(rows))
	}
	if rows[0][4] != "学名" {
		t.Errorf("header = %v", rows[0])
	}
	if rows[2][3] != "小丑鱼" {
		t.Errorf("second row = %v", rows[2])
	}

	// The default sheet is replaced, not kept alongside.
	for _, name := range f.GetSheetList() {
		if name == "Sheet1" {
			t.Error("default Sheet1 still present")
		}
	}
}

func TestRender_UnknownFormat(t *testing.T) {
	if _, err := Render("pdf", nil); err == nil {
		t.Error("expected error for unknown format")
	}
}

func TestContentTypeAndFilename(t *testing.T) {
	if ct := ContentType(FormatCSV); !strings.HasPrefix(ct, "text/csv") {
		t.Errorf("csv content type = %q", ct)
	}
	if ct := ContentType(FormatXLSX); !strings.Contains(ct, "spreadsheetml") {
		t.Errorf("xlsx content type = %q", ct)
	}
	if got := Filename(FormatCSV, "20250601"); got != "recognition_records_20250601.csv" {
		t.Errorf("filename = %q", got)
	}
	if got := Filename(FormatXLSX, "20250601"); got != "recognition_records_20250601.xlsx" {
		t.Errorf("filename = %q", got)
	}
}
