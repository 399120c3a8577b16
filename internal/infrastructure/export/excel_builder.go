package export

import (
	"fmt"
	"time"

	"therapy_companion_service/internal/domain/checkins"
	"therapy_companion_service/internal/domain/patients"
	"therapy_companion_service/internal/pkg/logger"

	"github.com/xuri/excelize/v2"
)

const (
	summarySheet = "Weekly Summary"
	dailySheet   = "Daily Check-ins"
	notesSheet   = "Detailed Notes"

	headerColor    = "366092"
	subheaderColor = "DCE6F1"
	goodColor      = "C6EFCE"
	warnColor      = "FFEB9C"
	badColor       = "FFC7CE"

	maxColumnWidth = 50
)

var weekdayNames = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

// ExcelWorkbookBuilder renders weekly tracking reports as xlsx workbooks.
type ExcelWorkbookBuilder struct {
	logger logger.Logger
}

func NewExcelWorkbookBuilder(logger logger.Logger) (*ExcelWorkbookBuilder, error) {
	if logger == nil {
		return nil, fmt.Errorf("logger cannot be nil")
	}
	return &ExcelWorkbookBuilder{logger: logger}, nil
}

// styleSet holds the style ids registered on a workbook.
type styleSet struct {
	title     int
	subheader int
	boldLabel int
	header    int
	bordered  int
	good      int
	warn      int
	bad       int
	noEntry   int
}

func registerStyles(f *excelize.File) (*styleSet, error) {
	thin := []excelize.Border{
		{Type: "left", Style: 1, Color: "000000"},
		{Type: "right", Style: 1, Color: "000000"},
		{Type: "top", Style: 1, Color: "000000"},
		{Type: "bottom", Style: 1, Color: "000000"},
	}

	s := &styleSet{}
	var err error

	if s.title, err = f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true, Size: 16}}); err != nil {
		return nil, err
	}
	if s.subheader, err = f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 12},
		Fill: excelize.Fill{Type: "pattern", Color: []string{subheaderColor}, Pattern: 1},
	}); err != nil {
		return nil, err
	}
	if s.boldLabel, err = f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}}); err != nil {
		return nil, err
	}
	if s.header, err = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{headerColor}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center"},
		Border:    thin,
	}); err != nil {
		return nil, err
	}
	if s.bordered, err = f.NewStyle(&excelize.Style{Border: thin}); err != nil {
		return nil, err
	}
	if s.good, err = f.NewStyle(&excelize.Style{
		Fill:   excelize.Fill{Type: "pattern", Color: []string{goodColor}, Pattern: 1},
		Border: thin,
	}); err != nil {
		return nil, err
	}
	if s.warn, err = f.NewStyle(&excelize.Style{
		Fill:   excelize.Fill{Type: "pattern", Color: []string{warnColor}, Pattern: 1},
		Border: thin,
	}); err != nil {
		return nil, err
	}
	if s.bad, err = f.NewStyle(&excelize.Style{
		Fill:   excelize.Fill{Type: "pattern", Color: []string{badColor}, Pattern: 1},
		Border: thin,
	}); err != nil {
		return nil, err
	}
	if s.noEntry, err = f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Bold: true},
		Fill:   excelize.Fill{Type: "pattern", Color: []string{badColor}, Pattern: 1},
		Border: thin,
	}); err != nil {
		return nil, err
	}
	return s, nil
}

// ratingStyle picks the fill for a 0-5 rating. Higher is better.
func (s *styleSet) ratingStyle(value int) int {
	switch {
	case value >= 4:
		return s.good
	case value == 3:
		return s.warn
	default:
		return s.bad
	}
}

// medicationStyle colors the adherence label column. Dose values only
// take 1, 3 or 5; 0 means the question did not apply that day.
func (s *styleSet) medicationStyle(value int) int {
	switch value {
	case checkins.MedicationNoDoses:
		return s.bad
	case checkins.MedicationPartialDoses:
		return s.warn
	case checkins.MedicationAllDoses:
		return s.good
	default:
		return s.bordered
	}
}

// Build renders the three-sheet weekly report and returns the xlsx bytes.
func (b *ExcelWorkbookBuilder) Build(patient *patients.Patient, week checkins.Week, data checkins.WeekData) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	styles, err := registerStyles(f)
	if err != nil {
		return nil, fmt.Errorf("failed to register workbook styles: %w", err)
	}

	if err := f.SetSheetName("Sheet1", summarySheet); err != nil {
		return nil, err
	}
	if err := b.writeSummarySheet(f, styles, patient, week, data); err != nil {
		return nil, fmt.Errorf("failed to write summary sheet: %w", err)
	}
	if err := b.writeDailySheet(f, styles, week, data); err != nil {
		return nil, fmt.Errorf("failed to write daily sheet: %w", err)
	}
	if err := b.writeNotesSheet(f, styles, week, data); err != nil {
		return nil, fmt.Errorf("failed to write notes sheet: %w", err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to serialize workbook: %w", err)
	}

	b.logger.Info("Generated weekly report workbook for patient ", patient.ID, " week ", week.String())
	return buf.Bytes(), nil
}

func (b *ExcelWorkbookBuilder) writeSummarySheet(f *excelize.File, styles *styleSet, patient *patients.Patient, week checkins.Week, data checkins.WeekData) error {
	if err := f.SetCellValue(summarySheet, "A1", "WEEKLY THERAPY TRACKING REPORT"); err != nil {
		return err
	}
	if err := f.SetCellStyle(summarySheet, "A1", "A1", styles.title); err != nil {
		return err
	}
	if err := f.MergeCell(summarySheet, "A1", "F1"); err != nil {
		return err
	}

	if err := f.SetCellValue(summarySheet, "A3", "Patient Information"); err != nil {
		return err
	}
	if err := f.SetCellStyle(summarySheet, "A3", "A3", styles.subheader); err != nil {
		return err
	}
	if err := f.MergeCell(summarySheet, "A3", "B3"); err != nil {
		return err
	}

	infoRows := [][2]string{
		{"Patient ID:", patient.ID},
		{"Patient Name:", patient.Name},
		{"Therapist:", patient.TherapistName},
		{"Therapist Email:", patient.TherapistEmail},
		{"Week:", week.String()},
		{"Report Generated:", time.Now().Format("2006-01-02 15:04")},
	}
	for i, pair := range infoRows {
		row := 4 + i
		labelCell := fmt.Sprintf("A%d", row)
		if err := f.SetCellValue(summarySheet, labelCell, pair[0]); err != nil {
			return err
		}
		if err := f.SetCellValue(summarySheet, fmt.Sprintf("B%d", row), pair[1]); err != nil {
			return err
		}
		if err := f.SetCellStyle(summarySheet, labelCell, labelCell, styles.boldLabel); err != nil {
			return err
		}
	}

	if err := f.SetCellValue(summarySheet, "D3", "Weekly Statistics"); err != nil {
		return err
	}
	if err := f.SetCellStyle(summarySheet, "D3", "D3", styles.subheader); err != nil {
		return err
	}
	if err := f.MergeCell(summarySheet, "D3", "F3"); err != nil {
		return err
	}

	summary := checkins.Summarize(data)
	notApplicable := "N/A"
	avgEmotional, avgMedication, avgActivity := notApplicable, notApplicable, notApplicable
	if summary.CompletedDays > 0 {
		avgEmotional = fmt.Sprintf("%.2f/5", summary.AvgEmotional)
		avgMedication = fmt.Sprintf("%.2f/5", summary.AvgMedication)
		avgActivity = fmt.Sprintf("%.2f/5", summary.AvgActivity)
	}
	statsRows := [][2]string{
		{"Completion Rate:", fmt.Sprintf("%d/%d (%.1f%%)", summary.CompletedDays, summary.TotalDays, summary.CompletionPercent())},
		{"Avg Emotional State:", avgEmotional},
		{"Avg Medication Adherence:", avgMedication},
		{"Avg Physical Activity:", avgActivity},
	}
	for i, pair := range statsRows {
		row := 4 + i
		labelCell := fmt.Sprintf("D%d", row)
		if err := f.SetCellValue(summarySheet, labelCell, pair[0]); err != nil {
			return err
		}
		if err := f.SetCellValue(summarySheet, fmt.Sprintf("E%d", row), pair[1]); err != nil {
			return err
		}
		if err := f.SetCellStyle(summarySheet, labelCell, labelCell, styles.boldLabel); err != nil {
			return err
		}
	}

	return autoFitColumns(f, summarySheet)
}

func (b *ExcelWorkbookBuilder) writeDailySheet(f *excelize.File, styles *styleSet, week checkins.Week, data checkins.WeekData) error {
	if _, err := f.NewSheet(dailySheet); err != nil {
		return err
	}

	headers := []string{
		"Date", "Day", "Time", "Emotional State", "Emotional Notes",
		"Medication Adherence", "Medication Notes", "Physical Activity",
		"Activity Notes", "Check-in Status",
	}
	for col, header := range headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(dailySheet, cell, header); err != nil {
			return err
		}
		if err := f.SetCellStyle(dailySheet, cell, cell, styles.header); err != nil {
			return err
		}
	}

	for dayNum, date := range week.Dates() {
		row := dayNum + 2
		checkin := data[date]

		values := make([]interface{}, len(headers))
		values[0] = date
		values[1] = weekdayNames[dayNum]
		if checkin != nil {
			values[2] = checkin.Time
			values[3] = checkin.Emotional.Value
			values[4] = checkin.Emotional.Notes
			values[5] = checkins.MedicationLabel(checkin.Medication.Value)
			values[6] = checkin.Medication.Notes
			values[7] = checkin.Activity.Value
			values[8] = checkin.Activity.Notes
			values[9] = "Completed"
		} else {
			for col := 2; col < 9; col++ {
				values[col] = "-"
			}
			values[9] = "No Response"
		}

		for col, value := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(dailySheet, cell, value); err != nil {
				return err
			}
			if err := f.SetCellStyle(dailySheet, cell, cell, styles.bordered); err != nil {
				return err
			}
		}

		if checkin != nil {
			emotionalCell, _ := excelize.CoordinatesToCellName(4, row)
			if err := f.SetCellStyle(dailySheet, emotionalCell, emotionalCell, styles.ratingStyle(checkin.Emotional.Value)); err != nil {
				return err
			}
			medicationCell, _ := excelize.CoordinatesToCellName(6, row)
			if err := f.SetCellStyle(dailySheet, medicationCell, medicationCell, styles.medicationStyle(checkin.Medication.Value)); err != nil {
				return err
			}
			activityCell, _ := excelize.CoordinatesToCellName(8, row)
			if err := f.SetCellStyle(dailySheet, activityCell, activityCell, styles.ratingStyle(checkin.Activity.Value)); err != nil {
				return err
			}
		} else {
			statusCell, _ := excelize.CoordinatesToCellName(10, row)
			if err := f.SetCellStyle(dailySheet, statusCell, statusCell, styles.noEntry); err != nil {
				return err
			}
		}
	}

	return autoFitColumns(f, dailySheet)
}

func (b *ExcelWorkbookBuilder) writeNotesSheet(f *excelize.File, styles *styleSet, week checkins.Week, data checkins.WeekData) error {
	if _, err := f.NewSheet(notesSheet); err != nil {
		return err
	}

	headers := []string{"Date", "Category", "Rating", "Notes"}
	for col, header := range headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(notesSheet, cell, header); err != nil {
			return err
		}
		if err := f.SetCellStyle(notesSheet, cell, cell, styles.header); err != nil {
			return err
		}
	}

	row := 2
	writeNote := func(date, category string, rating interface{}, notes string) error {
		values := []interface{}{date, category, rating, notes}
		for col, value := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(notesSheet, cell, value); err != nil {
				return err
			}
			if err := f.SetCellStyle(notesSheet, cell, cell, styles.bordered); err != nil {
				return err
			}
		}
		row++
		return nil
	}

	for _, date := range week.Dates() {
		checkin := data[date]
		if checkin == nil {
			continue
		}
		if checkin.Emotional.Notes != "" {
			if err := writeNote(date, "Emotional", checkin.Emotional.Value, checkin.Emotional.Notes); err != nil {
				return err
			}
		}
		if checkin.Medication.Notes != "" {
			if err := writeNote(date, "Medication", checkins.MedicationLabel(checkin.Medication.Value), checkin.Medication.Notes); err != nil {
				return err
			}
		}
		if checkin.Activity.Notes != "" {
			if err := writeNote(date, "Physical Activity", checkin.Activity.Value, checkin.Activity.Notes); err != nil {
				return err
			}
		}
	}

	return autoFitColumns(f, notesSheet)
}

// autoFitColumns sizes each column to its longest cell value, capped so
// long note text does not blow up the layout.
func autoFitColumns(f *excelize.File, sheet string) error {
	cols, err := f.GetCols(sheet)
	if err != nil {
		return err
	}
	for i, col := range cols {
		maxLen := 0
		for _, cell := range col {
			if len(cell) > maxLen {
				maxLen = len(cell)
			}
		}
		width := float64(maxLen + 2)
		if width > maxColumnWidth {
			width = maxColumnWidth
		}
		name, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(sheet, name, name, width); err != nil {
			return err
		}
	}
	return nil
}
