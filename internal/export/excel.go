package export

import (
	"fmt"
	"sort"
	"time"

	"github.com/epeers/overlapalert/internal/models"
	"github.com/xuri/excelize/v2"
)

// ExportData bundles everything the workbook needs: the raw input entries,
// the analysis result, and the run timestamp. TotalValue is 0 in
// equal-weight mode.
type ExportData struct {
	Entries    []models.PortfolioEntry
	Result     *models.AnalysisResult
	AnalyzedAt time.Time
	TotalValue float64
}

// Filename returns the download name for an export generated at t.
func Filename(t time.Time) string {
	return fmt.Sprintf("overlapalert-%s.xlsx", t.Format("2006-01-02"))
}

// BuildWorkbook renders the analysis into a six-sheet workbook: Summary,
// Holdings, Sectors, Sources, Input, and Warnings. Weight cells hold
// fractions (0-1) formatted for percentage display, not pre-multiplied.
func BuildWorkbook(data ExportData) (*excelize.File, error) {
	f := excelize.NewFile()

	pctFmt := "0.0%"
	pctStyle, err := f.NewStyle(&excelize.Style{CustomNumFmt: &pctFmt})
	if err != nil {
		return nil, fmt.Errorf("failed to create percent style: %w", err)
	}
	moneyFmt := "#,##0.00"
	moneyStyle, err := f.NewStyle(&excelize.Style{CustomNumFmt: &moneyFmt})
	if err != nil {
		return nil, fmt.Errorf("failed to create money style: %w", err)
	}
	oneDecFmt := "0.0"
	oneDecStyle, err := f.NewStyle(&excelize.Style{CustomNumFmt: &oneDecFmt})
	if err != nil {
		return nil, fmt.Errorf("failed to create decimal style: %w", err)
	}

	if err := buildSummarySheet(f, data, pctStyle, moneyStyle); err != nil {
		return nil, err
	}
	if err := buildHoldingsSheet(f, data, pctStyle, moneyStyle); err != nil {
		return nil, err
	}
	if err := buildSectorsSheet(f, data, pctStyle, moneyStyle); err != nil {
		return nil, err
	}
	if err := buildSourcesSheet(f, data, pctStyle); err != nil {
		return nil, err
	}
	if err := buildInputSheet(f, data, moneyStyle); err != nil {
		return nil, err
	}
	if err := buildWarningsSheet(f, data, oneDecStyle); err != nil {
		return nil, err
	}

	return f, nil
}

func buildSummarySheet(f *excelize.File, data ExportData, pctStyle, moneyStyle int) error {
	const sheet = "Summary"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return err
	}

	res := data.Result
	row := 1
	setRow := func(values ...interface{}) {
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row)
			f.SetCellValue(sheet, cell, v)
		}
		row++
	}

	setRow("OverlapAlert Analysis")
	setRow("Generated", data.AnalyzedAt.Format(time.RFC3339))
	setRow()
	setRow("Portfolio Overview")
	setRow("Total Positions", len(data.Entries))
	if data.TotalValue > 0 {
		setRow("Total Value", data.TotalValue)
		cell, _ := excelize.CoordinatesToCellName(2, row-1)
		f.SetCellStyle(sheet, cell, cell, moneyStyle)
	} else {
		setRow("Total Value", "Not specified")
	}
	setRow("Unique Holdings", len(res.Exposures))
	setRow()

	setRow("Top 5 Holdings", "Weight")
	for i := 0; i < 5; i++ {
		if i < len(res.Exposures) {
			setRow(res.Exposures[i].Ticker, res.Exposures[i].TotalWeight)
			cell, _ := excelize.CoordinatesToCellName(2, row-1)
			f.SetCellStyle(sheet, cell, cell, pctStyle)
		} else {
			setRow("", "")
		}
	}
	setRow()

	setRow("Top 3 Sectors", "Weight")
	for i := 0; i < 3; i++ {
		if i < len(res.SectorExposures) {
			setRow(res.SectorExposures[i].Sector, res.SectorExposures[i].Weight)
			cell, _ := excelize.CoordinatesToCellName(2, row-1)
			f.SetCellStyle(sheet, cell, cell, pctStyle)
		} else {
			setRow("", "")
		}
	}
	setRow()

	setRow("Warnings", "Severity")
	if len(res.Warnings) > 0 {
		for _, w := range res.Warnings {
			setRow(w.Message, string(w.Severity))
		}
	} else {
		setRow("No major concentration warnings detected", "")
	}

	f.SetColWidth(sheet, "A", "A", 40)
	f.SetColWidth(sheet, "B", "B", 15)
	return nil
}

func buildHoldingsSheet(f *excelize.File, data ExportData, pctStyle, moneyStyle int) error {
	const sheet = "Holdings"
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}

	headers := []interface{}{"Ticker", "Name", "Weight (%)", "Dollar Exposure", "Sources", "Source Count"}
	if err := f.SetSheetRow(sheet, "A1", &headers); err != nil {
		return err
	}

	for i, exp := range data.Result.Exposures {
		row := i + 2
		sources := make([]string, 0, len(exp.Sources))
		for _, s := range exp.Sources {
			sources = append(sources, s.Fund)
		}
		values := []interface{}{exp.Ticker, exp.Name, exp.TotalWeight, nil, joinComma(sources), len(exp.Sources)}
		if exp.DollarExposure != nil {
			values[3] = *exp.DollarExposure
		} else {
			values[3] = ""
		}
		cell, _ := excelize.CoordinatesToCellName(1, row)
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return err
		}

		weightCell, _ := excelize.CoordinatesToCellName(3, row)
		f.SetCellStyle(sheet, weightCell, weightCell, pctStyle)
		if exp.DollarExposure != nil {
			dollarCell, _ := excelize.CoordinatesToCellName(4, row)
			f.SetCellStyle(sheet, dollarCell, dollarCell, moneyStyle)
		}
	}

	f.SetColWidth(sheet, "A", "A", 10)
	f.SetColWidth(sheet, "B", "B", 35)
	f.SetColWidth(sheet, "C", "C", 12)
	f.SetColWidth(sheet, "D", "D", 15)
	f.SetColWidth(sheet, "E", "E", 25)
	f.SetColWidth(sheet, "F", "F", 12)
	return nil
}

func buildSectorsSheet(f *excelize.File, data ExportData, pctStyle, moneyStyle int) error {
	const sheet = "Sectors"
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}

	headers := []interface{}{"Sector", "Weight (%)", "Dollar Exposure"}
	if err := f.SetSheetRow(sheet, "A1", &headers); err != nil {
		return err
	}

	for i, sec := range data.Result.SectorExposures {
		row := i + 2
		values := []interface{}{sec.Sector, sec.Weight, ""}
		if sec.DollarExposure != nil {
			values[2] = *sec.DollarExposure
		}
		cell, _ := excelize.CoordinatesToCellName(1, row)
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return err
		}

		weightCell, _ := excelize.CoordinatesToCellName(2, row)
		f.SetCellStyle(sheet, weightCell, weightCell, pctStyle)
		if sec.DollarExposure != nil {
			dollarCell, _ := excelize.CoordinatesToCellName(3, row)
			f.SetCellStyle(sheet, dollarCell, dollarCell, moneyStyle)
		}
	}

	f.SetColWidth(sheet, "A", "A", 25)
	f.SetColWidth(sheet, "B", "B", 12)
	f.SetColWidth(sheet, "C", "C", 15)
	return nil
}

type sourceRow struct {
	holding      string
	fund         string
	contribution float64
	sourceType   models.EntryType
}

func buildSourcesSheet(f *excelize.File, data ExportData, pctStyle int) error {
	const sheet = "Sources"
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}

	headers := []interface{}{"Holding", "Source Fund", "Contribution (%)", "Source Type"}
	if err := f.SetSheetRow(sheet, "A1", &headers); err != nil {
		return err
	}

	// Source funds carry no type of their own; recover it from the input
	// entries, defaulting to etf.
	typeByTicker := make(map[string]models.EntryType, len(data.Entries))
	for _, e := range data.Entries {
		typeByTicker[e.NormalizedTicker()] = e.Type
	}

	var rows []sourceRow
	for _, exp := range data.Result.Exposures {
		for _, src := range exp.Sources {
			srcType, ok := typeByTicker[src.Fund]
			if !ok {
				srcType = models.EntryTypeETF
			}
			rows = append(rows, sourceRow{
				holding:      exp.Ticker,
				fund:         src.Fund,
				contribution: src.Contribution,
				sourceType:   srcType,
			})
		}
	}

	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].holding != rows[j].holding {
			return rows[i].holding < rows[j].holding
		}
		return rows[i].contribution > rows[j].contribution
	})

	for i, r := range rows {
		row := i + 2
		values := []interface{}{r.holding, r.fund, r.contribution, string(r.sourceType)}
		cell, _ := excelize.CoordinatesToCellName(1, row)
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return err
		}
		contribCell, _ := excelize.CoordinatesToCellName(3, row)
		f.SetCellStyle(sheet, contribCell, contribCell, pctStyle)
	}

	f.SetColWidth(sheet, "A", "B", 10)
	f.SetColWidth(sheet, "C", "C", 15)
	f.SetColWidth(sheet, "D", "D", 10)
	return nil
}

func buildInputSheet(f *excelize.File, data ExportData, moneyStyle int) error {
	const sheet = "Input"
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}

	headers := []interface{}{"Ticker", "Amount", "Type"}
	if err := f.SetSheetRow(sheet, "A1", &headers); err != nil {
		return err
	}

	for i, e := range data.Entries {
		row := i + 2
		values := []interface{}{e.Ticker, "", string(e.Type)}
		if e.Amount != nil {
			values[1] = *e.Amount
		}
		cell, _ := excelize.CoordinatesToCellName(1, row)
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return err
		}
		if e.Amount != nil {
			amtCell, _ := excelize.CoordinatesToCellName(2, row)
			f.SetCellStyle(sheet, amtCell, amtCell, moneyStyle)
		}
	}

	f.SetColWidth(sheet, "A", "A", 10)
	f.SetColWidth(sheet, "B", "B", 15)
	f.SetColWidth(sheet, "C", "C", 10)
	return nil
}

func buildWarningsSheet(f *excelize.File, data ExportData, oneDecStyle int) error {
	const sheet = "Warnings"
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}

	headers := []interface{}{"Warning", "Severity", "Ticker", "Percentage"}
	if err := f.SetSheetRow(sheet, "A1", &headers); err != nil {
		return err
	}

	if len(data.Result.Warnings) == 0 {
		if err := f.SetCellValue(sheet, "A2", "No concentration warnings detected"); err != nil {
			return err
		}
	} else {
		for i, w := range data.Result.Warnings {
			row := i + 2
			values := []interface{}{w.Message, string(w.Severity), w.Ticker, w.Percentage}
			cell, _ := excelize.CoordinatesToCellName(1, row)
			if err := f.SetSheetRow(sheet, cell, &values); err != nil {
				return err
			}
			pctCell, _ := excelize.CoordinatesToCellName(4, row)
			f.SetCellStyle(sheet, pctCell, pctCell, oneDecStyle)
		}
	}

	f.SetColWidth(sheet, "A", "A", 50)
	f.SetColWidth(sheet, "B", "D", 10)
	return nil
}

func joinComma(parts []string) string {
	out := ""
	for i, p := range parts {
		if i > 0 {
			out += ", "
		}
		out += p
	}
	return out
}
