package handlers

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/epeers/overlapalert/internal/models"
)

// ParseEntriesCSV parses a portfolio CSV into a slice of PortfolioEntry.
// Required column: ticker
// Optional columns: amount (blank means unspecified), type (defaults to etf)
// Rows with an empty ticker are skipped.
func ParseEntriesCSV(r io.Reader) ([]models.PortfolioEntry, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}

	colIdx := make(map[string]int)
	for i, col := range header {
		colIdx[strings.ToLower(strings.TrimSpace(col))] = i
	}

	if _, ok := colIdx["ticker"]; !ok {
		return nil, fmt.Errorf("missing required column: ticker")
	}

	optionalCol := func(record []string, col string) (string, bool) {
		idx, ok := colIdx[col]
		if !ok || idx >= len(record) {
			return "", false
		}
		return strings.TrimSpace(record[idx]), true
	}

	var entries []models.PortfolioEntry
	rowNum := 1 // header is row 1, data starts at row 2
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("row %d: failed to read CSV record: %w", rowNum+1, err)
		}
		rowNum++

		ticker := strings.TrimSpace(record[colIdx["ticker"]])
		if ticker == "" {
			continue
		}

		entry := models.PortfolioEntry{
			Ticker: ticker,
			Type:   models.EntryTypeETF,
		}

		if amountStr, ok := optionalCol(record, "amount"); ok && amountStr != "" {
			amount, err := strconv.ParseFloat(amountStr, 64)
			if err != nil {
				return nil, fmt.Errorf("row %d: invalid amount %q", rowNum, amountStr)
			}
			entry.Amount = &amount
		}

		if typeStr, ok := optionalCol(record, "type"); ok && typeStr != "" {
			entryType := models.EntryType(typeStr)
			if _, valid := models.ValidEntryTypes[entryType]; !valid {
				return nil, fmt.Errorf("row %d: invalid type %q", rowNum, typeStr)
			}
			entry.Type = entryType
		}

		entries = append(entries, entry)
	}

	return entries, nil
}
