package handlers

import (
	"strings"
	"testing"

	"github.com/epeers/overlapalert/internal/models"
)

func TestParseEntriesCSV_FullColumns(t *testing.T) {
	csvData := `ticker,amount,type
VOO,10000,etf
AAPL,2500,stock
VTSAX,5000,mutualFund
`
	entries, err := ParseEntriesCSV(strings.NewReader(csvData))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}

	if entries[0].Ticker != "VOO" || entries[0].Type != models.EntryTypeETF {
		t.Errorf("unexpected first entry: %+v", entries[0])
	}
	if entries[0].Amount == nil || *entries[0].Amount != 10000 {
		t.Errorf("expected amount 10000, got %v", entries[0].Amount)
	}
	if entries[1].Type != models.EntryTypeStock {
		t.Errorf("expected stock type, got %s", entries[1].Type)
	}
	if entries[2].Type != models.EntryTypeMutualFund {
		t.Errorf("expected mutualFund type, got %s", entries[2].Type)
	}
}

func TestParseEntriesCSV_TickerOnly(t *testing.T) {
	csvData := `ticker
VOO
QQQ
`
	entries, err := ParseEntriesCSV(strings.NewReader(csvData))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	for _, e := range entries {
		if e.Amount != nil {
			t.Errorf("%s: expected no amount, got %v", e.Ticker, *e.Amount)
		}
		if e.Type != models.EntryTypeETF {
			t.Errorf("%s: expected default type etf, got %s", e.Ticker, e.Type)
		}
	}
}

func TestParseEntriesCSV_BlankAmountMeansUnspecified(t *testing.T) {
	csvData := `ticker,amount
VOO,10000
QQQ,
`
	entries, err := ParseEntriesCSV(strings.NewReader(csvData))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if entries[0].Amount == nil {
		t.Error("expected VOO amount to be set")
	}
	if entries[1].Amount != nil {
		t.Errorf("expected blank amount to stay nil, got %v", *entries[1].Amount)
	}
}

func TestParseEntriesCSV_SkipsEmptyTickerRows(t *testing.T) {
	csvData := `ticker,amount
VOO,10000
,5000
QQQ,2500
`
	entries, err := ParseEntriesCSV(strings.NewReader(csvData))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].Ticker != "VOO" || entries[1].Ticker != "QQQ" {
		t.Errorf("unexpected entries: %+v", entries)
	}
}

func TestParseEntriesCSV_MissingTickerColumn(t *testing.T) {
	csvData := `symbol,amount
VOO,10000
`
	if _, err := ParseEntriesCSV(strings.NewReader(csvData)); err == nil {
		t.Fatal("expected error for missing ticker column")
	}
}

func TestParseEntriesCSV_InvalidAmount(t *testing.T) {
	csvData := `ticker,amount
VOO,lots
`
	if _, err := ParseEntriesCSV(strings.NewReader(csvData)); err == nil {
		t.Fatal("expected error for non-numeric amount")
	}
}

func TestParseEntriesCSV_InvalidType(t *testing.T) {
	csvData := `ticker,type
VOO,bond
`
	if _, err := ParseEntriesCSV(strings.NewReader(csvData)); err == nil {
		t.Fatal("expected error for invalid type")
	}
}

func TestParseEntriesCSV_HeaderCaseInsensitive(t *testing.T) {
	csvData := `Ticker, Amount, Type
VOO,10000,etf
`
	entries, err := ParseEntriesCSV(strings.NewReader(csvData))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(entries) != 1 || entries[0].Ticker != "VOO" {
		t.Errorf("unexpected entries: %+v", entries)
	}
}
