package service

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"time"

	"golang-stock-insight/internal/entity"

	"github.com/xuri/excelize/v2"
)

// journalExportHeader is the fixed, documented column order for both export
// formats.
var journalExportHeader = []string{
	"ticker", "entry_price", "quantity", "opened_at", "status", "exit_price", "realized_pnl",
}

const journalSheetName = "Trades"

func journalExportRow(entry entity.JournalEntry) []string {
	exitPrice := ""
	if entry.ExitPrice != nil {
		exitPrice = strconv.FormatFloat(*entry.ExitPrice, 'f', 2, 64)
	}
	realizedPnL := ""
	if entry.RealizedPnL != nil {
		realizedPnL = strconv.FormatFloat(*entry.RealizedPnL, 'f', 2, 64)
	}
	return []string{
		entry.Ticker,
		strconv.FormatFloat(entry.EntryPrice, 'f', 2, 64),
		strconv.FormatInt(entry.Quantity, 10),
		entry.OpenedAt.UTC().Format(time.RFC3339),
		string(entry.Status),
		exitPrice,
		realizedPnL,
	}
}

func exportCSV(entries []entity.JournalEntry) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(journalExportHeader); err != nil {
		return nil, err
	}
	for _, entry := range entries {
		if err := w.Write(journalExportRow(entry)); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func exportXLSX(entries []entity.JournalEntry) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", journalSheetName); err != nil {
		return nil, err
	}

	header := make([]interface{}, len(journalExportHeader))
	for i, h := range journalExportHeader {
		header[i] = h
	}
	if err := f.SetSheetRow(journalSheetName, "A1", &header); err != nil {
		return nil, err
	}

	for i, entry := range entries {
		cells := journalExportRow(entry)
		row := make([]interface{}, len(cells))
		for j, c := range cells {
			row[j] = c
		}
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(journalSheetName, cell, &row); err != nil {
			return nil, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
