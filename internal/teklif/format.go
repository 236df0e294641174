package teklif

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var trPrinter = message.NewPrinter(language.Turkish)

// FormatTL tutarı Türkçe biçimde yazar: 1.234,56 TL
func FormatTL(d decimal.Decimal) string {
	return trPrinter.Sprintf("%.2f", d.Round(2).InexactFloat64()) + " TL"
}

// Formatted: etiket -> biçimlenmiş tutar, ekrandaki sırayla
func (r Result) Formatted() []FormattedRow {
	rows := r.Rows()
	out := make([]FormattedRow, 0, len(rows))
	for _, row := range rows {
		out = append(out, FormattedRow{Label: row.Label, Value: FormatTL(row.Value)})
	}
	return out
}

type FormattedRow struct {
	Label string `json:"label"`
	Value string `json:"value"`
}
