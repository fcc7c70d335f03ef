package warroom

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// The ledger is persisted as CSV, the spreadsheet analog the rest of the
// tooling can open directly. Columns are addressed by header name, so column
// order in an existing file does not matter. Physical row order is the
// sequence order the replay relies on.

// ledgerHeader is the canonical column order for files this package writes.
var ledgerHeader = []string{
	"date", "side", "symbol", "name", "kind",
	"quantity", "price", "fee", "tax", "currency",
	"gross_override", "cost_override", "created_at",
}

const createdAtFormat = time.RFC3339

// sanitizeDecimal parses a numeric cell, tolerating thousand separators and
// surrounding space. Malformed cells degrade to zero: a corrupted or
// partially-written store must not abort the recompute.
func sanitizeDecimal(s string) decimal.Decimal {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	if s == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// DecodeLedger reads trade events from a CSV stream. The first row must be a
// header. Malformed numeric cells degrade to zero, but a row whose side or
// date cannot be mapped to the model is a mapping failure and aborts the
// decode: those are not recoverable by defaulting.
func DecodeLedger(r io.Reader) (*Ledger, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // tolerate ragged rows
	cr.TrimLeadingSpace = true

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("could not read ledger csv: %w", err)
	}

	ledger := NewLedger()
	if len(records) == 0 {
		return ledger, nil
	}

	col := headerIndex(records[0])
	for i, record := range records[1:] {
		cell := func(name string) string {
			j, ok := col[name]
			if !ok || j >= len(record) {
				return ""
			}
			return record[j]
		}

		side, err := ParseSide(cell("side"))
		if err != nil {
			return nil, fmt.Errorf("ledger row %d: %w", i+2, err)
		}
		day, err := ParseDate(cell("date"))
		if err != nil {
			return nil, fmt.Errorf("ledger row %d: %w", i+2, err)
		}
		kind, err := ParseKind(cell("kind"))
		if err != nil {
			kind = Stock // unknown kinds only weaken the aggregation policy
		}

		currency := strings.ToUpper(strings.TrimSpace(cell("currency")))
		symbol := Normalize(cell("symbol"))
		if currency == "" {
			currency = InferCurrency(symbol)
		}

		e := TradeEvent{
			Date:     day,
			Side:     side,
			Symbol:   symbol,
			Name:     strings.TrimSpace(cell("name")),
			Kind:     kind,
			Quantity: Q(sanitizeDecimal(cell("quantity"))),
			Price:    M(sanitizeDecimal(cell("price")), currency),
			Fee:      M(sanitizeDecimal(cell("fee")), currency),
			Tax:      M(sanitizeDecimal(cell("tax")), currency),
			Gross:    M(sanitizeDecimal(cell("gross_override")), currency),
			Cost:     M(sanitizeDecimal(cell("cost_override")), currency),
		}
		if at, err := time.Parse(createdAtFormat, cell("created_at")); err == nil {
			e.CreatedAt = at
		}
		ledger.Append(e)
	}
	return ledger, nil
}

func headerIndex(header []string) map[string]int {
	col := make(map[string]int, len(header))
	for i, name := range header {
		col[strings.ToLower(strings.TrimSpace(name))] = i
	}
	return col
}

// encodeRecord renders one event as a CSV record in ledgerHeader order.
func encodeRecord(e TradeEvent) []string {
	createdAt := ""
	if !e.CreatedAt.IsZero() {
		createdAt = e.CreatedAt.Format(createdAtFormat)
	}
	return []string{
		e.Date.String(),
		string(e.Side),
		e.Symbol,
		e.Name,
		string(e.Kind),
		e.Quantity.String(),
		e.Price.Decimal().String(),
		e.Fee.Decimal().String(),
		e.Tax.Decimal().String(),
		e.Currency(),
		zeroBlank(e.Gross.Decimal()),
		zeroBlank(e.Cost.Decimal()),
		createdAt,
	}
}

// zeroBlank renders zero optional amounts as empty cells.
func zeroBlank(d decimal.Decimal) string {
	if d.IsZero() {
		return ""
	}
	return d.String()
}

// EncodeTrade appends a single event to the writer, without a header. The
// store decides whether a header is needed.
func EncodeTrade(w io.Writer, e TradeEvent) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(encodeRecord(e)); err != nil {
		return fmt.Errorf("could not write trade: %w", err)
	}
	cw.Flush()
	return cw.Error()
}

// EncodeHeader writes the canonical ledger header.
func EncodeHeader(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(ledgerHeader); err != nil {
		return fmt.Errorf("could not write ledger header: %w", err)
	}
	cw.Flush()
	return cw.Error()
}

// EncodeLedger rewrites the whole ledger in canonical column order,
// preserving row order. Historical rows are never reordered or dropped.
func EncodeLedger(w io.Writer, ledger *Ledger) error {
	if err := EncodeHeader(w); err != nil {
		return err
	}
	for _, e := range ledger.Events() {
		if err := EncodeTrade(w, e); err != nil {
			return err
		}
	}
	return nil
}

// DecodeLots reads seed lots from a CSV stream with columns
// symbol,name,kind,quantity,cost_per_share,currency. Numeric cells are
// sanitized like ledger cells.
func DecodeLots(r io.Reader) ([]Lot, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("could not read lots csv: %w", err)
	}
	if len(records) == 0 {
		return nil, nil
	}

	col := headerIndex(records[0])
	lots := make([]Lot, 0, len(records)-1)
	for _, record := range records[1:] {
		cell := func(name string) string {
			j, ok := col[name]
			if !ok || j >= len(record) {
				return ""
			}
			return record[j]
		}
		symbol := Normalize(cell("symbol"))
		if symbol == "" {
			continue
		}
		currency := strings.ToUpper(strings.TrimSpace(cell("currency")))
		if currency == "" {
			currency = InferCurrency(symbol)
		}
		kind, err := ParseKind(cell("kind"))
		if err != nil {
			kind = Stock
		}
		lots = append(lots, Lot{
			Symbol:       symbol,
			Name:         strings.TrimSpace(cell("name")),
			Kind:         kind,
			Quantity:     Q(sanitizeDecimal(cell("quantity"))),
			CostPerShare: M(sanitizeDecimal(cell("cost_per_share")), currency),
		})
	}
	return lots, nil
}
