package warroom

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"
)

// Funds is the reporting configuration record: the four cash scalars that
// enter the net worth formula. It lives in a small key-value table independent
// of the ledger.
type Funds struct {
	DomesticCash   decimal.Decimal // cash at the broker, domestic currency
	SettlementCash decimal.Decimal // sold but not yet settled, domestic currency
	ForeignCash    decimal.Decimal // cash in the foreign currency
	Liabilities    decimal.Decimal // outstanding loans, domestic currency
}

const (
	fundsKeyDomesticCash   = "domestic_cash"
	fundsKeySettlementCash = "settlement_cash"
	fundsKeyForeignCash    = "foreign_cash"
	fundsKeyLiabilities    = "liabilities"
)

// DecodeFunds reads the funds record from a two-column key,value CSV stream.
// Unknown keys are ignored, missing keys default to zero, malformed numbers
// degrade to zero like ledger cells.
func DecodeFunds(r io.Reader) (Funds, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	var f Funds
	records, err := cr.ReadAll()
	if err != nil {
		return f, fmt.Errorf("could not read funds csv: %w", err)
	}
	for _, record := range records {
		if len(record) < 2 {
			continue
		}
		value := sanitizeDecimal(record[1])
		switch strings.ToLower(strings.TrimSpace(record[0])) {
		case fundsKeyDomesticCash:
			f.DomesticCash = value
		case fundsKeySettlementCash:
			f.SettlementCash = value
		case fundsKeyForeignCash:
			f.ForeignCash = value
		case fundsKeyLiabilities:
			f.Liabilities = value
		}
	}
	return f, nil
}

// EncodeFunds writes the funds record as a key,value CSV stream.
func EncodeFunds(w io.Writer, f Funds) error {
	cw := csv.NewWriter(w)
	rows := [][]string{
		{fundsKeyDomesticCash, f.DomesticCash.String()},
		{fundsKeySettlementCash, f.SettlementCash.String()},
		{fundsKeyForeignCash, f.ForeignCash.String()},
		{fundsKeyLiabilities, f.Liabilities.String()},
	}
	for _, row := range rows {
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("could not write funds record: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}
