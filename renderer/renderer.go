// Package renderer turns snapshots and ledgers into markdown for the
// terminal.
package renderer

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/hsiangz/warroom"
)

// HoldingsMarkdown renders the open positions of a snapshot as a table.
func HoldingsMarkdown(s *warroom.Snapshot) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Holdings\n\n")
	if len(s.Holdings) == 0 {
		fmt.Fprintln(&b, "No open positions.")
		return b.String()
	}
	fmt.Fprintln(&b, "| Symbol | Name | Kind | Shares | Avg Cost | Price | Market Value |")
	fmt.Fprintln(&b, "|:---|:---|:---|---:|---:|---:|---:|")
	for _, h := range s.Holdings {
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s | %s | %s |\n",
			h.Symbol,
			h.Name,
			h.Kind,
			h.Shares,
			h.AverageCost,
			h.Price,
			h.MarketValue,
		)
	}
	return b.String()
}

// SummaryMarkdown renders the net worth breakdown of a snapshot.
func SummaryMarkdown(s *warroom.Snapshot) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Summary\n\n")
	fmt.Fprintln(&b, "| Item | Amount |")
	fmt.Fprintln(&b, "|:---|---:|")
	fmt.Fprintf(&b, "| Domestic Cash | %s |\n", money(s.Funds.DomesticCash, s.ReportingCurrency))
	fmt.Fprintf(&b, "| Settlement Cash | %s |\n", money(s.Funds.SettlementCash, s.ReportingCurrency))
	fmt.Fprintf(&b, "| Foreign Cash (at %s) | %s |\n", s.FxRate, money(s.Funds.ForeignCash.Mul(s.FxRate), s.ReportingCurrency))
	fmt.Fprintf(&b, "| Market Value | %s |\n", s.TotalMarketValue)
	fmt.Fprintf(&b, "| Liabilities | -%s |\n", money(s.Funds.Liabilities, s.ReportingCurrency))
	fmt.Fprintf(&b, "| **Net Worth** | **%s** |\n", s.NetWorth)
	fmt.Fprintf(&b, "\nRealized P&L: %s\n", s.TotalRealized.SignedString())
	return b.String()
}

// TransactionsMarkdown renders annotated trades, most useful after a
// replay over the full ledger.
func TransactionsMarkdown(annotations []warroom.Annotation) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Transactions\n\n")
	if len(annotations) == 0 {
		fmt.Fprintln(&b, "No trades recorded.")
		return b.String()
	}
	fmt.Fprintln(&b, "| Date | Side | Symbol | Gross | Net | Avg Cost | Realized P&L | ROI |")
	fmt.Fprintln(&b, "|:---|:---|:---|---:|---:|---:|---:|---:|")
	for _, a := range annotations {
		pnl, roi := " ", " "
		if a.Realized {
			pnl = a.RealizedPnL.SignedString()
			roi = a.ROI.SignedString()
		}
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s | %s | %s | %s |\n",
			a.Date,
			a.Side,
			a.Symbol,
			a.Gross,
			a.NetReceivable,
			a.AvgCostBefore,
			pnl,
			roi,
		)
	}
	return b.String()
}

// FundsMarkdown renders the cash and liability record.
func FundsMarkdown(f warroom.Funds, currency, foreign string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Funds\n\n")
	fmt.Fprintln(&b, "| Item | Amount |")
	fmt.Fprintln(&b, "|:---|---:|")
	fmt.Fprintf(&b, "| Domestic Cash | %s |\n", money(f.DomesticCash, currency))
	fmt.Fprintf(&b, "| Settlement Cash | %s |\n", money(f.SettlementCash, currency))
	fmt.Fprintf(&b, "| Foreign Cash | %s |\n", money(f.ForeignCash, foreign))
	fmt.Fprintf(&b, "| Liabilities | %s |\n", money(f.Liabilities, currency))
	return b.String()
}

func money(v decimal.Decimal, currency string) warroom.Money {
	return warroom.M(v, currency)
}
