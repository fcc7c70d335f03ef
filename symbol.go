package warroom

import (
	"strings"
	"unicode"
)

// Symbols follow the Yahoo Finance convention: Taiwanese listings carry a
// market suffix (".TW" for TWSE, ".TWO" for TPEx), everything else is used
// verbatim (US tickers such as "VT" or "AAPL" have no suffix).

const (
	// SuffixTWSE marks a listing on the Taiwan Stock Exchange.
	SuffixTWSE = ".TW"
	// SuffixTPEx marks a listing on the Taipei Exchange (over-the-counter).
	SuffixTPEx = ".TWO"
)

// marketSuffixes is the allow-list of recognized market suffixes. A raw input
// already carrying one of these is considered canonical.
var marketSuffixes = []string{SuffixTPEx, SuffixTWSE}

// listedSymbols records the letter-suffixed Taiwanese listings (leveraged,
// inverse and bond ETFs) whose market cannot be told from the code alone.
// Bond ETFs ("B") trade on TPEx, leveraged/inverse ETFs ("L"/"R") on TWSE.
var listedSymbols = map[string]struct{}{
	"00632R.TW":  {},
	"00664R.TW":  {},
	"00676R.TW":  {},
	"00675L.TW":  {},
	"00631L.TW":  {},
	"00637L.TW":  {},
	"00679B.TWO": {},
	"00687B.TWO": {},
	"00719B.TWO": {},
	"00772B.TWO": {},
	"00865B.TWO": {},
	"00937B.TWO": {},
}

// Normalize maps a free-text instrument identifier to the canonical symbol
// used as the inventory key. It never fails: unparseable input yields an
// uppercased copy, empty input yields the empty string.
func Normalize(raw string) string {
	s := strings.ToUpper(strings.TrimSpace(raw))
	if s == "" {
		return ""
	}

	// Rule 1: already canonical.
	for _, suffix := range marketSuffixes {
		if strings.HasSuffix(s, suffix) {
			return s
		}
	}

	// Rule 2: bare numeric code, the common case for TWSE stocks ("2330").
	if isNumeric(s) {
		return s + SuffixTWSE
	}

	// Rule 3: numeric code with a single trailing letter ("00679B"): the
	// market is ambiguous, resolve against the listing table.
	if n := len(s); n >= 4 && n <= 6 && isNumeric(s[:n-1]) && unicode.IsLetter(rune(s[n-1])) {
		if _, ok := listedSymbols[s+SuffixTPEx]; ok {
			return s + SuffixTPEx
		}
		if _, ok := listedSymbols[s+SuffixTWSE]; ok {
			return s + SuffixTWSE
		}
		return s + SuffixTWSE
	}

	// Rule 4: anything else (US tickers, indexes, typos) is used as-is.
	return s
}

func isNumeric(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// InferCurrency guesses the trading currency of a canonical symbol from its
// market suffix. It is a heuristic: events may override it with an explicit
// currency.
func InferCurrency(symbol string) string {
	for _, suffix := range marketSuffixes {
		if strings.HasSuffix(symbol, suffix) {
			return "TWD"
		}
	}
	return "USD"
}
