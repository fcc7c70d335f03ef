// Package warroom provides the types and functions behind a personal
// net-worth dashboard for a mixed Taiwanese and US portfolio. It is
// local-first: the trade log and the funds record live in plain CSV
// files the user can read, diff and version.
//
// The core functionalities include:
//   - Trade Ledger: an append-only, ordered log of buy and sell events.
//     Events are never edited or reordered; corrections are new events.
//   - Cost-Basis Replay: a pure engine that folds the ledger into
//     per-instrument positions using moving-average costing, realizing
//     profit on every sale and annotating each trade along the way.
//   - Symbol Normalization: free-text instrument codes resolve to the
//     Yahoo Finance convention ("2330" to "2330.TW", bond ETF codes to
//     the ".TWO" over-the-counter suffix).
//   - Snapshot Materialization: joining a replayed book with live prices,
//     an exchange rate and the cash record into a holdings table and a
//     net worth figure.
//
// This package serves as the foundational logic for the `wrs` command
// line tool, ensuring every figure is recomputed from the ledger, the
// single source of truth.
package warroom
