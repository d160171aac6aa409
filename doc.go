// Package tracker provides the types and functions to track a personal
// investment portfolio: the holdings ledger, valuation and allocation
// arithmetic, price history analytics, and the reports built from them.
//
// The core functionalities include:
//   - Holdings Ledger: an ordered collection of positions with exact decimal
//     quantities and prices, validated at the boundary before any mutation.
//   - Valuation: current values, profit and loss, and allocation weights are
//     always derived from the latest known prices, never stored.
//   - Returns Analytics: daily, cumulative and annualized statistics over
//     close-price histories.
//   - Market Data: small provider interfaces (quotes, histories,
//     classifications) implemented by the yahoo and alphavantage packages, so
//     the portfolio itself never talks to the network.
//   - Reports: holding, summary, allocation, history and forecast reports,
//     rendered to markdown by the renderer package.
//   - Data Persistence: JSONL encoding of the portfolio, human-readable and
//     version-controllable.
//
// This package serves as the foundational logic for the `ptk` command-line
// tool, ensuring that all operations are consistent and based on a single
// source of truth.
package tracker
