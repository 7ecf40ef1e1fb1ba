// Package stocks provides the types and accounting engine to track a single
// investor's stock positions. It is designed to be local-first and
// auditable: the only source of truth is an append-only transaction log,
// everything else is derived from it.
//
// The core functionalities include:
//   - Transaction Recording: immutable buy and sell records, validated and
//     normalized at ingestion.
//   - Position Accounting: folding each security's transactions, in date
//     order, into the open quantity, the weighted-average cost basis and
//     the realized gain, with exact decimal arithmetic throughout.
//   - Portfolio Aggregation: a Book owning one position per security,
//     classifying them as active or closed and computing portfolio totals.
//   - Reporting: summaries optionally enriched with live market prices
//     through a pluggable quote provider; a failing quote degrades a single
//     position, never the report.
//   - Data Persistence: encoding and decoding the transaction log to and
//     from human-readable, version-controllable formats (JSONL, CSV).
//
// This package serves as the foundational logic for the `stk` command-line
// tool.
package stocks
