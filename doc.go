// Package spendings turns raw spreadsheet transaction rows into per-category
// spending reports.
//
// The pipeline is a pure fold over worksheet rows: every row is normalized
// into a Transaction, transactions are accumulated into a per-category and
// per-period Ledger, and the ledger is materialized into dense series over a
// trailing reporting window. Categories are then classified on those series
// and assembled into renderer-agnostic chart requests and summaries.
//
// The core functionalities include:
//   - Row Normalization: turning typed worksheet cells into Transactions
//     under a configurable sheet Schema.
//   - Ledger Building: folding transactions into signed per-period totals,
//     where an outcome adds to a period and an income subtracts from it.
//   - Windowing: selecting the trailing closed periods worth reporting on.
//   - Classification: flagging spending and regular-spending categories from
//     per-period statistics.
//   - Report Assembly: producing chart requests and worksheet summaries for
//     the renderer and the CLI.
//
// This package serves as the foundational logic for the `spd` command-line
// tool; reading .xlsx workbooks and drawing charts live in the xlsx and
// renderer subpackages.
package spendings
