// Package balance provides the types and functions to manage a personal
// ledger: a set of named accounts with decimal balances, a running grand
// total, and an append-only transaction history, persisted in a single YAML
// document. It is designed to be local-first and auditable, so users keep
// full control over their financial data.
//
// The core functionalities include:
//   - Exact Money Arithmetic: every monetary quantity is an exact base-10
//     Amount with two-decimal half-up rounding on output, so repeated
//     operations never drift by a cent.
//   - Ledger Engine: recording expenses, incomes and salaries against named
//     accounts, creating and deleting accounts, while maintaining the
//     invariant that the grand total always equals the sum of all balances.
//   - History: an immutable, chronological record of every committed
//     mutation with post-mutation snapshots.
//   - Data Persistence: a canonical YAML codec and a store with atomic
//     replace semantics and a single-generation backup, so a crash mid-write
//     never corrupts the previously saved document.
//
// This package serves as the foundational logic for the `bal` command-line
// tool, ensuring that all operations are consistent and based on a single
// source of truth.
package balance
