// Package models defines the core domain models for Sleepoints.
//
// # Models
//
//   - User: the account holding the running point balance
//   - SleepSession: one recorded night of sleep with its credited points
//   - Product: a catalog entry redeemable for points
//   - RedeemOrder: the immutable audit record of a balance debit
//
// The service runs with a single configured demo user (no accounts or
// auth); the user id is resolved from configuration at the transport
// boundary so that multi-user support is an extension, not a rewrite.
//
// # Design principles
//
//  1. **Balances are fixed-point**: all point amounts use points.Points
//     (integer tenths), so credits and debits are exact.
//  2. **Orders and sessions are immutable**: once created they are never
//     updated; the balance is an independently mutated running total, not
//     derived from history at read time.
//  3. **Avoid circular references**: relationships use ID strings, not
//     pointers.
package models
