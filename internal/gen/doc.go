// Package gen synthesizes the dataset.
//
// ARCHITECTURE:
//
// Generation runs in a strict stage order, and inside each stage draws
// happen in a fixed per-entity order:
//
//  1. Customers: first name, last name, country, signup date.
//  2. Products: category, base noun, suffix, price.
//  3. Orders, one at a time: customer, order date, status, item count,
//     product sample, per-item quantity, then the status-dependent
//     payment draws.
//
// The stage and draw order is part of the output contract: every draw
// advances the shared rng.Source, so reordering draws changes every byte
// downstream. NEVER reorder draws, add draws conditionally, or consume
// the source outside this package during generation.
//
// Consistency rules (hold by construction, see internal/check for the
// machine-checked form):
//   - Foreign keys only point backwards, to rows already generated.
//   - Item product references are distinct within an order.
//   - The charge payment equals the exact decimal sum of price*qty over
//     the order's items, rounded to two places.
//   - A refund adjustment negates its charge and is dated strictly later.
package gen
