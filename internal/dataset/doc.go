// Package dataset defines the five generated tables and the fixed
// vocabulary they draw from.
//
// Entities are append-only: the generator creates each row exactly once
// and nothing mutates a row afterward. Identifiers are sequential from 1
// per table, so slices are indexable by id-1 for foreign key lookups.
package dataset
