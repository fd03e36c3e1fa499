// Package models defines the budget domain types shared by the normalizer,
// the projection engine, the aggregator and the presentation layers.
package models
