// Package queries contains read operations for retrieving system state.
// Order queries return rehydrated aggregates through small reader
// interfaces; the seller's pending request list is a read model joined
// directly in SQL.
package queries
