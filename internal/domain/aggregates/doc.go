// Package aggregates defines the write boundaries of the track domain.
//
// Contracts here carry no persistence or transport detail. Each write method is
// one atomic unit; implementations live in internal/data/aggregates.
package aggregates
