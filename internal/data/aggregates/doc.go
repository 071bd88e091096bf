// Package aggregates implements the track write boundary on top of gorm.
//
// Each write runs inside one transaction opened here; the table repos it calls
// never open their own.
package aggregates
