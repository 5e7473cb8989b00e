// Package utils provides small conversion helpers shared across the service.
//
// The main entry point is ToString, which normalizes the loosely-typed values
// scanned from database rows into the string fields the reconciliation engine
// operates on.
package utils
