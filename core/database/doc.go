// Package database provides the optional MySQL row source.
//
// It manages the GORM connection lifecycle (DSN construction, pool settings,
// startup ping) and exposes FetchRows, which reads an entire table as
// string-valued rows plus its ordered column headers, the shape the
// reconciliation engine expects from any row source.
//
// The connection is optional: the service and CLI degrade to file and object
// storage sources when no database is reachable.
package database
