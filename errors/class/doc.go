// Package class contains the error classifications used by the trackable packages.
// The classes are divided into following Majors:
//
// - Registry - tracking code registry issues
// - Template - placeholder parsing and rendering
// - Catalog - catalog declarations and catalog files
// - Config - configuration and environment
// - Common - logger and other shared issues
// - Domain - errors raised from the error definitions
//
package class
