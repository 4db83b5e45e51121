// Package filesystem provides the filesystem abstraction used by soltools.
//
// The OS implementation backs production runs; the afero implementation is
// used for in-memory tests and, wrapped read-only, for dry runs.
package filesystem
