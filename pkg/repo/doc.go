// Package repo manages the local package repository: removing stale
// package files, copying freshly built ones in, and running the indexer.
//
// Every mutating operation accepts a DryRun flag. In a dry run the
// filesystem is wrapped read-only and the indexer is never invoked, so the
// repository's entry set cannot change.
package repo
