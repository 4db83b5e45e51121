// Package selector decides which package files in a directory a command
// acts on.
//
// # Pattern sets
//
// A selection is driven by two independent pattern sets built from package
// names:
//
//   - the remove set: one pattern {name}*.{suffix} per name, or the single
//     wildcard *.{suffix} when no names are given
//   - the keep set: built the same way, or empty when no names are given
//
// Patterns use shell glob syntax (*, ?, [...] and {a,b}). Every pattern is
// validated before the directory is read, so a malformed name fails the
// selection before anything on disk is touched.
//
// # Selection
//
// The directory is enumerated once. An entry is selected when it is not a
// directory, matches the remove set and does not match the keep set. The
// keep set always wins: a file named in both sets is never selected.
//
// Example, for a directory holding foo-1.0.eopkg, bar-2.0.eopkg and
// baz-1.0.eopkg:
//
//	Select(fsys, Request{Dir: dir, Remove: []string{"foo", "baz"}, Keep: []string{"baz"}})
//	// => [dir/foo-1.0.eopkg]
//
// Selection never mutates the directory; removal is the caller's job.
package selector
