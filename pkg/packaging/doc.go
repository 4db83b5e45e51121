// Package packaging implements the package workspace workflows run from
// the root of a packaging checkout: cloning an existing package repository
// and initialising a new one.
//
// Both workflows require the root to contain the shared "common"
// directory. Init additionally drives the scaffold generator found in
// common, which writes the initial package.yml for a source URL.
package packaging
