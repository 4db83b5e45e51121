// Package testutil provides mocks and fixtures shared by soltools tests.
//
//   - MockRunner and MockVCSClient are testify mocks for the external
//     collaborators.
//   - NewPackageFS builds an in-memory filesystem holding package files.
package testutil
