// Package types contains the interfaces shared between the root lotto package
// and its subpackages.
//
// Keeping these definitions in a leaf package lets internal packages (logging,
// metrics) and the relay subpackage depend on them without importing the root
// package, which would create an import cycle. The root package re-exports
// them via type aliases for convenience.
package types
