// Package types defines the Store interface, entity types, the seed
// snapshot format, and standard error values for the Travnik herbal
// catalog storage system.
package types
