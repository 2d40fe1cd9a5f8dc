// Package types defines the Vault and Table interfaces, the card and
// collection entity types, and standard error values for the binder
// system. Entities are plain value snapshots: nothing in this package
// talks to storage, and no field is lazily loaded.
package types
