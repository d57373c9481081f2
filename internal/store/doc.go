// Package store provides abstractions for data persistence: the storage
// interfaces the services depend on, the shared sentinel errors, and a
// transaction helper.
package store
