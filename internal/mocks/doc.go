// Package mocks provides hand-rolled test doubles for the store and service
// interfaces, used by handler and middleware unit tests.
package mocks
