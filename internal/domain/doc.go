// Package domain contains the entities of the library catalog: users and
// books, along with their validation rules and sentinel errors.
package domain
