// Package repository implements the record-store interfaces against
// MySQL.  Record-kind sentinel errors live in the store package so
// that the engine can branch on them without importing this one.
package repository

import "errors"

// ErrEmailExists is returned by UserRepo.Create when the email is
// already registered.
var ErrEmailExists = errors.New("email already exists")
