// Package repository defines error types that are reused across multiple
// repositories. These sentinel values allow higher layers such as
// handlers to distinguish between different failure scenarios without
// inspecting driver-specific errors.
package repository

import "errors"

// ErrClientNotFound indicates the requested client row does not exist.
var ErrClientNotFound = errors.New("client not found")

// ErrPropertyNotFound indicates the requested property row does not exist.
var ErrPropertyNotFound = errors.New("property not found")

// ErrReservationNotFound indicates the requested reservation row does not exist.
var ErrReservationNotFound = errors.New("reservation not found")

// ErrEmailExists is returned when an insert or update would collide with
// another row's unique email (clients and users tables).
var ErrEmailExists = errors.New("email already exists")
