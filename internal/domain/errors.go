package domain

import "errors"

var (
	// ErrAddressAlreadyRegistered is returned when adding an address the user already has
	ErrAddressAlreadyRegistered = errors.New("address already registered")

	// ErrAddressNotRegistered is returned when removing an address the user does not have
	ErrAddressNotRegistered = errors.New("address not registered")

	// ErrNoAddresses is returned when an operation needs at least one registered address
	ErrNoAddresses = errors.New("no registered addresses")

	// ErrRoleNotFound is returned when a configured role does not exist in the guild
	ErrRoleNotFound = errors.New("role not found")

	// ErrBioNotVerified is returned when an address's profile bio does not prove control
	ErrBioNotVerified = errors.New("bio verification failed")

	// ErrAlreadyRunning is returned when another bot instance holds the lock file
	ErrAlreadyRunning = errors.New("another instance is already running")
)
