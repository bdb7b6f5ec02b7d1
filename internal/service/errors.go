package service

import "errors"

var (
	ErrVehicleNotFound    = errors.New("referenced vehicle does not exist")
	ErrVehicleUnavailable = errors.New("vehicle is not available for booking")
	ErrBookingNotFound    = errors.New("booking not found")
	ErrInvalidOverride    = errors.New("price override must be a non-negative number")
	ErrInvalidStatus      = errors.New("unknown booking status")
	ErrInvalidCredentials = errors.New("invalid email or password")
)
