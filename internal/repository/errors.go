package repository

import "errors"

var (
	ErrAlertAlreadyCompleted = errors.New("alert already completed")
	ErrVehicleHasAlerts      = errors.New("vehicle has alerts")
)
