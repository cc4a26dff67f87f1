package model

// All lists every persisted model in dependency order.
func All() []interface{} {
	return []interface{}{
		&Vehicle{},
		&Driver{},
		&Tire{},
		&VehicleTire{},
		&Maintenance{},
		&Review{},
		&Fuel{},
		&Alert{},
	}
}
