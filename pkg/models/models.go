package models

// GetAllModels returns all models for GORM AutoMigrate
func GetAllModels() []interface{} {
	return []interface{}{
		// Catalog models
		&Product{},
		&AddonItem{},

		// Scheduling models
		&HolidayClosure{},

		// Conversation models
		&CustomerMemory{},
		&Session{},
	}
}
