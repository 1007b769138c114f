package models

import "github.com/google/uuid"

// UUIDProvider returns a provider default that yields a fresh random UUID
// string on every resolution. Useful as an "_id" default for types whose
// instances mint their own identifiers:
//
//	reg.Declare(&models.Template{
//		Name:   "Track",
//		Fields: []models.FieldSpec{{Name: models.FieldID, Provider: models.UUIDProvider()}},
//	})
func UUIDProvider() Provider {
	return func(*Instance) any {
		return uuid.NewString()
	}
}
