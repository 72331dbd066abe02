package model

// ManufacturerMetadata describes the registered owner of a sysex
// manufacturer ID.
type ManufacturerMetadata struct {
	Name  string
	Group string
}
