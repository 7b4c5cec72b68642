// Package types defines the scalar field-mapping contract for laboratory
// chemical records and the Cupboard and Table storage interfaces.
//
// Every record type (Chemical, ChemicalInventory, Component, Hazard,
// Manufacturer, ManufacturerChemical, Pictogram, Precaution) pairs a closed
// field enumeration with a Schema. The schema converts a record to an ordered
// []Value and back, so storage and spreadsheet collaborators can handle any
// record type without knowing its shape:
//
//	c, err := types.ChemicalFromFields(values) // construct
//	values = c.Fields()                        // decompose
//	names := types.ChemicalFieldNames()        // enumerate
//	v := c.Field(types.ChemicalSignalWord)     // read one field
package types
