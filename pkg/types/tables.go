package types

// Standard table names for Cupboard.GetTable, one per record type.
const (
	ChemicalsTable             = "chemicals"
	ChemicalInventoryTable     = "chemical_inventory"
	ComponentsTable            = "components"
	HazardsTable               = "hazards"
	ManufacturersTable         = "manufacturers"
	ManufacturerChemicalsTable = "manufacturer_chemicals"
	PictogramsTable            = "pictograms"
	PrecautionsTable           = "precautions"
)

// StandardTableNames lists all standard table names for enumeration.
var StandardTableNames = []string{
	ChemicalsTable,
	ChemicalInventoryTable,
	ComponentsTable,
	HazardsTable,
	ManufacturersTable,
	ManufacturerChemicalsTable,
	PictogramsTable,
	PrecautionsTable,
}

// RecordTypes returns the schema of every record type, in StandardTableNames
// order.
func RecordTypes() []RecordType {
	return []RecordType{
		ChemicalSchema,
		InventorySchema,
		ComponentSchema,
		HazardSchema,
		ManufacturerSchema,
		ManufacturerChemicalSchema,
		PictogramSchema,
		PrecautionSchema,
	}
}

// LookupRecordType returns the record type stored in the named table.
// Returns ErrTableNotFound if the name is not a standard table.
func LookupRecordType(name string) (RecordType, error) {
	for _, rt := range RecordTypes() {
		if rt.Name() == name {
			return rt, nil
		}
	}
	return nil, ErrTableNotFound
}
