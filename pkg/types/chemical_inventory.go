package types

// ChemicalInventory is one lot of a chemical on hand. Dates, sizes and the
// remaining percentage are free text interpreted by callers.
type ChemicalInventory struct {
	LotNumber        string
	PurchaseDate     string
	ArrivalDate      string
	OpenDate         string
	ExpirationDate   string
	DisposalDate     string
	RemovalDate      string
	DisposalMethod   string
	Active           bool
	ContainerType    string
	ContainerSize    string
	Unit             string
	PercentRemaining string
}

// InventoryField identifies a field of ChemicalInventory.
type InventoryField int

// ChemicalInventory fields in canonical order.
const (
	InventoryLotNumber InventoryField = iota
	InventoryPurchaseDate
	InventoryArrivalDate
	InventoryOpenDate
	InventoryExpirationDate
	InventoryDisposalDate
	InventoryRemovalDate
	InventoryDisposalMethod
	InventoryActive
	InventoryContainerType
	InventoryContainerSize
	InventoryUnit
	InventoryPercentRemaining
)

var inventoryLabels = []string{
	"Lot Number",
	"Purchase Date",
	"Arrival Date",
	"Open Date",
	"Expiration Date",
	"Disposal Date",
	"Removal Date",
	"Disposal Method",
	"Active",
	"Container Type",
	"Container Size",
	"Unit",
	"Percent Remaining",
}

// Label implements Labeler.
func (f InventoryField) Label() string { return enumLabel(inventoryLabels, "InventoryField", int(f)) }

func (f InventoryField) String() string { return f.Label() }

// InventorySchema maps ChemicalInventory to and from scalar values.
var InventorySchema = NewSchema(ChemicalInventoryTable,
	TextColumn(InventoryLotNumber, func(c *ChemicalInventory) *string { return &c.LotNumber }),
	TextColumn(InventoryPurchaseDate, func(c *ChemicalInventory) *string { return &c.PurchaseDate }),
	TextColumn(InventoryArrivalDate, func(c *ChemicalInventory) *string { return &c.ArrivalDate }),
	TextColumn(InventoryOpenDate, func(c *ChemicalInventory) *string { return &c.OpenDate }),
	TextColumn(InventoryExpirationDate, func(c *ChemicalInventory) *string { return &c.ExpirationDate }),
	TextColumn(InventoryDisposalDate, func(c *ChemicalInventory) *string { return &c.DisposalDate }),
	TextColumn(InventoryRemovalDate, func(c *ChemicalInventory) *string { return &c.RemovalDate }),
	TextColumn(InventoryDisposalMethod, func(c *ChemicalInventory) *string { return &c.DisposalMethod }),
	FlagColumn(InventoryActive, func(c *ChemicalInventory) *bool { return &c.Active }),
	TextColumn(InventoryContainerType, func(c *ChemicalInventory) *string { return &c.ContainerType }),
	TextColumn(InventoryContainerSize, func(c *ChemicalInventory) *string { return &c.ContainerSize }),
	TextColumn(InventoryUnit, func(c *ChemicalInventory) *string { return &c.Unit }),
	TextColumn(InventoryPercentRemaining, func(c *ChemicalInventory) *string { return &c.PercentRemaining }),
)

var (
	_ Entry[InventoryField]                        = (*ChemicalInventory)(nil)
	_ EntryType[InventoryField, ChemicalInventory] = InventorySchema
)

// ChemicalInventoryFromFields constructs a ChemicalInventory from values in schema order.
func ChemicalInventoryFromFields(values []Value) (*ChemicalInventory, error) {
	return InventorySchema.FromFields(values)
}

// InventoryFieldNames returns the ChemicalInventory fields in schema order.
func InventoryFieldNames() []InventoryField { return InventorySchema.FieldNames() }

// ParseInventoryField returns the field whose label is label.
func ParseInventoryField(label string) (InventoryField, error) { return InventorySchema.Parse(label) }

// Fields implements Entry.
func (c *ChemicalInventory) Fields() []Value { return InventorySchema.Fields(c) }

// Field implements Entry.
func (c *ChemicalInventory) Field(name InventoryField) Value { return InventorySchema.Field(c, name) }
