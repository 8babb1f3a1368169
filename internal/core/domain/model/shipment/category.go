package shipment

// Category classifies the cargo carried by a shipment.
// Unknown categories are accepted and priced with the default multiplier,
// so new categories can appear on the wire without breaking creation.
type Category string

const (
	CategoryConstruction Category = "construction-materials"
	CategoryFurniture    Category = "furniture"
	CategoryAppliances   Category = "appliances"
	CategoryOther        Category = "other"
)

// OrDefault returns the category itself, or CategoryOther when empty.
func (c Category) OrDefault() Category {
	if c == "" {
		return CategoryOther
	}
	return c
}

func (c Category) String() string {
	return string(c)
}
