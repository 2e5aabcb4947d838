package entity

// Category es la categoría fija de un producto.
type Category string

// Categorías del catálogo.
const (
	CategoryElectronics    Category = "Electronics"
	CategoryFurniture      Category = "Furniture"
	CategoryRawMaterials   Category = "Raw Materials"
	CategoryOfficeSupplies Category = "Office Supplies"
	CategoryApparel        Category = "Apparel"
	CategoryFoodBeverage   Category = "Food & Beverage"
)

// Categories lista las categorías en orden canónico.
var Categories = []Category{
	CategoryElectronics,
	CategoryFurniture,
	CategoryRawMaterials,
	CategoryOfficeSupplies,
	CategoryApparel,
	CategoryFoodBeverage,
}

// Valid indica si la categoría pertenece al conjunto fijo.
func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}
