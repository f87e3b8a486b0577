package enum

// CatalogKind identifies a settings catalog (accessories, models, trims,
// colors presented as pick lists in the UI).
type CatalogKind string

const (
	CatalogAccessory CatalogKind = "accessory"
	CatalogModel     CatalogKind = "model"
	CatalogTrim      CatalogKind = "trim"
	CatalogColor     CatalogKind = "color"
)

// Kinds returns every known catalog kind.
func Kinds() []CatalogKind {
	return []CatalogKind{CatalogAccessory, CatalogModel, CatalogTrim, CatalogColor}
}

// IsValid reports whether the kind names a known catalog.
func (k CatalogKind) IsValid() bool {
	switch k {
	case CatalogAccessory, CatalogModel, CatalogTrim, CatalogColor:
		return true
	}
	return false
}
