package catalog

import "unicode/utf8"

// Field names follow the store's export columns, so a catalog dump can be
// fed in without remapping.
type Product struct {
	Name        string  `json:"Nombre"`
	Price       float64 `json:"Precio"`
	SKU         string  `json:"SKU,omitempty"`
	URL         string  `json:"URL_Web"`
	ImageURL    string  `json:"URL_Imagen"`
	Description string  `json:"Descripcion_HTML"`
	Category    string  `json:"Categoria_Final"`
}

const (
	defaultSKU     = "S/N"
	descriptionCap = 300
)

func (p Product) SKUOrDefault() string {
	if p.SKU == "" {
		return defaultSKU
	}

	return p.SKU
}

// ShortDescription bounds the (possibly HTML-bearing) description to a
// prompt-safe prefix, cutting on runes, not bytes.
func (p Product) ShortDescription() string {
	if utf8.RuneCountInString(p.Description) <= descriptionCap {
		return p.Description
	}

	runes := []rune(p.Description)

	return string(runes[:descriptionCap])
}
