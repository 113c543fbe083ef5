package catalog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"unicode/utf8"
)

func TestSKUOrDefault(t *testing.T) {
	p := Product{SKU: "DVP-14SS2"}
	if got := p.SKUOrDefault(); got != "DVP-14SS2" {
		t.Errorf("SKUOrDefault = %q, want the real SKU", got)
	}

	p.SKU = ""
	if got := p.SKUOrDefault(); got != "S/N" {
		t.Errorf("SKUOrDefault = %q, want placeholder S/N", got)
	}
}

func TestShortDescriptionTruncatesOnRunes(t *testing.T) {
	p := Product{Description: strings.Repeat("ñ", 400)}

	got := p.ShortDescription()

	if utf8.RuneCountInString(got) != 300 {
		t.Errorf("ShortDescription length = %d runes, want 300", utf8.RuneCountInString(got))
	}
	if !utf8.ValidString(got) {
		t.Error("ShortDescription produced invalid UTF-8")
	}

	p.Description = "corta"
	if got = p.ShortDescription(); got != "corta" {
		t.Errorf("ShortDescription = %q, short descriptions must pass through", got)
	}
}

func TestLoadProducts(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.jsonl")

	content := `{"Nombre":"PLC Delta","Precio":3200,"SKU":"DVP-14SS2","URL_Web":"https://x/p1","URL_Imagen":"https://x/i1","Descripcion_HTML":"<p>PLC compacto</p>","Categoria_Final":"Controladores"}

{"Nombre":"Sensor","Precio":890,"URL_Web":"https://x/p2","URL_Imagen":"https://x/i2","Descripcion_HTML":"","Categoria_Final":"Sensores"}
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	products, err := loadProducts(path)
	if err != nil {
		t.Fatalf("loadProducts failed: %v", err)
	}

	if len(products) != 2 {
		t.Fatalf("got %d products, want 2 (blank lines skipped)", len(products))
	}
	if products[0].Name != "PLC Delta" || products[0].Price != 3200 {
		t.Errorf("first product = %+v", products[0])
	}
	if products[1].SKU != "" {
		t.Errorf("second product SKU = %q, want empty", products[1].SKU)
	}
}

func TestLoadProductsRejectsNegativePrice(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.jsonl")

	if err := os.WriteFile(path, []byte(`{"Nombre":"Roto","Precio":-5}`), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := loadProducts(path); err == nil {
		t.Error("loadProducts accepted a negative price")
	}
}

func TestBuildDocuments(t *testing.T) {
	products := []Product{
		{Name: "PLC Delta", Category: "Controladores", Description: "PLC compacto de 8 entradas"},
		{Name: "Sensor", Category: "Sensores", Description: ""},
	}

	docs, err := buildDocuments(products)
	if err != nil {
		t.Fatalf("buildDocuments failed: %v", err)
	}

	if len(docs) < len(products) {
		t.Fatalf("got %d documents for %d products", len(docs), len(products))
	}

	for _, doc := range docs {
		if doc.Metadata["product"] == "" {
			t.Errorf("document %s has no product ref", doc.ID)
		}
	}

	if !strings.Contains(docs[0].Content, "PLC Delta") {
		t.Errorf("first document content %q misses the product name", docs[0].Content)
	}
}
