package catalog

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// loadProducts reads the JSONL catalog dump, one product per line.
func loadProducts(path string) ([]Product, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog file: %w", err)
	}
	defer file.Close()

	var products []Product

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 1024*1024), 1024*1024)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		var product Product
		if err = json.Unmarshal([]byte(line), &product); err != nil {
			return nil, fmt.Errorf("failed to parse JSON line: %w", err)
		}

		if product.Price < 0 {
			return nil, fmt.Errorf("product %q has negative price", product.Name)
		}

		products = append(products, product)
	}

	if err = scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading catalog file: %w", err)
	}

	return products, nil
}
