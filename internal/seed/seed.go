// Package seed loads the initial inventory of the demo application from TOML files
package seed

import (
	"fmt"
	"github.com/pelletier/go-toml/v2"
	"io"
	"os"
	"slices"
	"strings"
)

// Item represents a single inventory item
type Item struct {
	Quantity int      `toml:"quantity"`
	Tags     []string `toml:"tags"`
}

// Clone returns a deep copy of the item
func (item *Item) Clone() *Item {
	return &Item{
		Quantity: item.Quantity,
		Tags:     slices.Clone(item.Tags),
	}
}

type document struct {
	Items map[string]Item `toml:"items"`
}

const defaultSeed = `
[items.pear]
quantity = 4
tags = ["fruit"]

[items.apple]
quantity = 12
tags = ["fruit", "red"]

[items.bread]
quantity = 2
tags = ["bakery"]
`

// Decode reads the items of a TOML seed document
func Decode(reader io.Reader) (map[string]*Item, error) {
	var decoded document
	if err := toml.NewDecoder(reader).Decode(&decoded); err != nil {
		return nil, err
	}

	items := make(map[string]*Item, len(decoded.Items))
	for name, item := range decoded.Items {
		items[name] = item.Clone()
	}
	return items, nil
}

// Load reads the items of the TOML seed file at path
func Load(path string) (map[string]*Item, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	items, err := Decode(file)
	if err != nil {
		return nil, fmt.Errorf("could not decode seed file %q: %w", path, err)
	}
	return items, nil
}

// Default returns the built-in seed items
func Default() map[string]*Item {
	items, err := Decode(strings.NewReader(defaultSeed))
	if err != nil {
		panic(err)
	}
	return items
}
