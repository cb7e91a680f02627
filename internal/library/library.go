// Package library holds named color collections. A library is read from a
// JSON array of {"color", "name", "favorite"} objects, where color uses the
// same text grammar as colorval.Parse. It can be searched by name and
// reloaded when its file changes.
package library

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/sahilm/fuzzy"

	"github.com/iOliverNguyen/rustapps/internal/colorval"
)

var debugLogger *log.Logger = log.New(io.Discard, "", 0)

func init() {
	if os.Getenv("UICOLORS_DEBUG_LIBRARY") == "1" {
		debugLogger = log.New(os.Stderr, "[library] ", log.Ltime|log.Lmsgprefix)
	}
}

// Item is a library entry.
type Item struct {
	Color    colorval.Color
	Name     string // may be empty
	Favorite bool
}

// Label returns the item's name, or its formatted color if it has none.
func (it Item) Label() string {
	if it.Name != "" {
		return it.Name
	}
	return it.Color.String()
}

// Library is an ordered list of items. Order is preserved from the source.
type Library struct {
	Items []Item
}

type rawItem struct {
	Color    string `json:"color"`
	Name     string `json:"name,omitempty"`
	Favorite bool   `json:"favorite"`
}

// Parse decodes a library from its JSON form. Malformed color strings are
// reported with the index of the offending entry.
func Parse(data []byte) (*Library, error) {
	var raw []rawItem
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decoding library: %w", err)
	}

	lib := &Library{Items: make([]Item, len(raw))}
	for i, r := range raw {
		c, err := colorval.Parse(r.Color)
		if err != nil {
			return nil, fmt.Errorf("library entry %d: %w", i, err)
		}
		lib.Items[i] = Item{Color: c, Name: r.Name, Favorite: r.Favorite}
	}
	return lib, nil
}

// Load reads and parses the library file at path.
func Load(path string) (*Library, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	b, err := os.ReadFile(abs)
	if err != nil {
		return nil, err
	}
	lib, err := Parse(b)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	debugLogger.Printf("loaded %d items from %s", lib.Len(), abs)
	return lib, nil
}

// MarshalJSON encodes the library in the same form Parse accepts.
func (l *Library) MarshalJSON() ([]byte, error) {
	raw := make([]rawItem, len(l.Items))
	for i, it := range l.Items {
		raw[i] = rawItem{Color: it.Color.String(), Name: it.Name, Favorite: it.Favorite}
	}
	return json.Marshal(raw)
}

// Default returns the built-in library used when none is configured.
func Default() *Library {
	item := func(hex, name string) Item {
		c, err := colorval.Parse(hex)
		if err != nil {
			panic(err) // unreachable: constant input
		}
		return Item{Color: c, Name: name}
	}
	return &Library{Items: []Item{
		item("#f43f5e", "Rose"),
		item("#ec4899", "Pink"),
		item("#d946ef", "Fuchsia"),
		item("#a855f7", "Purple"),
		item("#8b5cf6", "Violet"),
		item("#6366f1", "Indigo"),
		item("#3b82f6", "Blue"),
		item("#0ea5e9", "Sky"),
		item("#06b6d4", "Cyan"),
		item("#14b8a6", "Teal"),
		item("#10b981", "Emerald"),
		item("#22c55e", "Green"),
		item("#84cc16", "Lime"),
		item("#eab308", "Yellow"),
		item("#f59e0b", "Amber"),
		item("#f97316", "Orange"),
		item("#ef4444", "Red"),
		item("#78716c", "Stone"),
		item("#737373", "Neutral"),
	}}
}

// Len returns the number of items; it is safe on a nil library.
func (l *Library) Len() int {
	if l == nil {
		return 0
	}
	return len(l.Items)
}

// Position returns the index of the first item equal to c once c is converted
// to RGB or to HSL. Items are compared per variant, so an RGB item matches
// only c's RGB form and an HSL item only its HSL form.
func (l *Library) Position(c colorval.Color) (int, bool) {
	if l == nil {
		return -1, false
	}
	rgb, hsl := c.ToRGB(), c.ToHSL()
	for i, it := range l.Items {
		if it.Color.Equal(rgb) || it.Color.Equal(hsl) {
			return i, true
		}
	}
	return -1, false
}

// Favorites returns the favorite items in library order.
func (l *Library) Favorites() []Item {
	var out []Item
	for _, it := range l.Items {
		if it.Favorite {
			out = append(out, it)
		}
	}
	return out
}

// Search returns the items whose label fuzzily matches query, best match
// first. An empty query returns every item in library order.
func (l *Library) Search(query string) []Item {
	if l == nil {
		return nil
	}
	if query == "" {
		return append([]Item(nil), l.Items...)
	}

	labels := make([]string, len(l.Items))
	for i, it := range l.Items {
		labels[i] = it.Label()
	}
	matches := fuzzy.Find(query, labels)
	out := make([]Item, 0, len(matches))
	for _, m := range matches {
		out = append(out, l.Items[m.Index])
	}
	return out
}
