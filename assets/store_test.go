package assets

import (
	"errors"
	"strconv"
	"testing"

	"github.com/gdamore/tcell/v2"
)

// TestCacheBasicOperations tests Register, GetIndex and GetItem on a Cache
func TestCacheBasicOperations(t *testing.T) {
	cache := NewCache[string](10)

	items := []string{"item1", "item2", "item3"}
	for i, item := range items {
		index, err := cache.Register(item, item)
		if err != nil {
			t.Fatalf("Register(%q) failed: %v", item, err)
		}
		if index != i {
			t.Errorf("Register(%q) index = %d, want %d", item, index, i)
		}
	}

	for i, item := range items {
		index, found := cache.GetIndex(item)
		if !found || index != i {
			t.Errorf("GetIndex(%q) = %d, %v", item, index, found)
		}
		if got := *cache.GetItem(index); got != item {
			t.Errorf("GetItem(%d) = %q, want %q", index, got, item)
		}
	}

	if _, found := cache.GetIndex("nonexistent"); found {
		t.Errorf("found non-existent item")
	}
}

// TestCacheCapacity tests the cache capacity limit and replacement of existing keys
func TestCacheCapacity(t *testing.T) {
	const capacity = 3
	cache := NewCache[int](capacity)
	for i := 0; i < capacity; i++ {
		if _, err := cache.Register("item"+strconv.Itoa(i), i); err != nil {
			t.Fatalf("Register failed: %v", err)
		}
	}

	_, err := cache.Register("overflow", 100)
	var capErr CapacityError
	if !errors.As(err, &capErr) || capErr.Capacity != capacity {
		t.Errorf("Register over capacity returned %v, want CapacityError", err)
	}

	idx, err := cache.Register("item1", 42)
	if err != nil || idx != 1 {
		t.Fatalf("re-Register existing key = %d, %v", idx, err)
	}
	if got, _ := cache.Get("item1"); *got != 42 {
		t.Errorf("re-Register did not replace the item, got %d", *got)
	}

	cache.Clear()
	if cache.Len() != 0 {
		t.Errorf("Len after Clear = %d", cache.Len())
	}
	if _, err := cache.Register("fresh", 1); err != nil {
		t.Errorf("Register after Clear failed: %v", err)
	}
}

func TestStore(t *testing.T) {
	store := NewStore(2, nil)
	style := tcell.StyleDefault.Foreground(tcell.ColorRed)

	if err := store.AddTexture("tank", NewTexture("T", style)); err != nil {
		t.Fatal(err)
	}
	if err := store.AddFont("charriot", Font{Style: style}); err != nil {
		t.Fatal(err)
	}

	tex, ok := store.Texture("tank")
	if !ok || tex.Glyph(0, 0) != "T" {
		t.Errorf("Texture(tank) = %+v, %v", tex, ok)
	}
	if _, ok := store.Font("charriot"); !ok {
		t.Errorf("Font(charriot) missing")
	}
	if _, ok := store.Texture("missing"); ok {
		t.Errorf("Texture(missing) reported present")
	}

	store.Clear()
	if _, ok := store.Texture("tank"); ok {
		t.Errorf("texture survived Clear")
	}
}

func TestTextureGlyph(t *testing.T) {
	tex := Texture{Frames: [][]string{{"^", "A"}, {">", "}"}}}
	tests := []struct {
		name     string
		row, col int
		want     string
	}{
		{"origin", 0, 0, "^"},
		{"second frame", 0, 1, "A"},
		{"second row", 1, 1, "}"},
		{"wraps row", 2, 0, "^"},
		{"wraps col", 1, 3, "}"},
		{"negative", -1, 0, ">"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tex.Glyph(tt.row, tt.col); got != tt.want {
				t.Errorf("Glyph(%d, %d) = %q, want %q", tt.row, tt.col, got, tt.want)
			}
		})
	}
	if got := (Texture{}).Glyph(0, 0); got != "?" {
		t.Errorf("empty texture Glyph = %q, want ?", got)
	}
}
