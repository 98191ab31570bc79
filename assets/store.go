package assets

import (
	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"
)

// DefaultCapacity bounds each asset kind when no capacity is configured.
const DefaultCapacity = 64

// Texture is a grid of glyphs. Rows select a sprite's facing, columns its animation frame.
type Texture struct {
	Frames [][]string
	Style  tcell.Style
}

// NewTexture returns a single-frame texture.
func NewTexture(glyph string, style tcell.Style) Texture {
	return Texture{Frames: [][]string{{glyph}}, Style: style}
}

// Glyph returns the glyph at row, col, wrapping both indices.
func (t Texture) Glyph(row, col int) string {
	if len(t.Frames) == 0 {
		return "?"
	}
	r := t.Frames[wrap(row, len(t.Frames))]
	if len(r) == 0 {
		return "?"
	}
	return r[wrap(col, len(r))]
}

func wrap(i, n int) int {
	i %= n
	if i < 0 {
		i += n
	}
	return i
}

type Font struct {
	Style tcell.Style
}

type Store struct {
	textures *Cache[Texture]
	fonts    *Cache[Font]
	logger   *zap.Logger
}

// NewStore returns a store holding up to capacity textures and capacity fonts.
func NewStore(capacity int, logger *zap.Logger) *Store {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{
		textures: NewCache[Texture](capacity),
		fonts:    NewCache[Font](capacity),
		logger:   logger,
	}
}

func (s *Store) AddTexture(id string, texture Texture) error {
	if _, err := s.textures.Register(id, texture); err != nil {
		return err
	}
	s.logger.Debug("texture added", zap.String("id", id))
	return nil
}

// Texture returns the texture registered under id.
func (s *Store) Texture(id string) (Texture, bool) {
	t, ok := s.textures.Get(id)
	if !ok {
		return Texture{}, false
	}
	return *t, true
}

func (s *Store) AddFont(id string, font Font) error {
	if _, err := s.fonts.Register(id, font); err != nil {
		return err
	}
	s.logger.Debug("font added", zap.String("id", id))
	return nil
}

func (s *Store) Font(id string) (Font, bool) {
	f, ok := s.fonts.Get(id)
	if !ok {
		return Font{}, false
	}
	return *f, true
}

// Clear removes every asset.
func (s *Store) Clear() {
	s.textures.Clear()
	s.fonts.Clear()
	s.logger.Debug("asset store cleared")
}
