package systems

import (
	"cmp"
	"slices"

	"github.com/TheBitDrifter/papercraft"
	"github.com/TheBitDrifter/papercraft/components"
	"github.com/TheBitDrifter/papercraft/events"
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
	"go.uber.org/zap"
)

// RenderSystem draws sprites in ascending layer order.
type RenderSystem struct {
	papercraft.BaseSystem
	transform papercraft.AccessibleComponent[components.Transform]
	sprite    papercraft.AccessibleComponent[components.Sprite]
}

func NewRenderSystem() *RenderSystem {
	s := &RenderSystem{
		transform: papercraft.FactoryNewComponent[components.Transform](),
		sprite:    papercraft.FactoryNewComponent[components.Sprite](),
	}
	s.Require(s.transform, s.sprite)
	return s
}

func (s *RenderSystem) Phase() Phase { return PhaseRender }

func (s *RenderSystem) Update(f *Frame) {
	if f.Screen == nil || f.Assets == nil {
		return
	}
	camera := viewCamera(f)

	entities := s.SystemEntities()
	slices.SortStableFunc(entities, func(a, b papercraft.Entity) int {
		return cmp.Compare(s.sprite.GetFromEntity(a).LayerIndex, s.sprite.GetFromEntity(b).LayerIndex)
	})

	for _, entity := range entities {
		sprite := s.sprite.GetFromEntity(entity)
		texture, ok := f.Assets.Texture(sprite.AssetID)
		if !ok {
			f.logger().Debug("missing texture", zap.String("asset", sprite.AssetID), zap.Int("entity", entity.ID()))
			continue
		}
		sx, sy, visible := camera.WorldToScreen(s.transform.GetFromEntity(entity).Position)
		if !visible {
			continue
		}
		row := sprite.SrcRect.Y / max(sprite.Height, 1)
		col := sprite.SrcRect.X / max(sprite.Width, 1)
		putGlyph(f.Screen, sx, sy, texture.Glyph(row, col), texture.Style)
	}
}

// RenderColliderSystem outlines collision boxes. It is toggled with the debug key.
type RenderColliderSystem struct {
	papercraft.BaseSystem
	Enabled   bool
	transform papercraft.AccessibleComponent[components.Transform]
	collider  papercraft.AccessibleComponent[components.BoxCollider]
}

func NewRenderColliderSystem() *RenderColliderSystem {
	s := &RenderColliderSystem{
		transform: papercraft.FactoryNewComponent[components.Transform](),
		collider:  papercraft.FactoryNewComponent[components.BoxCollider](),
	}
	s.Require(s.transform, s.collider)
	return s
}

func (s *RenderColliderSystem) Phase() Phase { return PhaseRender }

func (s *RenderColliderSystem) SubscribeToEvents(bus *events.Bus) {
	events.Subscribe(bus, func(e *events.KeyPressedEvent) {
		if e.Key == events.KeyDebug {
			s.Enabled = !s.Enabled
		}
	})
}

var colliderStyle = tcell.StyleDefault.Foreground(tcell.ColorRed)

func (s *RenderColliderSystem) Update(f *Frame) {
	if !s.Enabled || f.Screen == nil {
		return
	}
	camera := viewCamera(f)
	for _, entity := range s.SystemEntities() {
		collider := s.collider.GetFromEntity(entity)
		sx, sy, _ := camera.WorldToScreen(s.transform.GetFromEntity(entity).Position.Add(collider.Offset))
		w, h := max(collider.Width, 1), max(collider.Height, 1)
		for x := sx; x < sx+w; x++ {
			f.Screen.SetContent(x, sy, '-', nil, colliderStyle)
			f.Screen.SetContent(x, sy+h-1, '-', nil, colliderStyle)
		}
		for y := sy; y < sy+h; y++ {
			f.Screen.SetContent(sx, y, '|', nil, colliderStyle)
			f.Screen.SetContent(sx+w-1, y, '|', nil, colliderStyle)
		}
		for _, c := range [][2]int{{sx, sy}, {sx + w - 1, sy}, {sx, sy + h - 1}, {sx + w - 1, sy + h - 1}} {
			f.Screen.SetContent(c[0], c[1], '+', nil, colliderStyle)
		}
	}
}

// RenderTextSystem draws text labels, either fixed to the screen or placed in the world.
type RenderTextSystem struct {
	papercraft.BaseSystem
	label papercraft.AccessibleComponent[components.TextLabel]
}

func NewRenderTextSystem() *RenderTextSystem {
	s := &RenderTextSystem{
		label: papercraft.FactoryNewComponent[components.TextLabel](),
	}
	s.Require(s.label)
	return s
}

func (s *RenderTextSystem) Phase() Phase { return PhaseRender }

func (s *RenderTextSystem) Update(f *Frame) {
	if f.Screen == nil {
		return
	}
	camera := viewCamera(f)
	for _, entity := range s.SystemEntities() {
		label := s.label.GetFromEntity(entity)

		style := tcell.StyleDefault
		if f.Assets != nil {
			if font, ok := f.Assets.Font(label.AssetID); ok {
				style = font.Style
			}
		}
		if label.Color != "" {
			style = style.Foreground(tcell.GetColor(label.Color))
		}

		x, y := int(label.Position.X), int(label.Position.Y)
		if !label.IsFixed {
			x -= camera.X
			y -= camera.Y
		}
		drawText(f.Screen, x, y, label.Text, style)
	}
}

// viewCamera returns the frame camera, or a camera at the origin covering the screen.
func viewCamera(f *Frame) *Camera {
	if f.Camera != nil {
		return f.Camera
	}
	w, h := f.Screen.Size()
	return &Camera{Width: w, Height: h}
}

// putGlyph draws a single glyph (ASCII or multi-rune emoji) at screen position (x, y).
func putGlyph(screen tcell.Screen, x, y int, glyph string, style tcell.Style) {
	runes := []rune(glyph)
	if len(runes) == 0 {
		return
	}
	var combc []rune
	if len(runes) > 1 {
		combc = runes[1:]
	}
	screen.SetContent(x, y, runes[0], combc, style)
	if runewidth.StringWidth(glyph) == 2 {
		screen.SetContent(x+1, y, ' ', nil, style)
	}
}

func drawText(screen tcell.Screen, x, y int, text string, style tcell.Style) {
	for _, r := range text {
		screen.SetContent(x, y, r, nil, style)
		x += max(runewidth.RuneWidth(r), 1)
	}
}
