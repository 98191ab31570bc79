package level

import (
	"fmt"
	"time"

	"github.com/TheBitDrifter/papercraft"
	"github.com/TheBitDrifter/papercraft/assets"
	"github.com/TheBitDrifter/papercraft/components"
	"github.com/gdamore/tcell/v2"
)

const (
	defaultDurationMS = 10000
	defaultDamage     = 10
)

// Spawn registers the level's assets in store and creates its entities in reg. The new
// entities join their systems at the registry's next Update.
func (d *Description) Spawn(reg papercraft.Registry, store *assets.Store, now time.Duration) ([]papercraft.Entity, error) {
	for _, a := range d.Assets {
		if err := addAsset(store, a); err != nil {
			return nil, err
		}
	}

	spawned := make([]papercraft.Entity, 0, len(d.Entities))
	for _, desc := range d.Entities {
		e := reg.CreateEntity()
		if desc.Tag != "" {
			e.Tag(desc.Tag)
		}
		if desc.Group != "" {
			e.Group(desc.Group)
		}
		desc.Components.add(e, now)
		spawned = append(spawned, e)
	}
	return spawned, nil
}

func addAsset(store *assets.Store, a Asset) error {
	style := tcell.StyleDefault
	if a.Color != "" {
		style = style.Foreground(tcell.GetColor(a.Color))
	}
	if a.Background != "" {
		style = style.Background(tcell.GetColor(a.Background))
	}
	if a.Bold {
		style = style.Bold(true)
	}

	var err error
	switch a.Type {
	case AssetTexture:
		texture := assets.Texture{Frames: a.Frames, Style: style}
		if len(texture.Frames) == 0 {
			texture = assets.NewTexture(a.Glyph, style)
		}
		err = store.AddTexture(a.ID, texture)
	case AssetFont:
		err = store.AddFont(a.ID, assets.Font{Style: style})
	default:
		err = fmt.Errorf("unknown type %q", a.Type)
	}
	if err != nil {
		return fmt.Errorf("asset %q: %w", a.ID, err)
	}
	return nil
}

func (c Components) add(e papercraft.Entity, now time.Duration) {
	if t := c.Transform; t != nil {
		transform := components.NewTransform(t.Position)
		if t.Scale != nil {
			transform.Scale = *t.Scale
		}
		transform.Rotation = t.Rotation
		papercraft.AddComponent(e, transform)
	}
	if rb := c.RigidBody; rb != nil {
		papercraft.AddComponent(e, components.RigidBody{Velocity: rb.Velocity})
	}
	if s := c.Sprite; s != nil {
		sprite := components.NewSprite(s.AssetID, s.Width, s.Height, s.Layer)
		sprite.SrcRect.X, sprite.SrcRect.Y = s.SrcX, s.SrcY
		papercraft.AddComponent(e, sprite)
	}
	if a := c.Animation; a != nil {
		loop := a.Loop == nil || *a.Loop
		papercraft.AddComponent(e, components.NewAnimation(a.NumFrames, a.Speed, loop, now))
	}
	if b := c.BoxCollider; b != nil {
		papercraft.AddComponent(e, components.BoxCollider{Width: b.Width, Height: b.Height, Offset: b.Offset})
	}
	if h := c.Health; h != nil {
		papercraft.AddComponent(e, components.Health{HealthPercentage: h.Percentage})
	}
	if p := c.ProjectileEmitter; p != nil {
		duration, damage := defaultDurationMS, defaultDamage
		if p.DurationMS != nil {
			duration = *p.DurationMS
		}
		if p.Damage != nil {
			damage = *p.Damage
		}
		papercraft.AddComponent(e, components.NewProjectileEmitter(
			p.Velocity,
			time.Duration(p.RepeatMS)*time.Millisecond,
			time.Duration(duration)*time.Millisecond,
			damage,
			p.Friendly,
			now,
		))
	}
	if k := c.KeyboardControlled; k != nil {
		papercraft.AddComponent(e, components.KeyboardControlled{
			UpVelocity:    k.Up,
			RightVelocity: k.Right,
			DownVelocity:  k.Down,
			LeftVelocity:  k.Left,
		})
	}
	if c.CameraFollow {
		papercraft.AddComponent(e, components.CameraFollow{})
	}
	if l := c.TextLabel; l != nil {
		label := components.NewTextLabel(l.Position, l.Text, l.Font, l.Color)
		if l.Fixed != nil {
			label.IsFixed = *l.Fixed
		}
		papercraft.AddComponent(e, label)
	}
}
