package components

import (
	"testing"
	"time"
)

func TestConstructorDefaults(t *testing.T) {
	transform := NewTransform(Vec2{X: 3, Y: 4})
	if transform.Scale != (Vec2{X: 1, Y: 1}) || transform.Rotation != 0 {
		t.Errorf("NewTransform = %+v", transform)
	}

	sprite := NewSprite("tank-image", 2, 3, 1)
	if sprite.SrcRect != (Rect{W: 2, H: 3}) {
		t.Errorf("NewSprite SrcRect = %+v", sprite.SrcRect)
	}

	animation := NewAnimation(0, 5, true, time.Second)
	if animation.NumFrames != 1 || animation.CurrentFrame != 1 || animation.StartTime != time.Second {
		t.Errorf("NewAnimation = %+v", animation)
	}

	label := NewTextLabel(Vec2{}, "hi", "charriot-font", "")
	if !label.IsFixed {
		t.Errorf("NewTextLabel is not fixed by default")
	}
}

func TestVec2(t *testing.T) {
	v := Vec2{X: 1, Y: -2}.Add(Vec2{X: 2, Y: 2}).Scale(0.5)
	if v != (Vec2{X: 1.5, Y: 0}) {
		t.Errorf("(1,-2)+(2,2)*0.5 = %+v", v)
	}
}
