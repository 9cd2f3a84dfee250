package main

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/ha1tch/deluxedesign/internal/tool"
)

// GUI Control types
type Button struct {
	rect     rl.Rectangle
	text     string
	hover    bool
	selected bool
}

type ToolButton struct {
	Button
	tool tool.Tool
}

type Slider struct {
	rect     rl.Rectangle
	value    float32
	min      float32
	max      float32
	label    string
	dragging bool
}

// Swatch is a palette entry in the color panels
type Swatch struct {
	rect  rl.Rectangle
	color string
}

// clicked updates hover state and reports a left click on the button
func (b *Button) clicked(mousePos rl.Vector2) bool {
	b.hover = rl.CheckCollisionPointRec(mousePos, b.rect)
	return b.hover && rl.IsMouseButtonPressed(rl.MouseLeftButton)
}

func (b *Button) draw() {
	color := rl.Color{70, 70, 70, 255}
	if b.selected {
		color = rl.Color{100, 100, 150, 255}
	} else if b.hover {
		color = rl.Color{80, 80, 80, 255}
	}

	rl.DrawRectangleRec(b.rect, color)
	rl.DrawRectangleLinesEx(b.rect, 1, rl.Color{90, 90, 90, 255})

	textW := rl.MeasureText(b.text, fontSize)
	textX := int32(b.rect.X + b.rect.Width/2 - float32(textW)/2)
	textY := int32(b.rect.Y + b.rect.Height/2 - 4)
	rl.DrawText(b.text, textX, textY, fontSize, rl.White)
}

// update moves the slider while the mouse is held on it and reports
// whether the value changed.
func (s *Slider) update(mousePos rl.Vector2) bool {
	if rl.IsMouseButtonPressed(rl.MouseLeftButton) && rl.CheckCollisionPointRec(mousePos, s.rect) {
		s.dragging = true
	}
	if !rl.IsMouseButtonDown(rl.MouseLeftButton) {
		s.dragging = false
	}
	if !s.dragging {
		return false
	}

	relX := mousePos.X - s.rect.X
	value := s.min + (relX/s.rect.Width)*(s.max-s.min)
	value = float32(int(clamp(value, s.min, s.max) + 0.5))
	if value == s.value {
		return false
	}
	s.value = value
	return true
}

func (s *Slider) draw() {
	rl.DrawText(s.label, int32(s.rect.X), int32(s.rect.Y-12), fontSize, rl.LightGray)
	rl.DrawRectangleRec(s.rect, rl.Color{60, 60, 60, 255})
	sliderPos := s.rect.X + (s.value-s.min)/(s.max-s.min)*s.rect.Width
	rl.DrawRectangle(int32(sliderPos-2), int32(s.rect.Y), 4, int32(s.rect.Height), rl.White)
}

func (s *Swatch) clicked(mousePos rl.Vector2) bool {
	return rl.CheckCollisionPointRec(mousePos, s.rect) && rl.IsMouseButtonPressed(rl.MouseLeftButton)
}

func (s *Swatch) draw(current string) {
	if s.color == "transparent" {
		// Checkerboard for no paint
		half := s.rect.Width / 2
		rl.DrawRectangleRec(s.rect, rl.Color{150, 150, 150, 255})
		rl.DrawRectangle(int32(s.rect.X), int32(s.rect.Y), int32(half), int32(half), rl.Color{100, 100, 100, 255})
		rl.DrawRectangle(int32(s.rect.X+half), int32(s.rect.Y+half), int32(half), int32(half), rl.Color{100, 100, 100, 255})
	} else {
		rl.DrawRectangleRec(s.rect, toColor(s.color))
	}

	if current == s.color {
		rl.DrawRectangleLinesEx(s.rect, 2, rl.White)
	} else {
		rl.DrawRectangleLinesEx(s.rect, 1, rl.Color{70, 70, 70, 255})
	}
}

// Helper functions
func clamp(value, min, max float32) float32 {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}
