package ui

import (
	"image/color"
	"strings"
	"testing"

	"go-space-shooter/internal/system"
)

func TestMenuButtonHitTest(t *testing.T) {
	b := NewMenuButton(270, 400, 200, 50, "START", color.RGBA{16, 185, 129, 255})
	if b.X != 170 {
		t.Fatalf("button left = %v, want 170", b.X)
	}
	if !b.IsClicked(270, 420) {
		t.Errorf("click in the middle missed")
	}
	if b.IsClicked(100, 420) || b.IsClicked(270, 460) {
		t.Errorf("click outside hit the button")
	}
	b.Disabled = true
	if b.IsClicked(270, 420) {
		t.Errorf("disabled button accepted a click")
	}
}

func TestStatBarContains(t *testing.T) {
	bar := NewStatBar(10, 20, 100, 8, color.Black)
	if !bar.Contains(10, 20) || !bar.Contains(110, 28) {
		t.Errorf("edges must be inside")
	}
	if bar.Contains(9, 20) || bar.Contains(50, 29) {
		t.Errorf("outside point reported inside")
	}
}

func TestClamp01(t *testing.T) {
	for in, want := range map[float64]float64{-1: 0, 0.4: 0.4, 3: 1} {
		if got := clamp01(in); got != want {
			t.Errorf("clamp01(%v) = %v, want %v", in, got, want)
		}
	}
}

func TestStatLines(t *testing.T) {
	lines := StatLines(system.Stats{ShotsPerSec: 4.5, Rays: 3, FinalDamage: 187, DamageMultiplier: 1, AllyDamagePercent: 10, Protection: 45, EnemyDamage: 10})
	if len(lines) != 6 {
		t.Fatalf("got %d lines", len(lines))
	}
	if !strings.HasPrefix(lines[0], "SPD 4.5/s x3") {
		t.Errorf("first line = %q", lines[0])
	}
	if lines[4] != "DEF 45%" {
		t.Errorf("protection line = %q", lines[4])
	}
}

func TestPrintableFallsBackToASCII(t *testing.T) {
	face, err := LoadFace(14)
	if err != nil {
		t.Fatalf("LoadFace: %v", err)
	}
	if got := Printable(face, "SCORE 10"); got != "SCORE 10" {
		t.Errorf("ascii changed: %q", got)
	}
	// результат должен рисоваться шрифтом целиком
	got := Printable(face, "ĐIỂM SỐ")
	for _, r := range got {
		if _, ok := face.GlyphAdvance(r); !ok && r != ' ' {
			t.Errorf("unprintable rune %q left in %q", r, got)
		}
	}
}
