package state

import (
	"time"

	"go-space-shooter/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// clickGuard отсекает повторные клики чаще ClickCooldownMs.
type clickGuard struct {
	last time.Time
}

func (g *clickGuard) allow() bool {
	if time.Since(g.last) < config.ClickCooldownMs*time.Millisecond {
		return false
	}
	g.last = time.Now()
	return true
}

// justClicked возвращает позицию нового нажатия мышью или касанием.
func justClicked() (int, int, bool) {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		return x, y, true
	}
	for _, id := range inpututil.AppendJustPressedTouchIDs(nil) {
		x, y := ebiten.TouchPosition(id)
		return x, y, true
	}
	return 0, 0, false
}

// pointer возвращает текущую цель: касание важнее курсора.
func pointer() (x, y int, touch bool) {
	if ids := ebiten.AppendTouchIDs(nil); len(ids) > 0 {
		x, y = ebiten.TouchPosition(ids[0])
		return x, y, true
	}
	x, y = ebiten.CursorPosition()
	return x, y, false
}

// pausePressed - Space, Escape или правая кнопка мыши.
func pausePressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeySpace) ||
		inpututil.IsKeyJustPressed(ebiten.KeyEscape) ||
		inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight)
}

func insideScreen(x, y int) bool {
	return x >= 0 && y >= 0 && x < config.ScreenWidth && y < config.ScreenHeight
}
