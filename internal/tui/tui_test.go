package tui

import (
	"strings"
	"testing"

	"go-space-shooter/internal/component"
	"go-space-shooter/internal/config"
	"go-space-shooter/internal/defs"
	"go-space-shooter/internal/entity"
	"go-space-shooter/internal/i18n"
	"go-space-shooter/internal/system"

	"github.com/gdamore/tcell/v2"
)

func newScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("init screen: %v", err)
	}
	screen.SetSize(w, h)
	t.Cleanup(screen.Fini)
	return screen
}

func rowText(screen tcell.Screen, y int) string {
	w, _ := screen.Size()
	var sb strings.Builder
	for x := 0; x < w; x++ {
		ch, _, _, _ := screen.GetContent(x, y)
		sb.WriteRune(ch)
	}
	return sb.String()
}

func TestCellMappingRoundTrip(t *testing.T) {
	screen := newScreen(t, 54, 100)
	r := NewRenderer(screen)

	cx, cy := r.ToCell(config.ScreenWidth/2, config.ScreenHeight/2)
	if cx != 27 || cy != 48+topRows {
		t.Errorf("center cell = %d,%d", cx, cy)
	}
	x, y := r.ToWorld(cx, cy)
	if back, _ := r.ToCell(x, y); back != cx {
		t.Errorf("round trip x: %d -> %v -> %d", cx, x, back)
	}
	if _, back := r.ToCell(x, y); back != cy {
		t.Errorf("round trip y: %d -> %v -> %d", cy, y, back)
	}
}

func TestDrawShowsEntitiesAndHUD(t *testing.T) {
	screen := newScreen(t, 54, 100)
	r := NewRenderer(screen)

	b := defs.DefaultBalance()
	w := entity.NewWorld(b)
	w.Session.Started = true
	w.Session.Score = 1234
	w.Enemies.Add(&component.Enemy{Position: component.Position{X: 100, Y: 300}, Type: defs.EnemySmall, HP: 10, MaxHP: 10})

	r.Draw(w, system.ComputeHUD(w, b), i18n.EN, 0)

	if top := rowText(screen, 0); !strings.HasPrefix(top, "SCORE") {
		t.Errorf("top row = %q", top)
	}
	px, py := r.ToCell(w.Player.X, w.Player.Y)
	if ch, _, _, _ := screen.GetContent(px, py); ch != 'A' {
		t.Errorf("player cell = %q, want 'A'", ch)
	}
	ex, ey := r.ToCell(100, 300)
	if ch, _, _, _ := screen.GetContent(ex, ey); ch != 'v' {
		t.Errorf("enemy cell = %q, want 'v'", ch)
	}
	_, h := screen.Size()
	if hp := rowText(screen, h-2); !strings.Contains(hp, "1k/1k") {
		t.Errorf("hp row = %q", hp)
	}
}

func TestDrawMenuBeforeStart(t *testing.T) {
	screen := newScreen(t, 60, 40)
	r := NewRenderer(screen)
	b := defs.DefaultBalance()
	w := entity.NewWorld(b)

	r.Draw(w, system.ComputeHUD(w, b), i18n.VN, 4200)

	found := false
	for y := 0; y < 40; y++ {
		if strings.Contains(rowText(screen, y), "BAT DAU NHIEM VU") {
			found = true
		}
	}
	if !found {
		t.Errorf("menu start line not drawn")
	}
}

func TestBar(t *testing.T) {
	if got := Bar(0.5, 4); got != "██░░" {
		t.Errorf("Bar(0.5, 4) = %q", got)
	}
	if got := Bar(2, 3); got != "███" {
		t.Errorf("Bar clamps above 1: %q", got)
	}
	if Bar(0.5, 0) != "" {
		t.Errorf("zero width bar must be empty")
	}
}

func TestTranslate(t *testing.T) {
	tests := []struct {
		name string
		ev   tcell.Event
		want Action
	}{
		{"space", tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), Action{Kind: ActionStart}},
		{"escape", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), Action{Kind: ActionPause}},
		{"ctrl-c", tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), Action{Kind: ActionQuit}},
		{"boom", tcell.NewEventKey(tcell.KeyRune, 'b', tcell.ModNone), Action{Kind: ActionBoom}},
		{"left", tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), Action{Kind: ActionMove, X: -1}},
		{"vim down", tcell.NewEventKey(tcell.KeyRune, 'j', tcell.ModNone), Action{Kind: ActionMove, Y: 1}},
		{"mouse move", tcell.NewEventMouse(5, 7, tcell.ButtonNone, tcell.ModNone), Action{Kind: ActionPointer, X: 5, Y: 7}},
		{"left click", tcell.NewEventMouse(3, 4, tcell.Button1, tcell.ModNone), Action{Kind: ActionPointer, X: 3, Y: 4}},
		{"right click", tcell.NewEventMouse(3, 4, tcell.Button2, tcell.ModNone), Action{Kind: ActionPause}},
		{"resize", tcell.NewEventResize(80, 24), Action{Kind: ActionResize}},
		{"unknown rune", tcell.NewEventKey(tcell.KeyRune, 'z', tcell.ModNone), Action{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Translate(tt.ev); got != tt.want {
				t.Errorf("Translate = %+v, want %+v", got, tt.want)
			}
		})
	}
}
