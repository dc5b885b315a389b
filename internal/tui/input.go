package tui

import (
	"github.com/gdamore/tcell/v2"
)

// ActionKind - что фронтенд должен сделать с событием терминала.
type ActionKind int

const (
	ActionNone ActionKind = iota
	ActionQuit
	ActionPointer
	ActionMove
	ActionPause
	ActionBoom
	ActionStart
	ActionContinue
	ActionLanguage
	ActionResize
)

// Action - результат разбора одного события.
// Для ActionPointer X, Y - клетка экрана, для ActionMove - шаг в клетках.
type Action struct {
	Kind ActionKind
	X, Y int
}

// Translate переводит событие tcell в действие. Мышь задаёт цель,
// правая кнопка ставит паузу; стрелки и hjkl двигают цель по клеткам.
func Translate(ev tcell.Event) Action {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return translateKey(ev)
	case *tcell.EventMouse:
		x, y := ev.Position()
		switch buttons := ev.Buttons(); {
		case buttons&tcell.Button2 != 0:
			return Action{Kind: ActionPause}
		case buttons&tcell.Button1 != 0, buttons == tcell.ButtonNone:
			return Action{Kind: ActionPointer, X: x, Y: y}
		}
	case *tcell.EventResize:
		return Action{Kind: ActionResize}
	}
	return Action{}
}

func translateKey(ev *tcell.EventKey) Action {
	switch ev.Key() {
	case tcell.KeyCtrlC:
		return Action{Kind: ActionQuit}
	case tcell.KeyEscape:
		return Action{Kind: ActionPause}
	case tcell.KeyLeft:
		return Action{Kind: ActionMove, X: -1}
	case tcell.KeyRight:
		return Action{Kind: ActionMove, X: 1}
	case tcell.KeyUp:
		return Action{Kind: ActionMove, Y: -1}
	case tcell.KeyDown:
		return Action{Kind: ActionMove, Y: 1}
	case tcell.KeyRune:
	default:
		return Action{}
	}

	switch ev.Rune() {
	case ' ':
		return Action{Kind: ActionStart}
	case 'q':
		return Action{Kind: ActionQuit}
	case 'p':
		return Action{Kind: ActionPause}
	case 'b':
		return Action{Kind: ActionBoom}
	case 'c':
		return Action{Kind: ActionContinue}
	case 'L':
		return Action{Kind: ActionLanguage}
	case 'h':
		return Action{Kind: ActionMove, X: -1}
	case 'l':
		return Action{Kind: ActionMove, X: 1}
	case 'k':
		return Action{Kind: ActionMove, Y: -1}
	case 'j':
		return Action{Kind: ActionMove, Y: 1}
	}
	return Action{}
}
