// internal/state/state.go
package state

import (
	"go-space-shooter/internal/app"
	"go-space-shooter/internal/render"
	"go-space-shooter/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font"
)

// State - интерфейс для всех состояний
type State interface {
	Enter()
	Update(deltaTime float64)
	Draw(screen *ebiten.Image)
	Exit()
}

// StateMachine - структура для управления состояниями
type StateMachine struct {
	current State
}

// NewStateMachine создаёт новую машину состояний без начального состояния
func NewStateMachine() *StateMachine {
	return &StateMachine{}
}

// SetState устанавливает новое состояние
func (sm *StateMachine) SetState(newState State) {
	if sm.current != nil {
		sm.current.Exit() // Выход из текущего состояния, если оно есть
	}
	sm.current = newState
	if sm.current != nil {
		sm.current.Enter() // Вход в новое состояние, только если оно не nil
	}
}

// Current возвращает активное состояние.
func (sm *StateMachine) Current() State {
	return sm.current
}

// Update обновляет текущее состояние
func (sm *StateMachine) Update(deltaTime float64) {
	if sm.current != nil {
		sm.current.Update(deltaTime)
	}
}

// Draw отрисовывает текущее состояние
func (sm *StateMachine) Draw(screen *ebiten.Image) {
	if sm.current != nil {
		sm.current.Draw(screen)
	}
}

// Shared - то, что живёт дольше одного состояния: игра, отрисовка, шрифты.
type Shared struct {
	*app.Launched
	Renderer  *render.Renderer
	HUD       *ui.HUD
	Face      font.Face
	SmallFace font.Face
	TitleFace font.Face
}

// NewShared загружает шрифты и создаёт рендерер под текущие настройки.
func NewShared(l *app.Launched) (*Shared, error) {
	face, err := ui.LoadFace(20)
	if err != nil {
		return nil, err
	}
	small, err := ui.LoadFace(14)
	if err != nil {
		return nil, err
	}
	title, err := ui.LoadFace(40)
	if err != nil {
		return nil, err
	}
	return &Shared{
		Launched:  l,
		Renderer:  render.NewRenderer(small, render.ParseQuality(l.Settings.Graphics)),
		HUD:       ui.NewHUD(face, small),
		Face:      face,
		SmallFace: small,
		TitleFace: title,
	}, nil
}

// Lang - текущий язык интерфейса.
func (s *Shared) Lang() string {
	return s.Settings.Language
}
