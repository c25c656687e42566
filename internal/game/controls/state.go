package controls

import (
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/showroom/internal/logger"
)

// Phase is the interaction state.
type Phase int

const (
	// PhaseInactive: no input is processed and the agent is frozen.
	PhaseInactive Phase = iota
	// PhaseActive: input is processed normally.
	PhaseActive
	// PhasePanelOpen: a modal content view is showing. Movement is
	// frozen, but the cause is tracked so closing the panel restores
	// Active rather than whatever other inactive cause applies.
	PhasePanelOpen
	// phaseSettling: the panel has closed but input resumes only after
	// the settle delay, giving UI transition animations time to finish.
	phaseSettling
)

// StateMachine holds the interaction state. The panel flag is a
// first-class part of the machine, present from construction.
type StateMachine struct {
	phase       Phase
	settleDelay time.Duration
	settleLeft  time.Duration

	// onPanel signals the UI layer to show or hide the modal view.
	onPanel func(open bool)

	log *zap.Logger
}

// NewStateMachine creates the machine in the Inactive phase. onPanel
// may be nil.
func NewStateMachine(settleDelay time.Duration, onPanel func(open bool)) *StateMachine {
	return &StateMachine{
		phase:       PhaseInactive,
		settleDelay: settleDelay,
		onPanel:     onPanel,
		log:         logger.Named("interaction"),
	}
}

// Active reports whether movement input is currently processed.
func (m *StateMachine) Active() bool {
	return m.phase == PhaseActive
}

// PanelOpen reports whether the modal view is showing.
func (m *StateMachine) PanelOpen() bool {
	return m.phase == PhasePanelOpen
}

// Activate handles explicit activation: the user starts the experience
// or the window regains focus. Regaining focus while the panel is open
// counts as a close trigger.
func (m *StateMachine) Activate() {
	switch m.phase {
	case PhaseInactive:
		m.phase = PhaseActive
		m.log.Debug("activated")
	case PhasePanelOpen:
		m.ClosePanel()
	}
}

// Deactivate handles focus loss. An open panel stays open; movement is
// already frozen in that phase.
func (m *StateMachine) Deactivate() {
	switch m.phase {
	case PhaseActive, phaseSettling:
		m.phase = PhaseInactive
		m.settleLeft = 0
		m.log.Debug("deactivated")
	}
}

// TryOpenPanel opens the modal view if the machine is Active, a
// proximity target exists, and no panel is already open. Returns
// whether the panel opened; every other combination is a no-op.
func (m *StateMachine) TryOpenPanel(hasTarget bool) bool {
	if m.phase != PhaseActive || !hasTarget {
		return false
	}
	m.phase = PhasePanelOpen
	m.log.Debug("panel opened")
	if m.onPanel != nil {
		m.onPanel(true)
	}
	return true
}

// ClosePanel dismisses the modal view. Input resumes after the settle
// delay; a zero delay resumes on the next Tick.
func (m *StateMachine) ClosePanel() {
	if m.phase != PhasePanelOpen {
		return
	}
	m.phase = phaseSettling
	m.settleLeft = m.settleDelay
	m.log.Debug("panel closed", zap.Duration("settle", m.settleDelay))
	if m.onPanel != nil {
		m.onPanel(false)
	}
}

// Tick advances the settle countdown. dt is the frame delta in seconds.
func (m *StateMachine) Tick(dt float32) {
	if m.phase != phaseSettling {
		return
	}
	m.settleLeft -= time.Duration(dt * float32(time.Second))
	if m.settleLeft <= 0 {
		m.settleLeft = 0
		m.phase = PhaseActive
		m.log.Debug("settled, input resumed")
	}
}
