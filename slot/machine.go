package slot

import (
	"go.uber.org/zap"

	"github.com/lixenwraith/lucky-slots/engine"
)

// Machine is the stateful controller of one game
// Not safe for concurrent use: all calls, including the deferred resolution,
// must happen on the goroutine that owns the scheduler's task delivery
type Machine struct {
	rules     Rules
	state     State
	tally     Tally
	rng       RandomSource
	scheduler engine.Scheduler
	pending   engine.Timer
	logger    *zap.Logger
	listeners []func(Event)
}

// Option configures a Machine
type Option func(*Machine)

// WithRandomSource injects the reel draw source
func WithRandomSource(rng RandomSource) Option {
	return func(m *Machine) {
		if rng != nil {
			m.rng = rng
		}
	}
}

// WithLogger attaches a structured logger
func WithLogger(logger *zap.Logger) Option {
	return func(m *Machine) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// NewMachine creates a machine in its initial state
// Panics on nil scheduler
func NewMachine(rules Rules, scheduler engine.Scheduler, opts ...Option) *Machine {
	if scheduler == nil {
		panic("slot: nil scheduler")
	}
	m := &Machine{
		rules:     rules,
		state:     InitialState(rules),
		tally:     Tally{Games: 1},
		rng:       DefaultRNG(),
		scheduler: scheduler,
		logger:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// State returns a snapshot of the observable state
func (m *Machine) State() State { return m.state }

// Rules returns the rules the machine was built with
func (m *Machine) Rules() Rules { return m.rules }

// Tally returns the statistics accumulated since creation
func (m *Machine) Tally() Tally { return m.tally }

// CanSpin reports whether Spin would be accepted
func (m *Machine) CanSpin() bool {
	return !m.state.IsSpinning && !m.state.GameOver && m.state.Credits >= m.rules.SpinCost
}

// Subscribe registers fn for every subsequent event
func (m *Machine) Subscribe(fn func(Event)) {
	if fn != nil {
		m.listeners = append(m.listeners, fn)
	}
}

// Spin charges the cost and schedules the resolution after SpinDuration
// Returns false without touching state when the guard rejects the spin
func (m *Machine) Spin() bool {
	if !m.CanSpin() {
		m.logger.Debug("spin ignored",
			zap.Int("credits", m.state.Credits),
			zap.Bool("spinning", m.state.IsSpinning),
			zap.Bool("game_over", m.state.GameOver))
		return false
	}

	m.state.IsSpinning = true
	m.state.Credits -= m.rules.SpinCost
	m.state.WinAmount = 0
	m.state.ShowJackpot = false
	m.tally.recordWager(m.rules.SpinCost)

	m.pending = m.scheduler.AfterFunc(m.rules.SpinDuration, m.resolve)

	m.logger.Debug("spin started", zap.Int("credits", m.state.Credits))
	m.emit(Event{Type: EventSpinStarted, State: m.state})
	return true
}

// resolve runs once per accepted spin through the scheduler
func (m *Machine) resolve() {
	if !m.state.IsSpinning {
		return
	}
	m.pending = nil

	out := Resolve(m.rules, Draw(m.rng, m.rules.SymbolCount))
	m.state.Reels = out.Reels
	m.state.WinAmount = out.WinAmount
	m.state.ShowJackpot = out.Jackpot
	m.state.Credits += out.WinAmount
	m.state.IsSpinning = false
	if m.state.Credits <= 0 {
		m.state.GameOver = true
	}
	m.tally.recordOutcome(out)

	m.logger.Info("spin resolved",
		zap.Stringer("reels", out.Reels),
		zap.Stringer("outcome", out.Kind),
		zap.Int("win", out.WinAmount),
		zap.Int("credits", m.state.Credits))
	m.emit(Event{Type: EventSpinResolved, State: m.state, Outcome: out})

	if m.state.GameOver {
		m.logger.Info("game over", zap.Int("spins", m.tally.Spins))
		m.emit(Event{Type: EventGameOver, State: m.state})
	}
}

// Reset restores the initial state and cancels any pending resolution
func (m *Machine) Reset() {
	if m.pending != nil {
		m.pending.Stop()
		m.pending = nil
	}
	m.state = InitialState(m.rules)
	m.tally.Games++

	m.logger.Info("game reset", zap.Int("credits", m.state.Credits), zap.Int("games", m.tally.Games))
	m.emit(Event{Type: EventReset, State: m.state})
}

func (m *Machine) emit(ev Event) {
	for _, fn := range m.listeners {
		fn(ev)
	}
}
