// Package states implements demo state management.
package states

// State represents a demo state (loading, sandbox).
type State interface {
	// Enter is called when entering this state.
	Enter() error

	// Exit is called when leaving this state.
	Exit() error

	// Update is called every frame.
	Update(dt float64) error

	// Render is called every frame to draw the state.
	Render() error
}

// Resizer is implemented by states that keep a projection.
type Resizer interface {
	Resize(width, height int)
}

// Manager manages state transitions.
type Manager struct {
	current State
	next    State
	width   int
	height  int
}

// NewManager creates a new state manager for a viewport of the given size.
func NewManager(width, height int) *Manager {
	return &Manager{width: width, height: height}
}

// Current returns the current state.
func (m *Manager) Current() State {
	return m.current
}

// Change schedules a state change for the next Update.
func (m *Manager) Change(next State) {
	m.next = next
}

// Viewport returns the last size passed to Resize.
func (m *Manager) Viewport() (int, int) {
	return m.width, m.height
}

// Resize records the viewport and forwards it to the current state.
func (m *Manager) Resize(width, height int) {
	m.width, m.height = width, height
	if r, ok := m.current.(Resizer); ok {
		r.Resize(width, height)
	}
}

// Update processes state changes and updates current state.
func (m *Manager) Update(dt float64) error {
	if m.next != nil {
		if m.current != nil {
			if err := m.current.Exit(); err != nil {
				return err
			}
		}
		m.current = m.next
		m.next = nil
		if err := m.current.Enter(); err != nil {
			return err
		}
		if r, ok := m.current.(Resizer); ok {
			r.Resize(m.width, m.height)
		}
	}

	if m.current != nil {
		return m.current.Update(dt)
	}
	return nil
}

// Render renders the current state.
func (m *Manager) Render() error {
	if m.current != nil {
		return m.current.Render()
	}
	return nil
}
