package core

// Signal is an out-of-band notification from the core to the UI layer,
// delivered on a buffered channel so the core never blocks on a slow
// consumer.
type Signal any

type MessageSignal struct {
	text string
}

func (m MessageSignal) Value() string {
	return m.text
}

type ErrorSignal struct {
	err error
}

func (e ErrorSignal) Value() error {
	return e.err
}

func (e *editor) DispatchMessage(text string) {
	select {
	case e.signals <- MessageSignal{text: text}:
	default: // drop rather than block the edit loop
	}
}

func (e *editor) DispatchError(err error) {
	select {
	case e.signals <- ErrorSignal{err: err}:
	default:
	}
}

func (e *editor) Signals() <-chan Signal {
	return e.signals
}
