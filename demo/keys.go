package demo

// Key is a key the demos respond to.
type Key uint8

const (
	KeyLeft Key = iota
	KeyRight
	KeyUp
	KeyDown
	KeySpace

	// NumKeys is the number of demo keys.
	NumKeys = iota
)

var keyNames = []string{"left", "right", "up", "down", "space"}

func (k Key) String() string {
	if int(k) < len(keyNames) {
		return keyNames[k]
	}
	return "unknown"
}

// KeyEventType distinguishes held and released keys.
type KeyEventType uint8

const (
	KeyPressed KeyEventType = iota
	KeyReleased
)

// KeyEvent reports a key held or released this frame. Held is the number of
// seconds the key had been down before this frame, so a fresh press has
// Held == 0.
type KeyEvent struct {
	Key  Key
	Type KeyEventType
	Held float64
}
