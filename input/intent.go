package input

// IntentType discriminates operator actions
type IntentType uint8

const (
	IntentNone   IntentType = iota // No key this tick, navigator falls back to the potential field
	IntentQuit                     // q, Esc, Ctrl+C
	IntentMotion                   // Arrow keys, hjkl
)

// MotionOp identifies a single-cell step
type MotionOp uint8

const (
	MotionNone  MotionOp = iota
	MotionLeft           // h, Left arrow
	MotionRight          // l, Right arrow
	MotionUp             // k, Up arrow
	MotionDown           // j, Down arrow
)

// Intent is one operator action delivered to the navigator
type Intent struct {
	Type   IntentType
	Motion MotionOp
}

// None is the idle intent
var None = Intent{}

// Quit is the terminal intent
var Quit = Intent{Type: IntentQuit}

// Move builds a motion intent
func Move(op MotionOp) Intent {
	return Intent{Type: IntentMotion, Motion: op}
}

// Delta returns the grid step for a motion; screen rows grow downward
func (op MotionOp) Delta() (dx, dy int) {
	switch op {
	case MotionLeft:
		return -1, 0
	case MotionRight:
		return 1, 0
	case MotionUp:
		return 0, -1
	case MotionDown:
		return 0, 1
	}
	return 0, 0
}

func (op MotionOp) String() string {
	switch op {
	case MotionLeft:
		return "left"
	case MotionRight:
		return "right"
	case MotionUp:
		return "up"
	case MotionDown:
		return "down"
	}
	return "none"
}
