package writer

// State is the state of a Writer.
type State int

//go:generate go tool stringer -linecomment -type=State
const (
	STATE_INIT           = State(0) // init
	STATE_HEADER_WRITTEN = State(1) // header-written
	STATE_PROCESSING     = State(2) // processing
	STATE_DONE           = State(3) // done
)
