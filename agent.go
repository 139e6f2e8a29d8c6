package volcanium

import "fmt"

// Agent is a mover in the Network. It is either stationary at a valve or
// walking to one.
type Agent struct {
	// At is the valve index the agent stands at, or is walking to when
	// Remaining > 0.
	At int
	// Remaining is the number of minutes left until the agent is done at
	// At. Zero means stationary.
	Remaining int
}

func (a Agent) Moving() bool {
	return a.Remaining > 0
}

// advance moves the agent forward one minute. It reports whether the agent
// finished its trip during this minute.
func (a Agent) advance() (Agent, bool) {
	if a.Remaining == 0 {
		return a, false
	}
	a.Remaining--
	return a, a.Remaining == 0
}

func (a Agent) String() string {
	if a.Moving() {
		return fmt.Sprintf("->%d(%d)", a.At, a.Remaining)
	}
	return fmt.Sprintf("@%d", a.At)
}
