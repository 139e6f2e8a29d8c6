package volcanium

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strings"
)

// Valve is a valve as it appears in the puzzle input.
type Valve struct {
	Name    string
	Rate    int
	Tunnels []string
}

var valveRx = regexp.MustCompile(`^Valve (\w+) has flow rate=(-?\d+); tunnels? leads? to valves? (.*)$`)

// ParseValve parses a single line such as
//
//	Valve AA has flow rate=0; tunnels lead to valves DD, II, BB
func ParseValve(line string) (Valve, error) {
	m := valveRx.FindStringSubmatch(strings.TrimSpace(line))
	if m == nil {
		return Valve{}, fmt.Errorf("%w: %q", ErrMalformedLine, line)
	}
	rate, err := Int(m[2])
	if err != nil {
		return Valve{}, fmt.Errorf("%w: %q: %v", ErrMalformedLine, line, err)
	}
	v := Valve{
		Name: m[1],
		Rate: rate,
	}
	for _, t := range strings.Split(m[3], ",") {
		if t = strings.TrimSpace(t); t != "" {
			v.Tunnels = append(v.Tunnels, t)
		}
	}
	return v, nil
}

// ParseValves parses one valve per line, skipping blank lines. The
// returned records keep input order.
func ParseValves(r io.Reader) ([]Valve, error) {
	var out []Valve
	s := bufio.NewScanner(r)
	y := 0
	for s.Scan() {
		y++
		line := s.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		v, err := ParseValve(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", y, err)
		}
		out = append(out, v)
	}
	if err := s.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
