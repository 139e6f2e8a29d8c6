package main

import "github.com/maisem/volcanium"

/*
want=1651

Valve AA has flow rate=0; tunnels lead to valves DD, II, BB
Valve BB has flow rate=13; tunnels lead to valves CC, AA
Valve CC has flow rate=2; tunnels lead to valves DD, BB
Valve DD has flow rate=20; tunnels lead to valves CC, AA, EE
Valve EE has flow rate=3; tunnels lead to valves FF, DD
Valve FF has flow rate=0; tunnels lead to valves EE, GG
Valve GG has flow rate=0; tunnels lead to valves FF, HH
Valve HH has flow rate=22; tunnel leads to valve GG
Valve II has flow rate=0; tunnels lead to valves AA, JJ
Valve JJ has flow rate=21; tunnel leads to valve II
*/
func D16p1() []volcanium.Option {
	return []volcanium.Option{
		volcanium.WithMinutes(30),
		volcanium.WithAgents(1),
	}
}

// want=1707
func D16p2() []volcanium.Option {
	return []volcanium.Option{
		volcanium.WithMinutes(26),
		volcanium.WithAgents(2),
	}
}

var parts = []struct {
	name string
	opts func() []volcanium.Option
}{
	{"D16p1", D16p1},
	{"D16p2", D16p2},
}
