// Command volcanium finds the most pressure that can be released from a
// network of valves.
package main

import (
	_ "embed"
)

//go:embed samples.go
var samplesSource []byte

func main() {
	Execute()
}
