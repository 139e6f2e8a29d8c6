package volcanium

import (
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"
)

// Number is a type that can be used in math functions.
type Number interface {
	constraints.Float | constraints.Integer
}

// Max returns the largest of the numbers, or the zero value if there are none.
func Max[T Number](nums ...T) T {
	var out T
	for i, v := range nums {
		if i == 0 || v > out {
			out = v
		}
	}
	return out
}

// Int returns the int value of the string.
func Int(s string) (int, error) {
	return strconv.Atoi(strings.TrimSpace(s))
}
