package volcanium

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAgentAdvance(t *testing.T) {
	tests := []struct {
		in       Agent
		want     Agent
		wantDone bool
	}{
		{in: Agent{At: 3}, want: Agent{At: 3}},
		{in: Agent{At: 3, Remaining: 2}, want: Agent{At: 3, Remaining: 1}},
		{in: Agent{At: 3, Remaining: 1}, want: Agent{At: 3}, wantDone: true},
	}
	for _, tt := range tests {
		got, done := tt.in.advance()
		assert.Equal(t, tt.want, got, "%v.advance()", tt.in)
		assert.Equal(t, tt.wantDone, done, "%v.advance() done", tt.in)
	}
}

func TestAgentString(t *testing.T) {
	assert.Equal(t, "@2", Agent{At: 2}.String())
	assert.Equal(t, "->4(3)", Agent{At: 4, Remaining: 3}.String())
	assert.False(t, Agent{At: 1}.Moving())
}
