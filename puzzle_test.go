package volcanium

import (
	"context"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSample(t *testing.T) {
	tests := []struct {
		comment string
		want    Sample
	}{
		{
			comment: `/*
want=1

some-input
*/`,
			want: Sample{
				Want: "1",
				Input: `some-input
`,
			},
		},
		{
			comment: `/*
want=1234

multi-line-input
other-line
other-line-2
*/`,
			want: Sample{
				Want: "1234",
				Input: `multi-line-input
other-line
other-line-2
`,
			},
		},
		{
			comment: `// want=1707`,
			want:    Sample{Want: "1707"},
		},
	}

	for _, tt := range tests {
		got, ok := parseSample(tt.comment)
		require.True(t, ok, "parseSample(%q)", tt.comment)
		assert.Equal(t, tt.want, got)
	}

	_, ok := parseSample("// just a comment")
	assert.False(t, ok)
}

func TestExtractSamples(t *testing.T) {
	src := []byte(`package main

/*
want=1651

` + sampleInput + `*/
func D16p1() {}

// want=1707
func D16p2() {}

// D16p3 has no sample.
func D16p3() {}
`)
	samples, err := ExtractSamples(src)
	require.NoError(t, err)
	require.Len(t, samples, 2)
	assert.Equal(t, Sample{Want: "1651", Input: sampleInput}, samples["D16p1"])
	assert.Equal(t, Sample{Want: "1707", Input: sampleInput}, samples["D16p2"])

	_, err = ExtractSamples([]byte("not go"))
	assert.Error(t, err)
}

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

func TestPuzzleInput(t *testing.T) {
	dir := t.TempDir()
	var fetches int
	p := &Puzzle{
		Year:    2022,
		Day:     16,
		Dir:     dir,
		Session: "s3cret",
		Client: &http.Client{Transport: roundTripFunc(func(r *http.Request) (*http.Response, error) {
			fetches++
			assert.Equal(t, "https://adventofcode.com/2022/day/16/input", r.URL.String())
			c, err := r.Cookie("session")
			require.NoError(t, err)
			assert.Equal(t, "s3cret", c.Value)
			return &http.Response{
				StatusCode: http.StatusOK,
				Status:     "200 OK",
				Body:       io.NopCloser(strings.NewReader(sampleInput)),
				Request:    r,
			}, nil
		})},
	}

	for i := 0; i < 2; i++ {
		b, err := p.Input(context.Background())
		require.NoError(t, err)
		assert.Equal(t, sampleInput, string(b))
	}
	assert.Equal(t, 1, fetches, "second read comes from the cache")

	cached, err := os.ReadFile(filepath.Join(dir, "2022", "16.input"))
	require.NoError(t, err)
	assert.Equal(t, sampleInput, string(cached))
}

func TestPuzzleInputBadStatus(t *testing.T) {
	p := &Puzzle{
		Year:    2022,
		Day:     16,
		Dir:     t.TempDir(),
		Session: "x",
		Client: &http.Client{Transport: roundTripFunc(func(r *http.Request) (*http.Response, error) {
			return &http.Response{
				StatusCode: http.StatusBadRequest,
				Status:     "400 Bad Request",
				Body:       io.NopCloser(strings.NewReader("")),
				Request:    r,
			}, nil
		})},
	}
	_, err := p.Input(context.Background())
	assert.ErrorContains(t, err, "400")
}
