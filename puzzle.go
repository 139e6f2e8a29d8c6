package volcanium

import (
	"context"
	"errors"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"io"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// Sample is an example input and its expected answer, written in a doc
// comment as
//
//	/*
//	want=1651
//
//	Valve AA has flow rate=0; tunnels lead to valves DD, II, BB
//	...
//	*/
type Sample struct {
	Input string
	Want  string
}

var sampleRx = regexp.MustCompile(`(?sm)^\s*want=([^\n]*)(?:\s+(.+\n))?\s*`)

func parseSample(comment string) (Sample, bool) {
	text := strings.TrimPrefix(comment, "//")
	if v, ok := strings.CutPrefix(text, "/*"); ok {
		text = strings.TrimSuffix(v, "*/")
	}
	if m := sampleRx.FindStringSubmatch(text); m != nil {
		return Sample{
			Want:  strings.TrimSpace(m[1]),
			Input: m[2],
		}, true
	}
	return Sample{}, false
}

// ExtractSamples returns the samples in the doc comments of the functions
// in src, keyed by function name. A sample without input reuses the input
// of the one before it.
func ExtractSamples(src []byte) (map[string]Sample, error) {
	fset := token.NewFileSet()
	f, err := parser.ParseFile(fset, "", src, parser.ParseComments)
	if err != nil {
		return nil, fmt.Errorf("parsing source to extract samples: %w", err)
	}
	var lastInput string
	samples := make(map[string]Sample)
	for _, d := range f.Decls {
		fd, ok := d.(*ast.FuncDecl)
		if !ok || fd.Doc == nil {
			continue
		}
		for _, c := range fd.Doc.List {
			s, ok := parseSample(c.Text)
			if !ok {
				continue
			}
			if s.Input == "" {
				s.Input = lastInput
			}
			samples[fd.Name.Name] = s
			lastInput = s.Input
			break
		}
	}
	return samples, nil
}

// Puzzle locates the input of one Advent of Code day.
type Puzzle struct {
	Year, Day int
	// Dir is where inputs are cached, as <Dir>/<Year>/<Day>.input.
	Dir string
	// Session is the adventofcode.com session cookie. If empty it is read
	// from $HOME/keys/aoc.session when a fetch is needed.
	Session string
	Client  *http.Client
}

func (p *Puzzle) inputPath() string {
	return filepath.Join(p.Dir, fmt.Sprint(p.Year), fmt.Sprintf("%d.input", p.Day))
}

// Input returns the cached puzzle input, fetching and caching it first if
// needed.
func (p *Puzzle) Input(ctx context.Context) ([]byte, error) {
	path := p.inputPath()
	b, err := os.ReadFile(path)
	if err == nil {
		return b, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}
	b, err = p.fetch(ctx, fmt.Sprintf("https://adventofcode.com/%d/day/%d/input", p.Year, p.Day))
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return nil, err
	}
	if err := os.WriteFile(path, b, 0644); err != nil {
		return nil, err
	}
	return b, nil
}

func (p *Puzzle) session() (string, error) {
	if p.Session != "" {
		return p.Session, nil
	}
	b, err := os.ReadFile(filepath.Join(os.Getenv("HOME"), "keys", "aoc.session"))
	if err != nil {
		return "", fmt.Errorf("reading session: %w", err)
	}
	return strings.TrimSpace(string(b)), nil
}

func (p *Puzzle) fetch(ctx context.Context, url string) ([]byte, error) {
	session, err := p.session()
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return nil, err
	}
	req.AddCookie(&http.Cookie{Name: "session", Value: session})
	c := p.Client
	if c == nil {
		c = http.DefaultClient
	}
	res, err := c.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("bad status fetching %s: %v", url, res.Status)
	}
	return io.ReadAll(res.Body)
}
