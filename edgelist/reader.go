package edgelist

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/thanhbinhnd2002/multi-agent-streamlit/core"
)

const (
	fieldCount  = 4
	undirected  = 0
	maxLineSize = 1 << 20
)

// Read parses an edge list from r. The first line is a header and is
// discarded unread. Blank lines are skipped.
func Read(r io.Reader) (*core.Graph, error) {
	g := core.NewGraph()
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	line := 0
	for sc.Scan() {
		line++
		if line == 1 {
			continue
		}
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		if err := addRecord(g, line, text); err != nil {
			return nil, err
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("edgelist: read: %w", err)
	}

	return g, nil
}

// ReadFile opens path and parses it with Read.
func ReadFile(path string) (*core.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("edgelist: %w", err)
	}
	defer f.Close()

	g, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return g, nil
}

// addRecord validates one data line and stores its edge record(s).
func addRecord(g *core.Graph, line int, text string) error {
	fields := strings.Split(text, "\t")
	if len(fields) != fieldCount {
		return &ParseError{Line: line, Reason: fmt.Sprintf("want %d tab-separated fields, got %d", fieldCount, len(fields))}
	}
	from, to := fields[0], fields[1]
	if from == "" || to == "" {
		return &ParseError{Line: line, Reason: "empty node id"}
	}
	direction, err := strconv.Atoi(strings.TrimSpace(fields[2]))
	if err != nil {
		return &ParseError{Line: line, Reason: "direction flag is not an integer", Err: err}
	}
	weight, err := strconv.ParseFloat(strings.TrimSpace(fields[3]), 64)
	if err != nil {
		return &ParseError{Line: line, Reason: "weight is not a number", Err: err}
	}
	if math.IsNaN(weight) || math.IsInf(weight, 0) {
		return &ParseError{Line: line, Reason: "weight must be finite"}
	}

	if direction == undirected {
		err = g.AddBidirectional(from, to, weight)
	} else {
		_, err = g.AddEdge(from, to, weight)
	}
	if err != nil {
		return &ParseError{Line: line, Reason: "cannot add edge", Err: err}
	}

	return nil
}
