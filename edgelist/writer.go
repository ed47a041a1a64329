package edgelist

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/thanhbinhnd2002/multi-agent-streamlit/core"
)

// Header is the first line emitted by Write.
const Header = "from\tto\tdirection\tweight"

// Write emits every edge record of g as a directed record (flag 1), so that
// reading the output back reproduces the same records in the same order.
func Write(w io.Writer, g *core.Graph) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintln(bw, Header); err != nil {
		return err
	}
	for _, e := range g.Edges() {
		weight := strconv.FormatFloat(e.Weight, 'g', -1, 64)
		if _, err := fmt.Fprintf(bw, "%s\t%s\t1\t%s\n", e.From, e.To, weight); err != nil {
			return err
		}
	}

	return bw.Flush()
}
