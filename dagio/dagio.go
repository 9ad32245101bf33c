package dagio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mecenum/dagmec/graph"
)

// ReadGraph parses the <n> <m> header and m edge lines from r. When
// undirected is true, each parsed pair (u,v) adds both u→v and v→u;
// otherwise only the literal u→v is added.
func ReadGraph(r io.Reader, undirected bool) (*graph.Graph, error) {
	scanner := bufio.NewScanner(r)

	n, m, err := readHeader(scanner)
	if err != nil {
		return nil, err
	}

	g := graph.NewGraph(n)
	parsed := 0
	for parsed < m && scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		u, v, err := parsePair(line)
		if err != nil {
			return nil, err
		}
		if err := g.AddEdge(u, v); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
		}
		if undirected {
			if err := g.AddEdge(v, u); err != nil {
				return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
			}
		}
		parsed++
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if parsed != m {
		return nil, fmt.Errorf("%w: expected %d edge lines, got %d", ErrMalformed, m, parsed)
	}
	return g, nil
}

func readHeader(scanner *bufio.Scanner) (n, m int, err error) {
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 2 {
			return 0, 0, fmt.Errorf("%w: header must be \"<n> <m>\"", ErrMalformed)
		}
		n, err = strconv.Atoi(fields[0])
		if err != nil {
			return 0, 0, fmt.Errorf("%w: n: %v", ErrMalformed, err)
		}
		m, err = strconv.Atoi(fields[1])
		if err != nil {
			return 0, 0, fmt.Errorf("%w: m: %v", ErrMalformed, err)
		}
		return n, m, nil
	}
	if err := scanner.Err(); err != nil {
		return 0, 0, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return 0, 0, fmt.Errorf("%w: empty input", ErrMalformed)
}

func parsePair(line string) (u, v int, err error) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return 0, 0, fmt.Errorf("%w: edge line must be \"<u> <v>\", got %q", ErrMalformed, line)
	}
	u, err = strconv.Atoi(fields[0])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: u: %v", ErrMalformed, err)
	}
	v, err = strconv.Atoi(fields[1])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: v: %v", ErrMalformed, err)
	}
	return u, v, nil
}

// WriteGraph writes g's header and every directed edge, one per line,
// in lexicographic (u,v) order.
func WriteGraph(w io.Writer, g *graph.Graph) error {
	edges := g.Edges()
	if _, err := fmt.Fprintf(w, "%d %d\n\n", g.NVertices(), len(edges)); err != nil {
		return err
	}
	for _, e := range edges {
		if _, err := fmt.Fprintf(w, "%d %d\n", e.From, e.To); err != nil {
			return err
		}
	}
	return nil
}
