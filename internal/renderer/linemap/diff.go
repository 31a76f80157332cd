package linemap

import (
	"strconv"
	"strings"

	"github.com/tidwall/sjson"
)

// Hunk is one run of changed lines, addressed in the new text. It
// carries the same fields LoadDiffJSON parses.
type Hunk struct {
	Kind  string
	Line  int
	Count int
}

// DiffLines compares two texts line by line and returns the changed
// runs: "added" and "modified" cover Count lines starting at Line,
// "removed" marks the line a deletion collapsed onto.
func DiffLines(old, new string) []Hunk {
	a := splitLines(old)
	b := splitLines(new)
	ops := diffOps(a, b)

	var hunks []Hunk
	newIdx := 0
	for i := 0; i < len(ops); {
		if ops[i] == editEqual {
			newIdx++
			i++
			continue
		}
		start := newIdx
		dels, ins := 0, 0
		for i < len(ops) && ops[i] != editEqual {
			if ops[i] == editDelete {
				dels++
			} else {
				ins++
				newIdx++
			}
			i++
		}
		switch {
		case ins > 0 && dels > 0:
			hunks = append(hunks, Hunk{Kind: "modified", Line: start, Count: ins})
		case ins > 0:
			hunks = append(hunks, Hunk{Kind: "added", Line: start, Count: ins})
		default:
			line := start
			if line >= len(b) && line > 0 {
				line = len(b) - 1
			}
			hunks = append(hunks, Hunk{Kind: "removed", Line: line, Count: 1})
		}
	}
	return hunks
}

// MarshalHunksJSON renders hunks in the format LoadDiffJSON accepts.
func MarshalHunksJSON(hunks []Hunk) string {
	out := "[]"
	for i, h := range hunks {
		p := strconv.Itoa(i)
		out, _ = sjson.Set(out, p+".kind", h.Kind)
		out, _ = sjson.Set(out, p+".line", h.Line)
		out, _ = sjson.Set(out, p+".count", h.Count)
	}
	return out
}

// LoadDiff replaces the diff flags from comparing base against current.
func (m *Map) LoadDiff(base, current string) error {
	return m.LoadDiffJSON(MarshalHunksJSON(DiffLines(base, current)))
}

// splitLines cuts into content lines; a trailing newline does not open
// an extra line, matching how the buffer counts lines.
func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	lines := strings.Split(s, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

type editKind uint8

const (
	editEqual editKind = iota
	editDelete
	editInsert
)

// diffOps runs Myers diff over the line slices and returns the edit
// script in document order, equal steps included.
func diffOps(a, b []string) []editKind {
	n, m := len(a), len(b)
	switch {
	case n == 0 && m == 0:
		return nil
	case n == 0:
		return repeatOps(editInsert, m)
	case m == 0:
		return repeatOps(editDelete, n)
	}

	maxD := n + m
	off := maxD
	v := make([]int, 2*maxD+1)
	var trace [][]int

outer:
	for d := 0; d <= maxD; d++ {
		trace = append(trace, append([]int(nil), v...))
		for k := -d; k <= d; k += 2 {
			var x int
			if k == -d || (k != d && v[off+k-1] < v[off+k+1]) {
				x = v[off+k+1]
			} else {
				x = v[off+k-1] + 1
			}
			y := x - k
			for x < n && y < m && a[x] == b[y] {
				x++
				y++
			}
			v[off+k] = x
			if x >= n && y >= m {
				break outer
			}
		}
	}

	// walk the trace backwards, then flip into document order
	var rev []editKind
	x, y := n, m
	for d := len(trace) - 1; d >= 0; d-- {
		v := trace[d]
		k := x - y
		var prevK int
		if k == -d || (k != d && v[off+k-1] < v[off+k+1]) {
			prevK = k + 1
		} else {
			prevK = k - 1
		}
		prevX := v[off+prevK]
		prevY := prevX - prevK
		for x > prevX && y > prevY {
			x--
			y--
			rev = append(rev, editEqual)
		}
		if d > 0 {
			if x > prevX {
				x--
				rev = append(rev, editDelete)
			} else if y > prevY {
				y--
				rev = append(rev, editInsert)
			}
		}
	}
	for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
		rev[i], rev[j] = rev[j], rev[i]
	}
	return rev
}

func repeatOps(k editKind, n int) []editKind {
	ops := make([]editKind, n)
	for i := range ops {
		ops[i] = k
	}
	return ops
}
