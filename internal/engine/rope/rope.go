// Package rope implements an immutable rope over UTF-8 text. The tree
// keeps byte, char, UTF-16 and newline counts per node, so conversions
// between those coordinate spaces run in O(log n). Because nodes are
// never mutated in place, a Rope value is a zero-cost snapshot: keep a
// copy before an edit and you can restore it by assignment.
package rope

import "strings"

// Rope is an immutable text value. The zero value is an empty rope.
type Rope struct {
	root *node
}

// New returns an empty rope.
func New() Rope { return Rope{} }

// FromString builds a rope from s.
func FromString(s string) Rope {
	return Rope{root: buildNode(s)}
}

// Len returns the length in bytes.
func (r Rope) Len() int {
	if r.root == nil {
		return 0
	}
	return r.root.summary.Bytes
}

// CharLen returns the length in Unicode scalars.
func (r Rope) CharLen() int {
	if r.root == nil {
		return 0
	}
	return r.root.summary.Chars
}

// UTF16Len returns the length in UTF-16 code units.
func (r Rope) UTF16Len() int {
	if r.root == nil {
		return 0
	}
	return r.root.summary.UTF16
}

// NewlineCount returns the number of '\n' bytes.
func (r Rope) NewlineCount() int {
	if r.root == nil {
		return 0
	}
	return r.root.summary.Newlines
}

// String materializes the full text.
func (r Rope) String() string {
	if r.root == nil {
		return ""
	}
	var b strings.Builder
	b.Grow(r.root.summary.Bytes)
	appendNode(&b, r.root)
	return b.String()
}

func appendNode(b *strings.Builder, n *node) {
	if n.isLeaf() {
		b.WriteString(n.text)
		return
	}
	for _, c := range n.children {
		appendNode(b, c)
	}
}

// Slice returns the text in the byte range [start, end). Offsets are
// clamped to the rope and must fall on rune boundaries.
func (r Rope) Slice(start, end int) string {
	n := r.Len()
	if start < 0 {
		start = 0
	}
	if end > n {
		end = n
	}
	if start >= end {
		return ""
	}
	var b strings.Builder
	b.Grow(end - start)
	sliceNode(&b, r.root, start, end)
	return b.String()
}

func sliceNode(b *strings.Builder, n *node, start, end int) {
	if n == nil || start >= end {
		return
	}
	if n.isLeaf() {
		if start < 0 {
			start = 0
		}
		if end > len(n.text) {
			end = len(n.text)
		}
		b.WriteString(n.text[start:end])
		return
	}
	acc := 0
	for _, c := range n.children {
		cb := c.summary.Bytes
		if acc+cb > start && acc < end {
			sliceNode(b, c, start-acc, end-acc)
		}
		acc += cb
		if acc >= end {
			return
		}
	}
}

// Insert returns a rope with s inserted at the given byte offset.
func (r Rope) Insert(byteOff int, s string) Rope {
	if s == "" {
		return r
	}
	left, right := splitNode(r.root, byteOff)
	return Rope{root: concat(concat(left, buildNode(s)), right)}
}

// Delete returns a rope with the byte range [start, end) removed.
func (r Rope) Delete(start, end int) Rope {
	if start >= end {
		return r
	}
	left, rest := splitNode(r.root, start)
	_, right := splitNode(rest, end-start)
	return Rope{root: concat(left, right)}
}

// Replace returns a rope with [start, end) replaced by s.
func (r Rope) Replace(start, end int, s string) Rope {
	left, rest := splitNode(r.root, start)
	_, right := splitNode(rest, end-start)
	return Rope{root: concat(concat(left, buildNode(s)), right)}
}

// Split divides the rope at a byte offset.
func (r Rope) Split(byteOff int) (Rope, Rope) {
	left, right := splitNode(r.root, byteOff)
	return Rope{root: left}, Rope{root: right}
}

// Concat joins two ropes.
func (r Rope) Concat(other Rope) Rope {
	return Rope{root: concat(r.root, other.root)}
}

// SummaryTo returns the metrics of the first byteOff bytes.
func (r Rope) SummaryTo(byteOff int) Summary {
	if r.root == nil || byteOff <= 0 {
		return Summary{}
	}
	if byteOff >= r.root.summary.Bytes {
		return r.root.summary
	}
	return summaryAt(r.root, byteOff)
}

// ByteToChar converts a byte offset to a char offset.
func (r Rope) ByteToChar(byteOff int) int {
	return r.SummaryTo(byteOff).Chars
}

// CharToByte converts a char offset to a byte offset.
func (r Rope) CharToByte(charOff int) int {
	if r.root == nil || charOff <= 0 {
		return 0
	}
	if charOff >= r.root.summary.Chars {
		return r.root.summary.Bytes
	}
	return byteForChar(r.root, charOff)
}

// ByteToUTF16 converts a byte offset to a UTF-16 code unit offset.
func (r Rope) ByteToUTF16(byteOff int) int {
	return r.SummaryTo(byteOff).UTF16
}

// UTF16ToByte converts a UTF-16 code unit offset to a byte offset. An
// offset inside a surrogate pair resolves to the pair's start.
func (r Rope) UTF16ToByte(off int) int {
	if r.root == nil || off <= 0 {
		return 0
	}
	if off >= r.root.summary.UTF16 {
		return r.root.summary.Bytes
	}
	return byteForUTF16(r.root, off)
}

// LineStartByte returns the byte offset where line y begins. Line 0
// starts at offset 0; line y starts just past the yth newline. A line
// index past the last newline clamps to Len.
func (r Rope) LineStartByte(y int) int {
	if r.root == nil || y <= 0 {
		return 0
	}
	if y > r.root.summary.Newlines {
		return r.root.summary.Bytes
	}
	return byteAfterNewline(r.root, y)
}

// LineOfByte returns the line index containing the byte offset, that is
// the number of newlines strictly before it.
func (r Rope) LineOfByte(byteOff int) int {
	return r.SummaryTo(byteOff).Newlines
}
