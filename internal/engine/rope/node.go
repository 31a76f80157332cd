package rope

const (
	// maxChunkBytes caps leaf size. Leaves split only on rune boundaries.
	maxChunkBytes = 256

	// maxChildren caps internal node fanout.
	maxChildren = 8
)

// node is an immutable tree node. Leaves (height 0) carry text, internal
// nodes carry children. All mutating operations build new nodes, so any
// previously obtained root remains a valid snapshot.
type node struct {
	summary  Summary
	height   int
	text     string
	children []*node
}

func (n *node) isLeaf() bool { return n.height == 0 }

func newLeaf(text string) *node {
	return &node{summary: computeSummary(text), text: text}
}

func newInternal(children []*node) *node {
	if len(children) == 1 {
		return children[0]
	}
	n := &node{height: children[0].height + 1, children: children}
	for _, c := range children {
		n.summary = n.summary.Add(c.summary)
	}
	return n
}

// buildNode constructs a balanced tree from s, splitting into chunks on
// rune boundaries.
func buildNode(s string) *node {
	if len(s) == 0 {
		return nil
	}
	var leaves []*node
	for len(s) > 0 {
		end := len(s)
		if end > maxChunkBytes {
			end = maxChunkBytes
			// back up to a rune boundary
			for end > 0 && s[end]&0xc0 == 0x80 {
				end--
			}
			if end == 0 {
				end = len(s)
			}
		}
		leaves = append(leaves, newLeaf(s[:end]))
		s = s[end:]
	}
	return buildFromLevel(leaves)
}

func buildFromLevel(nodes []*node) *node {
	for len(nodes) > 1 {
		var next []*node
		for i := 0; i < len(nodes); i += maxChildren {
			end := i + maxChildren
			if end > len(nodes) {
				end = len(nodes)
			}
			next = append(next, newInternal(nodes[i:end:end]))
		}
		nodes = next
	}
	return nodes[0]
}

// concat joins two trees, rebalancing by height. Either side may be nil.
func concat(a, b *node) *node {
	switch {
	case a == nil:
		return b
	case b == nil:
		return a
	}
	if a.height == b.height {
		if a.isLeaf() {
			if len(a.text)+len(b.text) <= maxChunkBytes {
				return newLeaf(a.text + b.text)
			}
			return newInternal([]*node{a, b})
		}
		if len(a.children)+len(b.children) <= maxChildren {
			kids := make([]*node, 0, len(a.children)+len(b.children))
			kids = append(kids, a.children...)
			kids = append(kids, b.children...)
			return newInternal(kids)
		}
		return newInternal([]*node{a, b})
	}
	if a.height > b.height {
		last := len(a.children) - 1
		merged := concat(a.children[last], b)
		return rebuildWith(a.children[:last], merged, true)
	}
	merged := concat(a, b.children[0])
	return rebuildWith(b.children[1:], merged, false)
}

// rebuildWith reassembles an internal node from siblings plus a merged
// subtree that may have grown one level taller.
func rebuildWith(siblings []*node, merged *node, atEnd bool) *node {
	var kids []*node
	if len(siblings) > 0 && merged.height == siblings[0].height+1 && !merged.isLeaf() {
		// merged grew: splice its children in at this level
		kids = make([]*node, 0, len(siblings)+len(merged.children))
		if atEnd {
			kids = append(kids, siblings...)
			kids = append(kids, merged.children...)
		} else {
			kids = append(kids, merged.children...)
			kids = append(kids, siblings...)
		}
	} else {
		kids = make([]*node, 0, len(siblings)+1)
		if atEnd {
			kids = append(kids, siblings...)
			kids = append(kids, merged)
		} else {
			kids = append(kids, merged)
			kids = append(kids, siblings...)
		}
	}
	if len(kids) <= maxChildren {
		return newInternal(kids)
	}
	mid := (len(kids) + 1) / 2
	return newInternal([]*node{newInternal(kids[:mid:mid]), newInternal(kids[mid:])})
}

// splitNode divides the tree at a byte offset. The offset must fall on a
// rune boundary; callers derive offsets from char positions so this holds.
func splitNode(n *node, off int) (*node, *node) {
	if n == nil || off <= 0 {
		return nil, n
	}
	if off >= n.summary.Bytes {
		return n, nil
	}
	if n.isLeaf() {
		return newLeaf(n.text[:off]), newLeaf(n.text[off:])
	}
	acc := 0
	for i, c := range n.children {
		if off < acc+c.summary.Bytes {
			cl, cr := splitNode(c, off-acc)
			left := cl
			for j := i - 1; j >= 0; j-- {
				left = concat(n.children[j], left)
			}
			right := cr
			for j := i + 1; j < len(n.children); j++ {
				right = concat(right, n.children[j])
			}
			return left, right
		}
		acc += c.summary.Bytes
	}
	return n, nil
}

// summaryAt returns the combined summary of the first byteOff bytes.
func summaryAt(n *node, byteOff int) Summary {
	var sum Summary
	for n != nil && byteOff > 0 {
		if n.isLeaf() {
			if byteOff >= len(n.text) {
				return sum.Add(n.summary)
			}
			part := n.text[:byteOff]
			return sum.Add(computeSummary(part))
		}
		advanced := false
		for _, c := range n.children {
			if byteOff < c.summary.Bytes {
				n = c
				advanced = true
				break
			}
			sum = sum.Add(c.summary)
			byteOff -= c.summary.Bytes
		}
		if !advanced {
			return sum
		}
	}
	return sum
}

// byteForChar descends to the byte offset of the charOff-th rune.
func byteForChar(n *node, charOff int) int {
	byteOff := 0
	for n != nil {
		if n.isLeaf() {
			return byteOff + charToByteInString(n.text, charOff)
		}
		descended := false
		for _, c := range n.children {
			if charOff < c.summary.Chars {
				n = c
				descended = true
				break
			}
			charOff -= c.summary.Chars
			byteOff += c.summary.Bytes
		}
		if !descended {
			return byteOff
		}
	}
	return byteOff
}

// byteForUTF16 descends to the byte offset of the off-th UTF-16 code unit.
// An offset landing inside a surrogate pair resolves to the pair's start.
func byteForUTF16(n *node, off int) int {
	byteOff := 0
	for n != nil {
		if n.isLeaf() {
			u := 0
			for i, r := range n.text {
				if u >= off {
					return byteOff + i
				}
				if r >= 0x10000 {
					u += 2
				} else {
					u++
				}
			}
			return byteOff + len(n.text)
		}
		descended := false
		for _, c := range n.children {
			if off < c.summary.UTF16 {
				n = c
				descended = true
				break
			}
			off -= c.summary.UTF16
			byteOff += c.summary.Bytes
		}
		if !descended {
			return byteOff
		}
	}
	return byteOff
}

// byteAfterNewline descends to the byte offset just past the nth newline
// (1-indexed). Returns the total length if the tree has fewer newlines.
func byteAfterNewline(n *node, nth int) int {
	if nth <= 0 {
		return 0
	}
	byteOff := 0
	for n != nil {
		if n.isLeaf() {
			i := nthNewlineInString(n.text, nth)
			if i < 0 {
				return byteOff + len(n.text)
			}
			return byteOff + i
		}
		descended := false
		for _, c := range n.children {
			if nth <= c.summary.Newlines {
				n = c
				descended = true
				break
			}
			nth -= c.summary.Newlines
			byteOff += c.summary.Bytes
		}
		if !descended {
			return byteOff
		}
	}
	return byteOff
}
