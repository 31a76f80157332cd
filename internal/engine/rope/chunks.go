package rope

// Chunk is a contiguous run of text with its starting coordinates in
// every address space the rope tracks.
type Chunk struct {
	Text      string
	StartByte int
	StartChar int
	StartLine int
}

// ChunkIter streams leaf text in document order. It walks the tree with
// an explicit stack, so iteration over the whole rope is O(n) total.
type ChunkIter struct {
	stack     []*node
	nextByte  int
	nextChar  int
	nextLine  int
	skipBytes int
}

// Chunks iterates from the start of the rope.
func (r Rope) Chunks() *ChunkIter {
	return r.ChunksAt(0)
}

// ChunksAt iterates from the chunk containing the byte offset. The first
// chunk is trimmed so its text begins exactly at byteOff, which must fall
// on a rune boundary.
func (r Rope) ChunksAt(byteOff int) *ChunkIter {
	it := &ChunkIter{}
	if r.root == nil || byteOff >= r.root.summary.Bytes {
		return it
	}
	if byteOff < 0 {
		byteOff = 0
	}
	pre := r.SummaryTo(byteOff)
	it.nextByte = byteOff
	it.nextChar = pre.Chars
	it.nextLine = pre.Newlines
	// descend to the leaf containing byteOff, pushing right siblings
	n := r.root
	off := byteOff
	for !n.isLeaf() {
		acc := 0
		for i, c := range n.children {
			if off < acc+c.summary.Bytes {
				for j := len(n.children) - 1; j > i; j-- {
					it.stack = append(it.stack, n.children[j])
				}
				n = c
				off -= acc
				break
			}
			acc += c.summary.Bytes
		}
	}
	it.stack = append(it.stack, n)
	it.skipBytes = off
	return it
}

// Next returns the next chunk, or false when the rope is exhausted.
func (it *ChunkIter) Next() (Chunk, bool) {
	for len(it.stack) > 0 {
		n := it.stack[len(it.stack)-1]
		it.stack = it.stack[:len(it.stack)-1]
		if !n.isLeaf() {
			for j := len(n.children) - 1; j >= 0; j-- {
				it.stack = append(it.stack, n.children[j])
			}
			continue
		}
		text := n.text
		if it.skipBytes > 0 {
			text = text[it.skipBytes:]
			it.skipBytes = 0
		}
		if text == "" {
			continue
		}
		c := Chunk{
			Text:      text,
			StartByte: it.nextByte,
			StartChar: it.nextChar,
			StartLine: it.nextLine,
		}
		sum := computeSummary(text)
		it.nextByte += sum.Bytes
		it.nextChar += sum.Chars
		it.nextLine += sum.Newlines
		return c, true
	}
	return Chunk{}, false
}
