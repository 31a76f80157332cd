package rope

// Summary holds aggregated metrics for a span of text. Summaries form a
// monoid under Add, which lets the tree answer byte/char/line conversions
// in O(log n) by descending through per-child summaries.
type Summary struct {
	// Bytes is the UTF-8 byte count.
	Bytes int

	// Chars is the Unicode scalar count.
	Chars int

	// UTF16 is the UTF-16 code unit count (LSP boundary).
	UTF16 int

	// Newlines is the number of '\n' bytes.
	Newlines int
}

// Add combines two summaries.
func (s Summary) Add(other Summary) Summary {
	return Summary{
		Bytes:    s.Bytes + other.Bytes,
		Chars:    s.Chars + other.Chars,
		UTF16:    s.UTF16 + other.UTF16,
		Newlines: s.Newlines + other.Newlines,
	}
}

// computeSummary calculates metrics for a string.
func computeSummary(s string) Summary {
	sum := Summary{Bytes: len(s)}
	for _, r := range s {
		sum.Chars++
		if r >= 0x10000 {
			sum.UTF16 += 2
		} else {
			sum.UTF16++
		}
		if r == '\n' {
			sum.Newlines++
		}
	}
	return sum
}

// charToByteInString converts a char offset within s to a byte offset.
// charOff past the end of s clamps to len(s).
func charToByteInString(s string, charOff int) int {
	if charOff <= 0 {
		return 0
	}
	n := 0
	for i := range s {
		if n == charOff {
			return i
		}
		n++
	}
	return len(s)
}

// nthNewlineInString returns the byte index just past the nth newline
// (1-indexed) in s, or -1 if s contains fewer than n newlines.
func nthNewlineInString(s string, n int) int {
	if n <= 0 {
		return -1
	}
	count := 0
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			count++
			if count == n {
				return i + 1
			}
		}
	}
	return -1
}
