package rope

import (
	"math/rand"
	"strings"
	"testing"
	"testing/quick"
	"unicode/utf8"
)

func TestFromString(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"ascii", "hello world"},
		{"multiline", "line1\nline2\nline3"},
		{"unicode", "héllo wörld"},
		{"cjk", "日本語のテキスト"},
		{"emoji", "a😀b😀c"},
		{"large", strings.Repeat("0123456789\n", 500)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := FromString(tt.input)
			if got := r.String(); got != tt.input {
				t.Errorf("String() = %q, want %q", got, tt.input)
			}
			if got := r.Len(); got != len(tt.input) {
				t.Errorf("Len() = %d, want %d", got, len(tt.input))
			}
			if got := r.CharLen(); got != utf8.RuneCountInString(tt.input) {
				t.Errorf("CharLen() = %d, want %d", got, utf8.RuneCountInString(tt.input))
			}
			if got := r.NewlineCount(); got != strings.Count(tt.input, "\n") {
				t.Errorf("NewlineCount() = %d, want %d", got, strings.Count(tt.input, "\n"))
			}
		})
	}
}

func TestUTF16Len(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int
	}{
		{"empty", "", 0},
		{"ascii", "abc", 3},
		{"bmp", "日本語", 3},
		{"astral", "😀", 2},
		{"mixed", "a😀b", 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FromString(tt.input).UTF16Len(); got != tt.want {
				t.Errorf("UTF16Len() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestInsert(t *testing.T) {
	tests := []struct {
		name   string
		base   string
		off    int
		insert string
		want   string
	}{
		{"at start", "world", 0, "hello ", "hello world"},
		{"at end", "hello", 5, " world", "hello world"},
		{"middle", "hd", 1, "ello worl", "hello world"},
		{"into empty", "", 0, "abc", "abc"},
		{"empty insert", "abc", 1, "", "abc"},
		{"unicode", "日語", 3, "本", "日本語"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FromString(tt.base).Insert(tt.off, tt.insert)
			if got.String() != tt.want {
				t.Errorf("Insert = %q, want %q", got.String(), tt.want)
			}
		})
	}
}

func TestDelete(t *testing.T) {
	tests := []struct {
		name       string
		base       string
		start, end int
		want       string
	}{
		{"from start", "hello world", 0, 6, "world"},
		{"from end", "hello world", 5, 11, "hello"},
		{"middle", "hello cruel world", 5, 11, "hello world"},
		{"all", "abc", 0, 3, ""},
		{"empty range", "abc", 1, 1, "abc"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FromString(tt.base).Delete(tt.start, tt.end)
			if got.String() != tt.want {
				t.Errorf("Delete = %q, want %q", got.String(), tt.want)
			}
		})
	}
}

func TestReplace(t *testing.T) {
	r := FromString("hello world")
	got := r.Replace(6, 11, "rope")
	if got.String() != "hello rope" {
		t.Errorf("Replace = %q, want %q", got.String(), "hello rope")
	}
	// original is untouched
	if r.String() != "hello world" {
		t.Errorf("original mutated: %q", r.String())
	}
}

func TestSlice(t *testing.T) {
	s := strings.Repeat("0123456789\n", 100)
	r := FromString(s)
	tests := []struct {
		name       string
		start, end int
	}{
		{"head", 0, 10},
		{"tail", len(s) - 10, len(s)},
		{"cross chunks", 250, 600},
		{"whole", 0, len(s)},
		{"empty", 5, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Slice(tt.start, tt.end); got != s[tt.start:tt.end] {
				t.Errorf("Slice(%d, %d) = %q, want %q", tt.start, tt.end, got, s[tt.start:tt.end])
			}
		})
	}
}

func TestSplitConcat(t *testing.T) {
	s := strings.Repeat("abcdefghij", 200)
	r := FromString(s)
	for _, off := range []int{0, 1, 100, 999, len(s)} {
		left, right := r.Split(off)
		if left.String() != s[:off] {
			t.Errorf("Split(%d) left = %d bytes, want %d", off, left.Len(), off)
		}
		if right.String() != s[off:] {
			t.Errorf("Split(%d) right = %d bytes, want %d", off, right.Len(), len(s)-off)
		}
		if got := left.Concat(right).String(); got != s {
			t.Errorf("Concat after Split(%d) lost text", off)
		}
	}
}

func TestCharByteConversions(t *testing.T) {
	s := "aé日😀b\nc"
	r := FromString(s)
	byteOff := 0
	charOff := 0
	for _, ru := range s {
		if got := r.CharToByte(charOff); got != byteOff {
			t.Errorf("CharToByte(%d) = %d, want %d", charOff, got, byteOff)
		}
		if got := r.ByteToChar(byteOff); got != charOff {
			t.Errorf("ByteToChar(%d) = %d, want %d", byteOff, got, charOff)
		}
		byteOff += utf8.RuneLen(ru)
		charOff++
	}
	if got := r.CharToByte(charOff); got != len(s) {
		t.Errorf("CharToByte(end) = %d, want %d", got, len(s))
	}
}

func TestLineStartByte(t *testing.T) {
	r := FromString("ab\ncde\n\nf")
	tests := []struct {
		line int
		want int
	}{
		{0, 0},
		{1, 3},
		{2, 7},
		{3, 8},
		{4, 9}, // past last newline clamps to Len
	}
	for _, tt := range tests {
		if got := r.LineStartByte(tt.line); got != tt.want {
			t.Errorf("LineStartByte(%d) = %d, want %d", tt.line, got, tt.want)
		}
	}
	if got := r.LineOfByte(4); got != 1 {
		t.Errorf("LineOfByte(4) = %d, want 1", got)
	}
	if got := r.LineOfByte(8); got != 3 {
		t.Errorf("LineOfByte(8) = %d, want 3", got)
	}
}

func TestSnapshotIsolation(t *testing.T) {
	r := FromString(strings.Repeat("x", 2000))
	snap := r
	r2 := r.Insert(1000, "INSERTED")
	if snap.Len() != 2000 {
		t.Errorf("snapshot changed: Len = %d", snap.Len())
	}
	if r2.Len() != 2008 {
		t.Errorf("edited rope Len = %d, want 2008", r2.Len())
	}
	if !strings.Contains(r2.String(), "INSERTED") {
		t.Error("edit not visible in new rope")
	}
}

func TestChunksAt(t *testing.T) {
	s := strings.Repeat("0123456789\n", 300)
	r := FromString(s)
	for _, start := range []int{0, 11, 256, 1000, len(s) - 1, len(s)} {
		var b strings.Builder
		it := r.ChunksAt(start)
		first := true
		for {
			c, ok := it.Next()
			if !ok {
				break
			}
			if first {
				if c.StartByte != start {
					t.Errorf("ChunksAt(%d) first StartByte = %d", start, c.StartByte)
				}
				if c.StartChar != utf8.RuneCountInString(s[:start]) {
					t.Errorf("ChunksAt(%d) first StartChar = %d", start, c.StartChar)
				}
				if c.StartLine != strings.Count(s[:start], "\n") {
					t.Errorf("ChunksAt(%d) first StartLine = %d", start, c.StartLine)
				}
				first = false
			}
			b.WriteString(c.Text)
		}
		if b.String() != s[start:] {
			t.Errorf("ChunksAt(%d) streamed %d bytes, want %d", start, b.Len(), len(s)-start)
		}
	}
}

func TestRandomEditsMatchString(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	ref := "seed text with\nsome lines\n"
	r := FromString(ref)
	alphabet := []string{"a", "Z", "\n", "日", "😀", "word ", ""}
	for i := 0; i < 500; i++ {
		if rng.Intn(2) == 0 || len(ref) == 0 {
			off := randomBoundary(rng, ref)
			ins := alphabet[rng.Intn(len(alphabet))]
			r = r.Insert(off, ins)
			ref = ref[:off] + ins + ref[off:]
		} else {
			start := randomBoundary(rng, ref)
			end := randomBoundary(rng, ref)
			if start > end {
				start, end = end, start
			}
			r = r.Delete(start, end)
			ref = ref[:start] + ref[end:]
		}
		if r.String() != ref {
			t.Fatalf("divergence at step %d", i)
		}
		if r.CharLen() != utf8.RuneCountInString(ref) {
			t.Fatalf("CharLen divergence at step %d", i)
		}
	}
}

func randomBoundary(rng *rand.Rand, s string) int {
	if len(s) == 0 {
		return 0
	}
	off := rng.Intn(len(s) + 1)
	for off > 0 && off < len(s) && s[off]&0xc0 == 0x80 {
		off--
	}
	return off
}

func TestSummaryMonoid(t *testing.T) {
	f := func(a, b string) bool {
		got := computeSummary(a).Add(computeSummary(b))
		want := computeSummary(a + b)
		return got == want
	}
	if err := quick.Check(f, nil); err != nil {
		t.Error(err)
	}
}
