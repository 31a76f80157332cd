package lsp

import (
	"testing"

	"github.com/tidwall/gjson"

	"github.com/tcayer/quire/internal/engine/buffer"
	"github.com/tcayer/quire/internal/engine/cursor"
)

func pos(y, x int) cursor.Position { return cursor.Position{Y: y, X: x} }

func TestFromBuffer(t *testing.T) {
	// 😀 is one char but two UTF-16 units
	b := buffer.RawBufferFromString("a😀b\n日本")
	tests := []struct {
		p    cursor.Position
		want Position
	}{
		{pos(0, 0), Position{0, 0}},
		{pos(0, 1), Position{0, 1}},
		{pos(0, 2), Position{0, 3}}, // after the surrogate pair
		{pos(0, 3), Position{0, 4}},
		{pos(1, 0), Position{1, 0}},
		{pos(1, 2), Position{1, 2}}, // BMP chars count once
	}
	for _, tt := range tests {
		if got := FromBuffer(b, tt.p); got != tt.want {
			t.Errorf("FromBuffer(%v) = %+v, want %+v", tt.p, got, tt.want)
		}
	}
}

func TestToBufferRoundTrip(t *testing.T) {
	b := buffer.RawBufferFromString("a😀b\n日本x")
	positions := []cursor.Position{
		pos(0, 0), pos(0, 1), pos(0, 2), pos(0, 3), pos(1, 0), pos(1, 3),
	}
	for _, p := range positions {
		if got := ToBuffer(b, FromBuffer(b, p)); got != p {
			t.Errorf("round trip %v = %v", p, got)
		}
	}
}

func TestToBufferClampsAndSplitsSurrogates(t *testing.T) {
	b := buffer.RawBufferFromString("a😀b\nx")
	// character 2 lands inside the surrogate pair: resolve to its start
	if got := ToBuffer(b, Position{0, 2}); got != pos(0, 1) {
		t.Errorf("mid-surrogate = %v, want (0,1)", got)
	}
	// character far past the line end clamps to it
	if got := ToBuffer(b, Position{0, 99}); got != pos(0, 3) {
		t.Errorf("past line end = %v, want (0,3)", got)
	}
}

func TestMarshalPositionJSON(t *testing.T) {
	got := MarshalPosition(Position{Line: 3, Character: 7})
	want := `{"line":3,"character":7}`
	if got != want {
		t.Errorf("MarshalPosition = %s, want %s", got, want)
	}
	back, err := UnmarshalPosition(got)
	if err != nil || back != (Position{3, 7}) {
		t.Errorf("UnmarshalPosition = %+v, %v", back, err)
	}
}

func TestUnmarshalPositionRejectsMissingFields(t *testing.T) {
	if _, err := UnmarshalPosition(`{"line":1}`); err == nil {
		t.Error("missing character accepted")
	}
}

func TestMarshalRangeRoundTrip(t *testing.T) {
	r := Range{Start: Position{0, 1}, End: Position{2, 0}}
	back, err := UnmarshalRange(MarshalRange(r))
	if err != nil || back != r {
		t.Errorf("range round trip = %+v, %v", back, err)
	}
}

func TestMarshalContentChange(t *testing.T) {
	pre := buffer.RawBufferFromString("a😀bcd")
	ch := buffer.Change{
		Range:      cursor.NewRange(pos(0, 2), pos(0, 4)),
		ByteSpan:   buffer.ByteSpan{Start: 5, End: 7},
		NewPos:     pos(0, 3),
		InsertText: "X",
	}
	data := MarshalContentChange(pre, ch)
	r, err := UnmarshalRange(gjson.Get(data, "range").Raw)
	if err != nil {
		t.Fatal(err)
	}
	if r.Start != (Position{0, 3}) || r.End != (Position{0, 5}) {
		t.Errorf("change range = %+v", r)
	}
	if got := gjson.Get(data, "rangeLength").Int(); got != 2 {
		t.Errorf("rangeLength = %d, want 2", got)
	}
	if got := gjson.Get(data, "text").String(); got != "X" {
		t.Errorf("text = %q", got)
	}
}
