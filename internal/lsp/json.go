package lsp

import (
	"fmt"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/tcayer/quire/internal/engine/buffer"
)

// MarshalPosition renders a Position as LSP JSON:
// {"line":N,"character":M}.
func MarshalPosition(p Position) string {
	out, _ := sjson.Set("", "line", p.Line)
	out, _ = sjson.Set(out, "character", p.Character)
	return out
}

// MarshalRange renders a Range as LSP JSON.
func MarshalRange(r Range) string {
	out, _ := sjson.SetRaw("", "start", MarshalPosition(r.Start))
	out, _ = sjson.SetRaw(out, "end", MarshalPosition(r.End))
	return out
}

// UnmarshalPosition parses an LSP position object.
func UnmarshalPosition(data string) (Position, error) {
	v := gjson.Parse(data)
	line, char := v.Get("line"), v.Get("character")
	if !line.Exists() || !char.Exists() {
		return Position{}, fmt.Errorf("lsp position: missing line or character in %s", data)
	}
	return Position{Line: int(line.Int()), Character: int(char.Int())}, nil
}

// UnmarshalRange parses an LSP range object.
func UnmarshalRange(data string) (Range, error) {
	v := gjson.Parse(data)
	start, err := UnmarshalPosition(v.Get("start").Raw)
	if err != nil {
		return Range{}, err
	}
	end, err := UnmarshalPosition(v.Get("end").Raw)
	if err != nil {
		return Range{}, err
	}
	return Range{Start: start, End: end}, nil
}

// MarshalContentChange renders one buffer change as an LSP
// TextDocumentContentChangeEvent. pre must be the buffer state the
// change was applied to, since the change's range uses pre-edit
// coordinates.
func MarshalContentChange(pre buffer.RawBuffer, ch buffer.Change) string {
	out, _ := sjson.SetRaw("", "range", MarshalRange(RangeFromBuffer(pre, ch.Range)))
	out, _ = sjson.Set(out, "rangeLength", pre.Rope().ByteToUTF16(ch.ByteSpan.End)-
		pre.Rope().ByteToUTF16(ch.ByteSpan.Start))
	out, _ = sjson.Set(out, "text", ch.InsertText)
	return out
}
