package linemap

import (
	"reflect"
	"testing"
)

func TestDiffLines(t *testing.T) {
	tests := []struct {
		name string
		old  string
		new  string
		want []Hunk
	}{
		{
			name: "no changes",
			old:  "a\nb\nc\n",
			new:  "a\nb\nc\n",
			want: nil,
		},
		{
			name: "added line",
			old:  "a\nc\n",
			new:  "a\nb\nc\n",
			want: []Hunk{{Kind: "added", Line: 1, Count: 1}},
		},
		{
			name: "added block at end",
			old:  "a\n",
			new:  "a\nb\nc\n",
			want: []Hunk{{Kind: "added", Line: 1, Count: 2}},
		},
		{
			name: "removed line",
			old:  "a\nb\nc\n",
			new:  "a\nc\n",
			want: []Hunk{{Kind: "removed", Line: 1, Count: 1}},
		},
		{
			name: "removed last line",
			old:  "a\nb\n",
			new:  "a\n",
			want: []Hunk{{Kind: "removed", Line: 0, Count: 1}},
		},
		{
			name: "modified line",
			old:  "a\nb\nc\n",
			new:  "a\nX\nc\n",
			want: []Hunk{{Kind: "modified", Line: 1, Count: 1}},
		},
		{
			name: "separate hunks",
			old:  "a\nb\nc\nd\n",
			new:  "a\nX\nc\nd\ne\n",
			want: []Hunk{
				{Kind: "modified", Line: 1, Count: 1},
				{Kind: "added", Line: 4, Count: 1},
			},
		},
		{
			name: "everything new",
			old:  "",
			new:  "a\nb\n",
			want: []Hunk{{Kind: "added", Line: 0, Count: 2}},
		},
		{
			name: "no trailing newline",
			old:  "a\nb",
			new:  "a\nb\nc",
			want: []Hunk{{Kind: "added", Line: 2, Count: 1}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DiffLines(tt.old, tt.new)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("DiffLines() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLoadDiffFlagsLines(t *testing.T) {
	m := New()
	if err := m.LoadDiff("a\nb\nc\n", "a\nX\nc\nd\n"); err != nil {
		t.Fatal(err)
	}
	if got := m.Get(1); !got.Has(StatusModified) {
		t.Errorf("line 1 = %v", got)
	}
	if got := m.Get(3); !got.Has(StatusAdded) {
		t.Errorf("line 3 = %v", got)
	}
	if got := m.Get(0); got != 0 {
		t.Errorf("line 0 = %v", got)
	}
}

func TestLoadDiffReplacesOldFlags(t *testing.T) {
	m := New()
	if err := m.LoadDiff("a\n", "a\nb\n"); err != nil {
		t.Fatal(err)
	}
	if err := m.LoadDiff("a\nb\n", "a\nb\n"); err != nil {
		t.Fatal(err)
	}
	if m.Len() != 0 {
		t.Errorf("stale flags remain: %d", m.Len())
	}
}

func TestMarshalHunksJSONRoundTrips(t *testing.T) {
	hunks := []Hunk{
		{Kind: "added", Line: 3, Count: 2},
		{Kind: "removed", Line: 7, Count: 1},
	}
	m := New()
	if err := m.LoadDiffJSON(MarshalHunksJSON(hunks)); err != nil {
		t.Fatal(err)
	}
	if !m.Get(3).Has(StatusAdded) || !m.Get(4).Has(StatusAdded) {
		t.Error("added lines not flagged")
	}
	if !m.Get(7).Has(StatusRemoved) {
		t.Error("removed line not flagged")
	}
}
