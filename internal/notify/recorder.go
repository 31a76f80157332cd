package notify

import "sync"

// Entry is one recorded report.
type Entry struct {
	Level string
	Msg   string
	KV    []any
}

// Recorder is a Sink that keeps everything it receives. Intended for
// tests.
type Recorder struct {
	mu      sync.Mutex
	entries []Entry
}

func NewRecorder() *Recorder { return &Recorder{} }

func (r *Recorder) record(level, msg string, kv []any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, Entry{Level: level, Msg: msg, KV: kv})
}

func (r *Recorder) Info(msg string, kv ...any)  { r.record("info", msg, kv) }
func (r *Recorder) Warn(msg string, kv ...any)  { r.record("warn", msg, kv) }
func (r *Recorder) Error(msg string, kv ...any) { r.record("error", msg, kv) }

// Entries returns a copy of everything recorded so far.
func (r *Recorder) Entries() []Entry {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Entry, len(r.entries))
	copy(out, r.entries)
	return out
}
