package testlog

import (
	"sync"

	"laundry-service/internal/logx"
)

// Entry is a log entry
type Entry struct {
	Level  string
	Msg    string
	Fields []logx.Field
}

// Field returns the value of the first field named key.
func (e Entry) Field(key string) (any, bool) {
	for _, f := range e.Fields {
		if f.Key == key {
			return f.Value, true
		}
	}
	return nil, false
}

// Recorder records log entries
type Recorder struct {
	mu      sync.Mutex
	entries []Entry
}

// New returns a new logger
func New() *Recorder { return &Recorder{} }

// Logger returns a bound logger
func (r *Recorder) Logger() logx.Logger {
	return bound{r: r}
}

// Entries returns a copy of the log entries
func (r *Recorder) Entries() []Entry {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Entry, len(r.entries))
	copy(out, r.entries)
	return out
}

// Find returns the first entry logged with msg.
func (r *Recorder) Find(msg string) (Entry, bool) {
	for _, e := range r.Entries() {
		if e.Msg == msg {
			return e, true
		}
	}
	return Entry{}, false
}

func (r *Recorder) add(level, msg string, base, fields []logx.Field) {
	cp := make([]logx.Field, 0, len(base)+len(fields))
	cp = append(cp, base...)
	cp = append(cp, fields...)

	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, Entry{Level: level, Msg: msg, Fields: cp})
}

type bound struct {
	r    *Recorder
	base []logx.Field
}

func (b bound) Debug(msg string, f ...logx.Field) { b.r.add("debug", msg, b.base, f) }
func (b bound) Info(msg string, f ...logx.Field)  { b.r.add("info", msg, b.base, f) }
func (b bound) Warn(msg string, f ...logx.Field)  { b.r.add("warn", msg, b.base, f) }
func (b bound) Error(msg string, f ...logx.Field) { b.r.add("error", msg, b.base, f) }

func (b bound) With(f ...logx.Field) logx.Logger {
	nb := bound{r: b.r, base: make([]logx.Field, 0, len(b.base)+len(f))}
	nb.base = append(nb.base, b.base...)
	nb.base = append(nb.base, f...)
	return nb
}

func (b bound) Sync() error { return nil }

var _ logx.Logger = bound{}
