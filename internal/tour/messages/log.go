// Package messages holds the user-visible activity log shared by the tour's
// views. It is an append-only ring: once full, each Add evicts the oldest
// entry.
package messages

import "sync"

// DefaultCapacity is used when NewLog is given a non-positive capacity.
const DefaultCapacity = 100

// Log is safe for concurrent use.
type Log struct {
	mu    sync.Mutex
	buf   []string
	start int // index of the oldest message
	n     int
}

func NewLog(capacity int) *Log {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Log{buf: make([]string, capacity)}
}

// Add appends message, dropping the oldest one when the log is full.
// Duplicates are kept.
func (l *Log) Add(message string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.n < len(l.buf) {
		l.buf[(l.start+l.n)%len(l.buf)] = message
		l.n++
		return
	}
	l.buf[l.start] = message
	l.start = (l.start + 1) % len(l.buf)
}

func (l *Log) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()

	clear(l.buf)
	l.start, l.n = 0, 0
}

// Messages returns a copy of the log, oldest first.
func (l *Log) Messages() []string {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]string, l.n)
	for i := range out {
		out[i] = l.buf[(l.start+i)%len(l.buf)]
	}
	return out
}

func (l *Log) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.n
}

func (l *Log) Cap() int { return len(l.buf) }
