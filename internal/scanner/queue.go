// Copyright 2025 The yamlscan Project Contributors
// SPDX-License-Identifier: Apache-2.0

package scanner

// tokenQueue is a FIFO of tokens kept in an arena. Tokens are addressed by
// handle, an index into the arena that stays valid while the token is
// queued, so simple keys can refer to tokens they may later resolve.
// Slots of delivered tokens are recycled.
type tokenQueue struct {
	slots []Token
	free  []int // Recycled slot handles.
	order []int // Queued handles, the front at order[head].
	head  int
}

// push appends t to the queue and returns its handle.
func (q *tokenQueue) push(t Token) int {
	var h int
	if n := len(q.free); n > 0 {
		h = q.free[n-1]
		q.free = q.free[:n-1]
		q.slots[h] = t
	} else {
		h = len(q.slots)
		q.slots = append(q.slots, t)
	}
	q.order = append(q.order, h)
	return h
}

func (q *tokenQueue) len() int {
	return len(q.order) - q.head
}

// front returns the handle of the first queued token. The queue must not be
// empty.
func (q *tokenQueue) front() int {
	return q.order[q.head]
}

func (q *tokenQueue) at(h int) *Token {
	return &q.slots[h]
}

// pop removes the first token and recycles its slot.
func (q *tokenQueue) pop() {
	h := q.order[q.head]
	q.slots[h] = Token{}
	q.free = append(q.free, h)
	q.head++
	switch {
	case q.head == len(q.order):
		q.order = q.order[:0]
		q.head = 0
	case q.head > 32 && q.head*2 > len(q.order):
		n := copy(q.order, q.order[q.head:])
		q.order = q.order[:n]
		q.head = 0
	}
}
