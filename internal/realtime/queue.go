package realtime

import "sync"

// FrameQueue is a bounded FIFO of raw PCM audio frames shared between the
// capture goroutine and the transcription session. When full, the oldest
// frame is dropped so that sustained consumer lag costs stale audio rather
// than unbounded memory.
type FrameQueue struct {
	mu       sync.Mutex
	frames   [][]byte
	capacity int
	dropped  uint64
}

// NewFrameQueue creates a queue holding at most capacity frames.
func NewFrameQueue(capacity int) *FrameQueue {
	if capacity <= 0 {
		capacity = 1
	}
	return &FrameQueue{capacity: capacity}
}

// Push appends a frame, evicting the oldest one if the queue is full.
func (q *FrameQueue) Push(frame []byte) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if len(q.frames) == q.capacity {
		q.frames = q.frames[1:]
		q.dropped++
	}
	q.frames = append(q.frames, frame)
}

// Drain removes and returns up to max frames in insertion order.
// max <= 0 drains everything.
func (q *FrameQueue) Drain(max int) [][]byte {
	q.mu.Lock()
	defer q.mu.Unlock()

	n := len(q.frames)
	if max > 0 && max < n {
		n = max
	}
	if n == 0 {
		return nil
	}

	out := q.frames[:n]
	q.frames = append([][]byte(nil), q.frames[n:]...)
	return out
}

// Len returns the number of queued frames.
func (q *FrameQueue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.frames)
}

// Dropped returns the total number of frames evicted since creation.
func (q *FrameQueue) Dropped() uint64 {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.dropped
}
