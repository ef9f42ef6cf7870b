package realtime

import (
	"bytes"
	"sync"
	"testing"
)

func TestFrameQueuePushDrain(t *testing.T) {
	q := NewFrameQueue(10)

	q.Push([]byte("a"))
	q.Push([]byte("b"))
	q.Push([]byte("c"))

	if q.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", q.Len())
	}

	frames := q.Drain(2)
	if len(frames) != 2 {
		t.Fatalf("Drain(2) returned %d frames", len(frames))
	}
	if !bytes.Equal(frames[0], []byte("a")) || !bytes.Equal(frames[1], []byte("b")) {
		t.Errorf("frames out of insertion order: %q %q", frames[0], frames[1])
	}

	rest := q.Drain(0)
	if len(rest) != 1 || !bytes.Equal(rest[0], []byte("c")) {
		t.Errorf("Drain(0) = %q, want [c]", rest)
	}
	if q.Len() != 0 {
		t.Errorf("Len() = %d after full drain", q.Len())
	}
}

func TestFrameQueueDrainEmpty(t *testing.T) {
	q := NewFrameQueue(4)
	if frames := q.Drain(0); frames != nil {
		t.Errorf("Drain on empty queue = %v, want nil", frames)
	}
}

func TestFrameQueueDropOldest(t *testing.T) {
	q := NewFrameQueue(2)

	q.Push([]byte("a"))
	q.Push([]byte("b"))
	q.Push([]byte("c")) // evicts a

	if q.Dropped() != 1 {
		t.Errorf("Dropped() = %d, want 1", q.Dropped())
	}

	frames := q.Drain(0)
	if len(frames) != 2 {
		t.Fatalf("got %d frames, want 2", len(frames))
	}
	if !bytes.Equal(frames[0], []byte("b")) || !bytes.Equal(frames[1], []byte("c")) {
		t.Errorf("after eviction frames = %q %q, want b c", frames[0], frames[1])
	}
}

func TestFrameQueueConcurrent(t *testing.T) {
	q := NewFrameQueue(64)

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				q.Push([]byte{byte(j)})
			}
		}()
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 50; i++ {
			q.Drain(8)
		}
	}()

	wg.Wait()
	<-done

	// Everything pushed was either drained, dropped, or still queued.
	if q.Len() > 64 {
		t.Errorf("queue grew past capacity: %d", q.Len())
	}
}
