package logview

import (
	"fmt"
	"strings"
	"sync"
	"testing"
)

func TestSinkPublishDrain(t *testing.T) {
	sink := NewSink()

	sink.Publish("one")
	sink.Publish("two")

	drained := sink.Drain()
	if len(drained) != 2 || drained[0] != "one" || drained[1] != "two" {
		t.Errorf("Drain = %v, expected [one two]", drained)
	}

	if again := sink.Drain(); again != nil {
		t.Errorf("Second drain should be empty, got %v", again)
	}
}

func TestSinkConcurrentPublish(t *testing.T) {
	sink := NewSink()

	const writers = 8
	const perWriter = 100

	var wg sync.WaitGroup
	for w := 0; w < writers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < perWriter; i++ {
				sink.Publish(fmt.Sprintf("writer-%d-%d", w, i))
			}
		}(w)
	}
	wg.Wait()

	if got := len(sink.Drain()); got != writers*perWriter {
		t.Errorf("Expected %d messages, got %d", writers*perWriter, got)
	}
}

func TestBufferEviction(t *testing.T) {
	buffer := NewBuffer()

	for i := 0; i < MaxLines+50; i++ {
		buffer.Append(fmt.Sprintf("line %d", i))
	}

	if buffer.Len() != MaxLines {
		t.Errorf("Expected buffer capped at %d lines, got %d", MaxLines, buffer.Len())
	}

	rendered := buffer.String()
	if strings.Contains(rendered, "line 49\n") {
		t.Error("Oldest lines should be evicted first")
	}
	if !strings.HasSuffix(rendered, fmt.Sprintf("line %d", MaxLines+49)) {
		t.Error("Newest line should be retained")
	}
}

func TestBufferMultilineAppend(t *testing.T) {
	buffer := NewBuffer()

	buffer.Append("first\nsecond\nthird")

	if buffer.Len() != 3 {
		t.Errorf("Expected 3 lines, got %d", buffer.Len())
	}
}

func TestBufferClear(t *testing.T) {
	buffer := NewBuffer()
	buffer.Append("something")

	buffer.Clear()

	if buffer.Len() != 0 || buffer.String() != "" {
		t.Error("Clear should empty the buffer")
	}
}
