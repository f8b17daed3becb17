package eventbus

import (
	"testing"
	"time"
)

func TestPublishSubscribe(t *testing.T) {
	b := New[string]()
	sub := b.Subscribe()
	b.Publish("hello")
	select {
	case got := <-sub:
		if got != "hello" {
			t.Fatalf("got %q", got)
		}
	case <-time.After(time.Second):
		t.Fatalf("timeout waiting for event")
	}
}

func TestPublishNonBlocking(t *testing.T) {
	b := New[int]()
	b.Subscribe() // never drained
	for i := 0; i < 100; i++ {
		b.Publish(i) // must not block once the buffer fills
	}
}

func TestUnsubscribeCloses(t *testing.T) {
	b := New[int]()
	sub := b.Subscribe()
	b.Unsubscribe(sub)
	if _, ok := <-sub; ok {
		t.Fatalf("channel should be closed")
	}
	b.Publish(1) // no subscribers left, must not panic
}

func TestCloseIdempotent(t *testing.T) {
	b := New[int]()
	sub := b.Subscribe()
	b.Close()
	b.Close()
	if _, ok := <-sub; ok {
		t.Fatalf("channel should be closed")
	}
	if late := b.Subscribe(); late == nil {
		t.Fatalf("subscribe after close should return a closed channel")
	}
}
