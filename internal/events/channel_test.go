package events

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestOpenChannel_UniqueIDs(t *testing.T) {
	a, err := OpenChannel()
	if err != nil {
		t.Fatalf("OpenChannel() error: %v", err)
	}
	defer a.Close()

	b, err := OpenChannel()
	if err != nil {
		t.Fatalf("OpenChannel() error: %v", err)
	}
	defer b.Close()

	if a.ID() == b.ID() {
		t.Errorf("channel IDs should differ, both are %q", a.ID())
	}
	if _, err := uuid.Parse(a.ID()); err != nil {
		t.Errorf("ID() = %q is not a UUID: %v", a.ID(), err)
	}
}

func TestChannel_CloseIdempotent(t *testing.T) {
	ch, err := OpenChannel()
	if err != nil {
		t.Fatalf("OpenChannel() error: %v", err)
	}

	if err := ch.Close(); err != nil {
		t.Errorf("first Close() error: %v", err)
	}
	if err := ch.Close(); err != nil {
		t.Errorf("second Close() error: %v", err)
	}
	if err := ch.CloseWriter(); err != nil {
		t.Errorf("CloseWriter() after Close() error: %v", err)
	}
}

func TestChannel_LinesInOrder(t *testing.T) {
	ch, err := OpenChannel()
	if err != nil {
		t.Fatalf("OpenChannel() error: %v", err)
	}
	defer ch.Close()

	want := []string{"health_status: starting", "exec_start: curl", "health_status: healthy"}
	go func() {
		for _, line := range want {
			fmt.Fprintln(ch.Writer(), line)
		}
		ch.CloseWriter()
	}()

	lines := ch.Lines()
	if ch.Lines() != lines {
		t.Error("Lines() should return the same sequence on every call")
	}

	ctx := context.Background()
	var got []string
	for {
		line, ok := lines.Next(ctx)
		if !ok {
			break
		}
		got = append(got, line)
	}

	if len(got) != len(want) {
		t.Fatalf("got %d lines %v, want %v", len(got), got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, got[i], want[i])
		}
	}
	if err := lines.Err(); err != nil {
		t.Errorf("Err() = %v, want nil", err)
	}
}

func TestLines_NextAbandonedOnCancel(t *testing.T) {
	ch, err := OpenChannel()
	if err != nil {
		t.Fatalf("OpenChannel() error: %v", err)
	}
	defer ch.Close()

	ctx, cancel := context.WithCancel(context.Background())
	time.AfterFunc(50*time.Millisecond, cancel)

	done := make(chan bool)
	go func() {
		_, ok := ch.Lines().Next(ctx)
		done <- ok
	}()

	select {
	case ok := <-done:
		if ok {
			t.Error("Next() should return false after cancellation")
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Next() did not return after cancellation")
	}
}

func TestChannel_CloseEndsStream(t *testing.T) {
	ch, err := OpenChannel()
	if err != nil {
		t.Fatalf("OpenChannel() error: %v", err)
	}

	lines := ch.Lines()
	time.AfterFunc(50*time.Millisecond, func() { ch.Close() })

	done := make(chan bool)
	go func() {
		_, ok := lines.Next(context.Background())
		done <- ok
	}()

	select {
	case ok := <-done:
		if ok {
			t.Error("Next() should report end of stream after Close()")
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Close() did not unblock the reader")
	}
}

func TestWindow_Bounded(t *testing.T) {
	now := time.Unix(1700000000, 0)

	if (Window{Since: now}).Bounded() {
		t.Error("window without Until should not be bounded")
	}
	if !(Window{Since: now, Until: now.Add(10 * time.Second)}).Bounded() {
		t.Error("window with Until should be bounded")
	}
}
