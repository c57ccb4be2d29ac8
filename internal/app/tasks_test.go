package app

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func TestTasks_WaitForCompletion(t *testing.T) {
	tasks := NewTasks(zerolog.Nop())
	var count atomic.Int32

	for i := 0; i < 10; i++ {
		tasks.Go("count", func() {
			time.Sleep(5 * time.Millisecond)
			count.Add(1)
		})
	}

	if !tasks.Wait(time.Second) {
		t.Fatal("Expected tasks to finish before timeout")
	}
	if count.Load() != 10 {
		t.Errorf("Expected 10 completed tasks, got %d", count.Load())
	}
}

func TestTasks_Timeout(t *testing.T) {
	tasks := NewTasks(zerolog.Nop())
	release := make(chan struct{})
	defer close(release)

	tasks.Go("blocked", func() { <-release })

	if tasks.Wait(20 * time.Millisecond) {
		t.Error("Expected Wait to time out on a blocked task")
	}
}

func TestTasks_PanicRecovered(t *testing.T) {
	tasks := NewTasks(zerolog.Nop())
	tasks.Go("boom", func() { panic("dialog exploded") })

	if !tasks.Wait(time.Second) {
		t.Fatal("Expected panicking task to be counted as done")
	}
}

func TestTasks_DroppedAfterClose(t *testing.T) {
	tasks := NewTasks(zerolog.Nop())
	tasks.Close()

	ran := make(chan struct{}, 1)
	tasks.Go("late", func() { ran <- struct{}{} })

	if !tasks.Wait(time.Second) {
		t.Fatal("Expected Wait to return immediately")
	}
	select {
	case <-ran:
		t.Error("Expected task submitted after Close not to run")
	default:
	}
}

func TestTasks_CloseRacesSubmit(t *testing.T) {
	for i := 0; i < 200; i++ {
		tasks := NewTasks(zerolog.Nop())
		var ran atomic.Int32
		var submitters sync.WaitGroup

		for j := 0; j < 4; j++ {
			submitters.Add(1)
			go func() {
				defer submitters.Done()
				for k := 0; k < 10; k++ {
					tasks.Go("count", func() { ran.Add(1) })
				}
			}()
		}

		tasks.Close()
		if !tasks.Wait(time.Second) {
			t.Fatal("Expected Wait after Close to finish")
		}
		submitters.Wait()

		// Nothing accepted after Close may still be pending
		before := ran.Load()
		if !tasks.Wait(time.Second) {
			t.Fatal("Expected second Wait to finish")
		}
		if ran.Load() != before {
			t.Errorf("Expected no work to run after the pool drained, got %d more", ran.Load()-before)
		}
	}
}
