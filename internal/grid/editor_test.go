package grid

import (
	"errors"
	"sync"
	"testing"
)

func TestMutateRecordsChange(t *testing.T) {
	ed := NewEditor(New(4, 4), 0)
	pos := Position{X: 1, Y: 2}

	if err := ed.Mutate(pos, true); err != nil {
		t.Fatalf("Mutate(%v) failed: %v", pos, err)
	}

	changes, dropped := ed.Drain(nil)
	if dropped {
		t.Fatal("Drain reported dropped records after one mutation")
	}
	if len(changes) != 1 {
		t.Fatalf("Drain returned %d changes, want 1", len(changes))
	}
	if changes[0] != (Change{Pos: pos, Wall: true}) {
		t.Fatalf("unexpected change record %+v", changes[0])
	}

	// The queue must be empty after a drain.
	changes, dropped = ed.Drain(nil)
	if len(changes) != 0 || dropped {
		t.Fatalf("second Drain returned %d changes (dropped=%v), want none", len(changes), dropped)
	}
}

func TestToggleFlipsAndReportsNewState(t *testing.T) {
	ed := NewEditor(New(3, 3), 0)
	pos := Position{X: 2, Y: 0}

	wall, err := ed.Toggle(pos)
	if err != nil {
		t.Fatalf("Toggle(%v) failed: %v", pos, err)
	}
	if !wall {
		t.Fatal("first toggle of a floor cell did not report wall")
	}

	wall, err = ed.Toggle(pos)
	if err != nil {
		t.Fatalf("second Toggle(%v) failed: %v", pos, err)
	}
	if wall {
		t.Fatal("second toggle did not report floor")
	}

	changes, _ := ed.Drain(nil)
	if len(changes) != 2 {
		t.Fatalf("Drain returned %d changes, want 2", len(changes))
	}
	if !changes[0].Wall || changes[1].Wall {
		t.Fatalf("change records out of order: %+v", changes)
	}
}

func TestMutateOutOfBoundsQueuesNothing(t *testing.T) {
	ed := NewEditor(New(2, 2), 0)
	pos := Position{X: 5, Y: 5}

	err := ed.Mutate(pos, true)
	var oob *OutOfBoundsError
	if !errors.As(err, &oob) {
		t.Fatalf("Mutate(%v): expected OutOfBoundsError, got %v", pos, err)
	}
	if oob.Pos != pos {
		t.Fatalf("OutOfBoundsError carries %v, want %v", oob.Pos, pos)
	}

	if changes, _ := ed.Drain(nil); len(changes) != 0 {
		t.Fatalf("rejected mutation queued %d change records", len(changes))
	}
}

func TestQueueOverflowKeepsNewestAndSignalsRescan(t *testing.T) {
	ed := NewEditor(New(4, 1), 2)

	for x := 0; x < 3; x++ {
		if err := ed.Mutate(Position{X: x, Y: 0}, true); err != nil {
			t.Fatalf("Mutate failed: %v", err)
		}
	}

	changes, dropped := ed.Drain(nil)
	if !dropped {
		t.Fatal("Drain did not report dropped records after overflow")
	}
	if len(changes) != 2 {
		t.Fatalf("Drain returned %d changes, want 2", len(changes))
	}
	if changes[0].Pos != (Position{X: 1, Y: 0}) || changes[1].Pos != (Position{X: 2, Y: 0}) {
		t.Fatalf("overflow dropped the wrong records: %+v", changes)
	}

	// The flag must clear once reported.
	if _, dropped := ed.Drain(nil); dropped {
		t.Fatal("dropped flag survived a drain")
	}
}

func TestViewReadsThroughEditor(t *testing.T) {
	ed := NewEditor(New(3, 2), 0)
	v := ed.View()

	if v.Width() != 3 || v.Height() != 2 || v.Len() != 6 {
		t.Fatalf("view reports %dx%d (%d cells), want 3x2 (6)", v.Width(), v.Height(), v.Len())
	}

	pos := Position{X: 1, Y: 1}
	if err := ed.Mutate(pos, true); err != nil {
		t.Fatalf("Mutate failed: %v", err)
	}

	c, err := v.Cell(pos)
	if err != nil {
		t.Fatalf("View.Cell(%v) failed: %v", pos, err)
	}
	if !c.Wall {
		t.Fatal("view does not observe the editor's mutation")
	}

	snap := v.Snapshot(nil)
	if len(snap) != 6 {
		t.Fatalf("Snapshot returned %d cells, want 6", len(snap))
	}
	i, err := v.Index(pos)
	if err != nil {
		t.Fatalf("View.Index(%v) failed: %v", pos, err)
	}
	if !snap[i].Wall {
		t.Fatal("snapshot misses the mutated cell")
	}
}

func TestConcurrentTogglesSerialize(t *testing.T) {
	const goroutines = 4
	const togglesEach = 100

	ed := NewEditor(New(1, 1), goroutines*togglesEach)
	pos := Position{X: 0, Y: 0}

	var wg sync.WaitGroup
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < togglesEach; j++ {
				if _, err := ed.Toggle(pos); err != nil {
					t.Errorf("Toggle failed: %v", err)
					return
				}
			}
		}()
	}
	wg.Wait()

	changes, dropped := ed.Drain(nil)
	if dropped {
		t.Fatal("queue overflowed despite sufficient depth")
	}
	if len(changes) != goroutines*togglesEach {
		t.Fatalf("recorded %d changes, want %d", len(changes), goroutines*togglesEach)
	}

	// An even number of flips must land back on floor.
	c, err := ed.View().Cell(pos)
	if err != nil {
		t.Fatalf("Cell failed: %v", err)
	}
	if c.Wall {
		t.Fatal("even toggle count left the cell a wall")
	}
}
