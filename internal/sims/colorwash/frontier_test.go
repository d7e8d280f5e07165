package colorwash

import "testing"

func TestFrontierRemoveAtSwaps(t *testing.T) {
	var f Frontier
	f.Append(Coord{0, 0}, Coord{1, 0}, Coord{2, 0}, Coord{3, 0})

	f.RemoveAt(1)
	want := []Coord{{0, 0}, {3, 0}, {2, 0}}
	got := f.Coords()
	if len(got) != len(want) {
		t.Fatalf("len = %d, expected %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("entry %d = %v, expected %v", i, got[i], want[i])
		}
	}

	f.RemoveAt(f.Len() - 1)
	f.RemoveAt(0)
	f.RemoveAt(0)
	if f.Len() != 0 {
		t.Fatalf("len = %d after removing everything", f.Len())
	}
}

func TestFrontierControlKeepsNewest(t *testing.T) {
	var f Frontier
	for i := 0; i < 50; i++ {
		f.Add(Coord{Col: i})
	}
	if f.Control(100, 0.5, 0.3) {
		t.Fatal("exactly half the grid must not prune")
	}

	f.Add(Coord{Col: 50})
	if !f.Control(100, 0.5, 0.3) {
		t.Fatal("more than half the grid must prune")
	}
	if f.Len() != 30 {
		t.Fatalf("len = %d, expected 30", f.Len())
	}
	for i := 0; i < f.Len(); i++ {
		if f.At(i).Col != 21+i {
			t.Fatalf("entry %d = %v, expected column %d", i, f.At(i), 21+i)
		}
	}
}

func TestFrontierControlFloorsKeep(t *testing.T) {
	var f Frontier
	for i := 0; i < 6; i++ {
		f.Add(Coord{Col: i})
	}
	// 7 cells: prune above 3.5, keep floor(2.1) = 2.
	if !f.Control(7, 0.5, 0.3) || f.Len() != 2 {
		t.Fatalf("len = %d, expected 2", f.Len())
	}
	if f.At(0).Col != 4 || f.At(1).Col != 5 {
		t.Fatalf("kept %v", f.Coords())
	}
}
