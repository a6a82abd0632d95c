package btree

import (
	"math/rand"
	"slices"
	"strconv"
	"testing"
)

// How to run:
//   - Deterministic randomized property test:
//     go test ./btree -run TestRandomizedProperty -count=1
//   - Fuzz test for this file:
//     go test ./btree -run '^$' -fuzz FuzzRandomizedProperty -fuzztime=10s

func assertTreeMatchesModel(t *testing.T, tree *Tree[int], model map[int]bool) {
	t.Helper()
	if err := tree.Check(); err != nil {
		t.Fatalf("invariants broken: %v", err)
	}
	want := make([]int, 0, len(model))
	for v := range model {
		want = append(want, v)
	}
	slices.Sort(want)
	got := slices.Collect(tree.All())
	if !slices.Equal(got, want) {
		t.Fatalf("model mismatch: got=%v want=%v", got, want)
	}
	back := slices.Collect(tree.Backward())
	slices.Reverse(back)
	if !slices.Equal(back, want) {
		t.Fatalf("backward mismatch: got=%v want=%v", back, want)
	}
}

func runRandomSequence(t *testing.T, seed uint64, steps int) {
	t.Helper()
	r := rand.New(rand.NewSource(int64(seed)))
	tree := NewOrdered[int]()
	model := make(map[int]bool)
	const keyspace = 64

	for i := 0; i < steps; i++ {
		x := r.Intn(keyspace)
		switch r.Intn(4) {
		case 0, 1:
			added := tree.Insert(x)
			if added == model[x] {
				t.Fatalf("Insert(%d) = %v, model has %v", x, added, model[x])
			}
			model[x] = true
		case 2:
			removed := tree.Erase(x)
			if removed != model[x] {
				t.Fatalf("Erase(%d) = %v, model has %v", x, removed, model[x])
			}
			delete(model, x)
		case 3:
			lb := tree.LowerBound(x)
			want := -1
			for v := x; v < keyspace; v++ {
				if model[v] {
					want = v
					break
				}
			}
			if want < 0 && !lb.IsEnd() {
				t.Fatalf("LowerBound(%d) = %d, want End", x, lb.Value())
			}
			if want >= 0 && (lb.IsEnd() || lb.Value() != want) {
				t.Fatalf("LowerBound(%d) wrong, want %d", x, want)
			}
			if tree.Find(x).IsEnd() == model[x] {
				t.Fatalf("Find(%d) disagrees with model", x)
			}
		}
		assertTreeMatchesModel(t, tree, model)
	}
}

func TestRandomizedProperty(t *testing.T) {
	seeds := []uint64{1, 2, 3, 7, 42, 99, 31337, 123456789}
	for _, seed := range seeds {
		t.Run("seed_"+strconv.FormatUint(seed, 10), func(t *testing.T) {
			runRandomSequence(t, seed, 400)
		})
	}
}

func TestPermutationsYieldSameSequence(t *testing.T) {
	const n = 100
	want := make([]int, n)
	for i := range want {
		want[i] = i
	}
	r := rand.New(rand.NewSource(17))
	for round := 0; round < 20; round++ {
		perm := r.Perm(n)
		tree := NewOrdered[int]()
		for _, v := range perm {
			tree.Insert(v)
		}
		if err := tree.Check(); err != nil {
			t.Fatalf("round %d: %v", round, err)
		}
		if got := slices.Collect(tree.All()); !slices.Equal(got, want) {
			t.Fatalf("round %d: got %v", round, got)
		}
	}
}

func FuzzRandomizedProperty(f *testing.F) {
	f.Add(uint64(1), uint8(32))
	f.Add(uint64(7), uint8(64))
	f.Add(uint64(42), uint8(200))
	f.Fuzz(func(t *testing.T, seed uint64, steps uint8) {
		runRandomSequence(t, seed, int(steps)+1)
	})
}
