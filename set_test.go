package collection

import (
	"cmp"
	"testing"

	gocmp "github.com/google/go-cmp/cmp"
)

func TestCollection_CloneIsIndependent(t *testing.T) {
	c := newCollection("a", 1, "b", 2)
	clone := c.Clone()
	clone.Set("c", 3)
	clone.Set("a", 100)

	if c.Has("c") {
		t.Errorf(`c.Has("c")=true after clone.Set; expect: false`)
	}
	if v, _ := c.Get("a"); v != 1 {
		t.Errorf(`c.Get("a")=%d; expect: 1`, v)
	}
	if gocmp.Diff(c.Entries(), c.Clone().Entries()) != "" {
		t.Errorf(`clone order differs from source`)
	}
}

func TestCollection_Concat(t *testing.T) {
	c := newCollection("a", 1, "b", 2)
	d := newCollection("b", 20, "c", 30)
	e := newCollection("c", 300, "d", 400)

	added := 0
	c.OnAdd.Connect(func(int) { added++ })

	got := c.Concat(d, e)
	want := entries("a", 1, "b", 20, "c", 300, "d", 400)
	if diff := gocmp.Diff(want, got.Entries()); diff != "" {
		t.Errorf("Concat mismatch (-want +got):\n%s", diff)
	}
	if added != 0 {
		t.Errorf(`source OnAdd fired %d times; expect: 0`, added)
	}
	if c.Size() != 2 || d.Size() != 2 || e.Size() != 2 {
		t.Errorf(`Concat changed an operand`)
	}

	if diff := gocmp.Diff(c.Entries(), c.Concat().Entries()); diff != "" {
		t.Errorf("Concat() without arguments is not a clone (-want +got):\n%s", diff)
	}
}

func TestCollection_Difference(t *testing.T) {
	c := newCollection("a", 1, "b", 2)
	o := newCollection("b", 9)

	if diff := gocmp.Diff(entries("a", 1), c.Difference(o).Entries()); diff != "" {
		t.Errorf("Difference mismatch (-want +got):\n%s", diff)
	}
	if diff := gocmp.Diff(entries("a", 1, "b", 2), c.Entries()); diff != "" {
		t.Errorf("Difference changed its operand (-want +got):\n%s", diff)
	}
}

// Intersect keeps only keys present in both collections, taking values and
// order from the receiver.
func TestCollection_IntersectKeepsSharedKeys(t *testing.T) {
	c := newCollection("a", 1, "b", 2, "c", 3)
	o := newCollection("c", 30, "x", 0, "a", 10)

	got := c.Intersect(o)
	if diff := gocmp.Diff(entries("a", 1, "c", 3), got.Entries()); diff != "" {
		t.Errorf("Intersect mismatch (-want +got):\n%s", diff)
	}

	if !c.Intersect(New[string, int]()).IsEmpty() {
		t.Errorf(`intersection with empty is not empty`)
	}

	// agrees with Difference: c = (c ∩ o) ∪ (c − o)
	rebuilt := got.Concat(c.Difference(o))
	if !Equal(c, rebuilt) {
		t.Errorf(`Intersect and Difference do not partition c: %v`, rebuilt.Entries())
	}
}

func TestCollection_Merge(t *testing.T) {
	self := newCollection("a", 1, "b", 2)
	other := newCollection("b", 20, "c", 30)

	got := self.Merge(other,
		func(v int, _ string) Keep[int] { return KeepValue(v) },
		func(theirs int, _ string) Keep[int] { return KeepValue(theirs) },
		func(_, theirs int, _ string) Keep[int] { return KeepValue(theirs) },
	)
	if diff := gocmp.Diff(entries("a", 1, "b", 20, "c", 30), got.Entries()); diff != "" {
		t.Errorf("Merge mismatch (-want +got):\n%s", diff)
	}
	if diff := gocmp.Diff(entries("a", 1, "b", 2), self.Entries()); diff != "" {
		t.Errorf("Merge changed self (-want +got):\n%s", diff)
	}
}

func TestCollection_MergeDiscards(t *testing.T) {
	self := newCollection("a", 1, "b", 2)
	other := newCollection("b", 20, "c", 30, "d", 40)

	got := self.Merge(other,
		func(v int, _ string) Keep[int] { return KeepValue(v) },
		func(theirs int, k string) Keep[int] {
			if k == "d" {
				return Discard[int]()
			}
			return KeepValue(theirs)
		},
		func(int, int, string) Keep[int] { return Discard[int]() },
	)
	if diff := gocmp.Diff(entries("a", 1, "c", 30), got.Entries()); diff != "" {
		t.Errorf("Merge mismatch (-want +got):\n%s", diff)
	}
}

// whenInSelf runs after other has been merged in, so it also sees entries
// that came from other.
func TestCollection_MergeWhenInSelfSeesMergedEntries(t *testing.T) {
	self := newCollection("a", 1, "b", 2)
	other := newCollection("b", 20, "c", 30)

	var seen []string
	got := self.Merge(other,
		func(v int, k string) Keep[int] {
			seen = append(seen, k)
			if v >= 20 {
				return Discard[int]()
			}
			return KeepValue(v)
		},
		func(theirs int, _ string) Keep[int] { return KeepValue(theirs) },
		func(ours, theirs int, _ string) Keep[int] { return KeepValue(ours + theirs) },
	)

	if diff := gocmp.Diff([]string{"a", "b", "c"}, seen); diff != "" {
		t.Errorf("whenInSelf calls mismatch (-want +got):\n%s", diff)
	}
	if diff := gocmp.Diff(entries("a", 1), got.Entries()); diff != "" {
		t.Errorf("Merge mismatch (-want +got):\n%s", diff)
	}
}

func TestKeep(t *testing.T) {
	if v, ok := KeepValue(3).Kept(); !ok || v != 3 {
		t.Errorf(`KeepValue(3).Kept()=%d, %v; expect: 3, true`, v, ok)
	}
	if _, ok := Discard[int]().Kept(); ok {
		t.Errorf(`Discard().Kept() kept; expect discard`)
	}
}

func TestEqual(t *testing.T) {
	c := newCollection("a", 1, "b", 2)

	if !Equal(c, newCollection("b", 2, "a", 1)) {
		t.Errorf(`Equal ignores order; expect: true`)
	}
	if Equal(c, newCollection("a", 1, "b", 3)) {
		t.Errorf(`Equal with a differing value; expect: false`)
	}
	if Equal(c, newCollection("a", 1, "c", 2)) {
		t.Errorf(`Equal with a differing key; expect: false`)
	}
	if Equal(c, newCollection("a", 1)) {
		t.Errorf(`Equal with a differing size; expect: false`)
	}

	type point struct{ xs []int }
	p := New[string, point]()
	q := New[string, point]()
	p.Set("a", point{[]int{1}})
	q.Set("a", point{[]int{1}})
	if !p.EqualFunc(q, func(x, y point) bool { return gocmp.Equal(x.xs, y.xs) }) {
		t.Errorf(`EqualFunc with a structural comparison; expect: true`)
	}
}

func TestCollection_Partition(t *testing.T) {
	c := newCollection("a", 1, "b", 2, "c", 3)

	pass, fail := c.Partition(func(v int, _ string) bool { return v%2 == 0 })
	if diff := gocmp.Diff(entries("b", 2), pass.Entries()); diff != "" {
		t.Errorf("pass mismatch (-want +got):\n%s", diff)
	}
	if diff := gocmp.Diff(entries("a", 1, "c", 3), fail.Entries()); diff != "" {
		t.Errorf("fail mismatch (-want +got):\n%s", diff)
	}
	if pass.Size()+fail.Size() != c.Size() {
		t.Errorf(`partition sizes %d+%d; expect: %d`, pass.Size(), fail.Size(), c.Size())
	}
}

func TestCollection_Reverse(t *testing.T) {
	c := newCollection("a", 1, "b", 2, "c", 3)

	if diff := gocmp.Diff(entries("c", 3, "b", 2, "a", 1), c.Reverse().Entries()); diff != "" {
		t.Errorf("Reverse mismatch (-want +got):\n%s", diff)
	}
	if diff := gocmp.Diff(c.Entries(), c.Reverse().Reverse().Entries()); diff != "" {
		t.Errorf("double Reverse mismatch (-want +got):\n%s", diff)
	}
}

func TestCollection_Sort(t *testing.T) {
	c := newCollection("x", 3, "y", 1, "z", 2)

	sorted := c.Sort(func(a, b int) int { return a - b })
	if diff := gocmp.Diff(entries("y", 1, "z", 2, "x", 3), sorted.Entries()); diff != "" {
		t.Errorf("Sort mismatch (-want +got):\n%s", diff)
	}
	if diff := gocmp.Diff(entries("x", 3, "y", 1, "z", 2), c.Entries()); diff != "" {
		t.Errorf("Sort changed its source (-want +got):\n%s", diff)
	}

	desc := c.Sort(func(a, b int) int { return cmp.Compare(b, a) })
	if diff := gocmp.Diff([]string{"x", "z", "y"}, desc.Keys()); diff != "" {
		t.Errorf("descending Sort mismatch (-want +got):\n%s", diff)
	}
}

func TestCollection_SortKeepsTies(t *testing.T) {
	c := newCollection("p", 2, "q", 1, "r", 2, "s", 1)

	sorted := c.Sort(cmp.Compare[int])
	if diff := gocmp.Diff([]string{"q", "s", "p", "r"}, sorted.Keys()); diff != "" {
		t.Errorf("Sort tie order mismatch (-want +got):\n%s", diff)
	}

	already := newCollection("a", 1, "b", 2, "c", 3)
	if diff := gocmp.Diff(already.Keys(), already.Sort(cmp.Compare[int]).Keys()); diff != "" {
		t.Errorf("sorted input reordered (-want +got):\n%s", diff)
	}
}

func TestCollection_SortWithSwapOnlyComparator(t *testing.T) {
	c := newCollection("x", 3, "y", 1, "z", 2, "w", 1)

	sorted := c.Sort(func(a, b int) int {
		if a > b {
			return 1
		}
		return 0
	})
	if diff := gocmp.Diff([]int{1, 1, 2, 3}, sorted.Values()); diff != "" {
		t.Errorf("Sort values mismatch (-want +got):\n%s", diff)
	}
	if diff := gocmp.Diff([]string{"y", "w", "z", "x"}, sorted.Keys()); diff != "" {
		t.Errorf("Sort keys mismatch (-want +got):\n%s", diff)
	}
}
