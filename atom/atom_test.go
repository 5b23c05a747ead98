package atom

import "testing"

func TestAtom(t *testing.T) {
	var flag Atom[bool]
	if flag.Deref() {
		t.Errorf(`zero Atom[bool].Deref()=true; expect: false`)
	}

	old := flag.Swap(func(bool) bool { return true })
	if old {
		t.Errorf(`first Swap returned %v; expect: false`, old)
	}
	old = flag.Swap(func(bool) bool { return true })
	if !old {
		t.Errorf(`second Swap returned %v; expect: true`, old)
	}

	var n Atom[int]
	n.Swap(func(v int) int { return v + 42 })
	if n.Deref() != 42 {
		t.Errorf(`n.Deref()=%d; expect: 42`, n.Deref())
	}
}
