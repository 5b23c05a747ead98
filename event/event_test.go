package event

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"monks.co/collection/lifecycle"
)

func TestEvent_FireOrder(t *testing.T) {
	ev := New[int]()

	var got []string
	record := func(name string) func(int) {
		return func(v int) {
			got = append(got, name)
		}
	}
	for _, name := range []string{"a", "b", "c"} {
		if _, err := ev.Connect(record(name)); err != nil {
			t.Fatalf("Connect: %v", err)
		}
	}

	ev.Fire(1)
	if diff := cmp.Diff([]string{"a", "b", "c"}, got); diff != "" {
		t.Errorf("fire order mismatch (-want +got):\n%s", diff)
	}
	if ev.Len() != 3 {
		t.Errorf(`ev.Len()=%d; expect: 3`, ev.Len())
	}
}

func TestEvent_Disconnect(t *testing.T) {
	ev := New[string]()

	var got []string
	conn, err := ev.Connect(func(v string) { got = append(got, "first:"+v) })
	if err != nil {
		t.Fatal(err)
	}
	if _, err := ev.Connect(func(v string) { got = append(got, "second:"+v) }); err != nil {
		t.Fatal(err)
	}

	ev.Fire("x")
	conn.Disconnect()
	conn.Disconnect()
	ev.Fire("y")

	want := []string{"first:x", "second:x", "second:y"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
	if conn.Connected() {
		t.Errorf(`conn.Connected()=true; expect: false`)
	}
	if ev.Len() != 1 {
		t.Errorf(`ev.Len()=%d; expect: 1`, ev.Len())
	}
}

func TestEvent_DisconnectDuringFire(t *testing.T) {
	ev := New[int]()

	var second *Connection
	calls := 0
	if _, err := ev.Connect(func(int) {
		calls++
		second.Disconnect()
	}); err != nil {
		t.Fatal(err)
	}
	second, _ = ev.Connect(func(int) { calls += 100 })

	ev.Fire(0)
	if calls != 1 {
		t.Errorf(`calls=%d; expect: 1`, calls)
	}
}

func TestEvent_Once(t *testing.T) {
	ev := New[int]()

	sum := 0
	conn, err := ev.Once(func(v int) { sum += v })
	if err != nil {
		t.Fatal(err)
	}
	ev.Fire(2)
	ev.Fire(3)

	if sum != 2 {
		t.Errorf(`sum=%d; expect: 2`, sum)
	}
	if conn.Connected() {
		t.Errorf(`conn.Connected()=true; expect: false`)
	}
}

func TestEvent_Destroy(t *testing.T) {
	ev := New[int]()

	calls := 0
	conn, _ := ev.Connect(func(int) { calls++ })

	ev.Destroy()
	ev.Destroy()
	ev.Fire(1)

	if calls != 0 {
		t.Errorf(`calls=%d; expect: 0`, calls)
	}
	if !ev.IsDestroyed() {
		t.Errorf(`ev.IsDestroyed()=false; expect: true`)
	}
	if conn.Connected() {
		t.Errorf(`conn.Connected()=true; expect: false`)
	}
	if _, err := ev.Connect(func(int) {}); !errors.Is(err, lifecycle.ErrDestroyed) {
		t.Errorf(`Connect after Destroy err=%v; expect: %v`, err, lifecycle.ErrDestroyed)
	}
}

func TestEvent_ListenerPanicPropagates(t *testing.T) {
	ev := New[int]()
	ev.Connect(func(int) { panic("boom") })

	defer func() {
		if r := recover(); r != "boom" {
			t.Errorf(`recovered %v; expect: boom`, r)
		}
	}()
	ev.Fire(1)
	t.Errorf("Fire returned; expect panic")
}
