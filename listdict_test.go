package mtschema_test

import (
	"errors"
	"testing"

	mtschema "github.com/kujaku11/mtschema"
)

type item string

func (i item) Key() string { return string(i) }

func TestListDict_AddGetOrder(t *testing.T) {
	ld := mtschema.NewListDict[item]()
	for _, k := range []string{"zz", "aa", "mm"} {
		if err := ld.Add(item(k)); err != nil {
			t.Fatalf("add %q: %v", k, err)
		}
	}
	if ld.Len() != 3 {
		t.Fatalf("len = %d", ld.Len())
	}
	got, err := ld.Get("aa")
	if err != nil || got != item("aa") {
		t.Fatalf("get aa = %v (err %v)", got, err)
	}
	// insertion order, not key order
	want := []string{"zz", "aa", "mm"}
	keys := ld.Keys()
	for i := range want {
		if keys[i] != want[i] {
			t.Fatalf("keys = %v, want %v", keys, want)
		}
	}
	if v, ok := ld.At(1); !ok || v != item("aa") {
		t.Fatalf("At(1) = %v, %v", v, ok)
	}
	if _, ok := ld.At(3); ok {
		t.Fatalf("At(3) should be out of range")
	}
}

func TestListDict_DuplicateAddLeavesCollectionUnchanged(t *testing.T) {
	ld := mtschema.NewListDict[item]()
	if err := ld.Add(item("aa")); err != nil {
		t.Fatalf("add: %v", err)
	}
	err := ld.Add(item("aa"))
	var dup *mtschema.DuplicateKeyError
	if !errors.As(err, &dup) || dup.Key != "aa" {
		t.Fatalf("expected *DuplicateKeyError for aa, got %v", err)
	}
	if ld.Len() != 1 {
		t.Fatalf("duplicate add must not grow the collection: len=%d", ld.Len())
	}
}

func TestListDict_RemoveAndMissingKey(t *testing.T) {
	ld := mtschema.NewListDict[item]()
	_ = ld.Add(item("aa"))
	_ = ld.Add(item("bb"))

	got, err := ld.Remove("aa")
	if err != nil || got != item("aa") {
		t.Fatalf("remove aa = %v (err %v)", got, err)
	}
	if ld.Len() != 1 || ld.Keys()[0] != "bb" {
		t.Fatalf("unexpected state after remove: %v", ld.Keys())
	}

	_, err = ld.Get("aa")
	var nf *mtschema.KeyNotFoundError
	if !errors.As(err, &nf) || nf.Key != "aa" {
		t.Fatalf("expected *KeyNotFoundError for aa, got %v", err)
	}
	if _, err := ld.Remove("aa"); !errors.As(err, &nf) {
		t.Fatalf("expected *KeyNotFoundError on second remove, got %v", err)
	}
}

func TestListDict_EmptyKeyRejected(t *testing.T) {
	ld := mtschema.NewListDict[item]()
	if err := ld.Add(item("")); !errors.Is(err, mtschema.ErrEmptyKey) {
		t.Fatalf("expected ErrEmptyKey, got %v", err)
	}
}

func TestListDict_IterationIsRestartable(t *testing.T) {
	ld := mtschema.NewListDict[item]()
	_ = ld.Add(item("aa"))
	_ = ld.Add(item("bb"))
	_ = ld.Add(item("cc"))

	for range 2 {
		var got []string
		for it := range ld.All() {
			got = append(got, string(it))
		}
		if len(got) != 3 || got[0] != "aa" || got[2] != "cc" {
			t.Fatalf("iteration order = %v", got)
		}
	}

	// early break must not corrupt later iterations
	for it := range ld.All() {
		_ = it
		break
	}
	n := 0
	for range ld.All() {
		n++
	}
	if n != 3 {
		t.Fatalf("expected full re-iteration, got %d", n)
	}
}
