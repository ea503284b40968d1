package runtime

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func nop(*Runtime) error { return nil }

func TestNewDictionary(t *testing.T) {
	dict := NewDictionary()
	if dict == nil || dict.Size() != 0 {
		t.Error("no empty dictionary created")
	}
}

func TestBindAndResolve(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "stax.runtime")
	defer teardown()
	//
	dict := NewDictionary()
	if old := dict.Bind("x", UserDefined(Block{Literal(Number(1))})); old != nil {
		t.Errorf("first binding should not replace anything")
	}
	w, err := dict.Resolve("x")
	if err != nil {
		t.Fatal(err)
	}
	if w.Kind() != UserWord || len(w.Body()) != 1 {
		t.Errorf("unexpected word %+v", w)
	}
	if !dict.Has("x") || dict.Has("y") {
		t.Errorf("Has() is broken")
	}
}

func TestResolveUnknown(t *testing.T) {
	dict := NewDictionary()
	_, err := dict.Resolve("nope")
	var unknown UnknownWord
	if !errors.As(err, &unknown) || unknown.Name != "nope" {
		t.Errorf("expected UnknownWord 'nope', got %v", err)
	}
	if _, err := dict.Fingerprint("nope"); err == nil {
		t.Errorf("expected fingerprint of unknown word to fail")
	}
}

func TestRebind(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "stax.runtime")
	defer teardown()
	//
	dict := NewDictionary()
	dict.Bind("x", Native(nop))
	first := dict.Lookup("x")
	old := dict.Bind("x", UserDefined(Block{Literal(Number(2))}))
	if old != first {
		t.Error("entry should have been replaced")
	}
	if dict.Size() != 1 {
		t.Errorf("expected exactly one entry, have %d", dict.Size())
	}
	if e := dict.Lookup("x"); e.Generation != 2 || e.Word().Kind() != UserWord {
		t.Errorf("unexpected entry after re-binding: %v", e)
	}
}

func TestResolveIsDetached(t *testing.T) {
	dict := NewDictionary()
	dict.Bind("x", UserDefined(Block{Literal(Number(1)), WordRef("dup")}))
	w, _ := dict.Resolve("x")
	body := w.Body()
	dict.Bind("x", UserDefined(Block{WordRef("pop")})) // re-bind while "executing"
	body[0] = WordRef("clobbered")                    // tamper with the snapshot
	if len(w.Body()) != 2 || w.Body()[1].Name() != "dup" {
		t.Errorf("snapshot should survive re-binding, is %v", w.Body())
	}
	w2, _ := dict.Resolve("x")
	if len(w2.Body()) != 1 || w2.Body()[0].Name() != "pop" {
		t.Errorf("new lookup should see new binding, is %v", w2.Body())
	}
}

func TestNamesSorted(t *testing.T) {
	dict := NewDictionary()
	for _, name := range []string{"swp", "add", "dup", "_x"} {
		dict.Bind(name, Native(nop))
	}
	names := dict.Names()
	expected := []string{"_x", "add", "dup", "swp"}
	if len(names) != len(expected) {
		t.Fatalf("expected %d names, have %v", len(expected), names)
	}
	for i := range expected {
		if names[i] != expected[i] {
			t.Errorf("expected names %v, have %v", expected, names)
			break
		}
	}
}

func TestFingerprint(t *testing.T) {
	dict := NewDictionary()
	dict.Bind("a", UserDefined(Block{Literal(Number(1))}))
	dict.Bind("b", UserDefined(Block{Literal(Number(1))}))
	fa1, err := dict.Fingerprint("a")
	if err != nil {
		t.Fatal(err)
	}
	fb, _ := dict.Fingerprint("b")
	if fa1 == fb {
		t.Errorf("fingerprints of different names should differ")
	}
	dict.Bind("a", UserDefined(Block{Literal(Number(1))}))
	fa2, _ := dict.Fingerprint("a")
	if fa1 != fa2 {
		t.Errorf("re-binding an equal body should keep the fingerprint")
	}
	dict.Bind("a", UserDefined(Block{Literal(Number(2))}))
	fa3, _ := dict.Fingerprint("a")
	if fa1 == fa3 {
		t.Errorf("re-binding a different body should change the fingerprint")
	}
}
