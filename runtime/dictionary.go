package runtime

import (
	"fmt"

	"github.com/cnf/structhash"
	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"
)

// The dictionary of words. There is a single dictionary for a run, without
// any scopes: defining a name which is already present replaces the
// existing binding, regardless of whether it is a builtin or a user word.

// --- Words -----------------------------------------------------------------

// WordKind discriminates builtin words from user defined words.
type WordKind int8

const (
	NoWord WordKind = iota
	NativeWord
	UserWord
)

func (k WordKind) String() string {
	switch k {
	case NativeWord:
		return "native"
	case UserWord:
		return "user"
	}
	return "none"
}

// NativeFunc is the type of builtin words. A native word operates on the
// stack and the dictionary of a runtime environment.
type NativeFunc func(rt *Runtime) error

// Word is the behavior bound to a name: either a native function or a block of
// expressions, captured at definition time.
type Word struct {
	kind   WordKind
	native NativeFunc
	body   Block
}

// Native wraps a Go function as a word.
func Native(fn NativeFunc) Word {
	return Word{kind: NativeWord, native: fn}
}

// UserDefined creates a word from a block. The block is copied.
func UserDefined(body Block) Word {
	return Word{kind: UserWord, body: body.Clone()}
}

// Kind returns the kind of word.
func (w Word) Kind() WordKind {
	return w.kind
}

// Func returns the function of a native word.
func (w Word) Func() NativeFunc {
	return w.native
}

// Body returns the expressions of a user word.
func (w Word) Body() Block {
	return w.body
}

// detach makes w independent from any dictionary entry.
func (w Word) detach() Word {
	w.body = w.body.Clone()
	return w
}

// --- Entries ---------------------------------------------------------------

// Entry is a binding of a word to a name. Each Bind creates a new entry;
// entries are never modified after creation.
type Entry struct {
	name       string
	word       Word
	Generation int // how many times the name has been bound
}

// Name gets the entry's name.
func (e *Entry) Name() string {
	return e.name
}

// Word returns the bound word.
func (e *Entry) Word() Word {
	return e.word
}

// String is a debug Stringer for entries.
func (e *Entry) String() string {
	return fmt.Sprintf("<word '%s':%s#%d>", e.name, e.word.kind, e.Generation)
}

// === Dictionary ============================================================

// Dictionary stores words by name (map-like semantics).
type Dictionary struct {
	table map[string]*Entry
}

// NewDictionary creates an empty dictionary.
func NewDictionary() *Dictionary {
	return &Dictionary{table: make(map[string]*Entry)}
}

// Lookup checks for an entry in the dictionary.
// Returns an entry or nil.
func (d *Dictionary) Lookup(name string) *Entry {
	return d.table[name]
}

// Resolve returns the word bound to name at the time of the call, or an
// UnknownWord error.
//
// The word returned is detached from the dictionary: the body of a user word
// is a copy of its own. Clients are free to re-bind any name, including name,
// while executing the word.
func (d *Dictionary) Resolve(name string) (Word, error) {
	entry := d.table[name]
	if entry == nil {
		return Word{}, UnknownWord{Name: name}
	}
	return entry.word.detach(), nil
}

// Bind binds a word to a name, overwriting an existing binding for this name.
// No validation of the name is done here.
// Returns the previously stored entry (or nil).
func (d *Dictionary) Bind(name string, w Word) *Entry {
	old := d.table[name]
	entry := &Entry{name: name, word: w.detach(), Generation: 1}
	if old != nil {
		entry.Generation = old.Generation + 1
		tracer().P("word", name).Debugf("re-binding, generation %d", entry.Generation)
	}
	d.table[name] = entry
	return old
}

// Has is a predicate: is a word bound to name?
func (d *Dictionary) Has(name string) bool {
	_, ok := d.table[name]
	return ok
}

// Size counts the entries in a dictionary.
func (d *Dictionary) Size() int {
	return len(d.table)
}

// Names returns the names of all words, sorted.
func (d *Dictionary) Names() []string {
	set := treeset.NewWith(utils.StringComparator)
	for name := range d.table {
		set.Add(name)
	}
	names := make([]string, 0, set.Size())
	for _, n := range set.Values() {
		names = append(names, n.(string))
	}
	return names
}

// wordDigest is the hashable form of a binding.
type wordDigest struct {
	Name string
	Kind string
	Body []string
}

// Fingerprint returns a hash of the binding of name. Two bindings with equal
// bodies have equal fingerprints; native words are identified by name only.
func (d *Dictionary) Fingerprint(name string) (string, error) {
	entry := d.table[name]
	if entry == nil {
		return "", UnknownWord{Name: name}
	}
	digest := wordDigest{Name: name, Kind: entry.word.kind.String()}
	for _, e := range entry.word.body {
		digest.Body = append(digest.Body, e.GoString())
	}
	return structhash.Hash(digest, 1)
}
