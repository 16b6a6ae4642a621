package symtab

import (
	"fmt"

	"github.com/emirpasic/gods/maps/hashbidimap"
)

// Key is the identity of an interned identifier. The zero value is never
// handed out and denotes "no symbol".
type Key uint64

// NoKey is the invalid key.
const NoKey Key = 0

// Unknown is the placeholder name for keys without a namespace entry.
const Unknown = "Unknown"

func (k Key) String() string {
	return fmt.Sprintf("#%d", uint64(k))
}

// Namespace is a bidirectional mapping between identifier text and keys.
type Namespace struct {
	names *hashbidimap.Map // name (string) ⟷ key (Key)
	next  Key
}

// NewNamespace creates an empty namespace.
func NewNamespace() *Namespace {
	return &Namespace{
		names: hashbidimap.New(),
		next:  1,
	}
}

// Intern returns the key for name, creating one if name is new.
func (ns *Namespace) Intern(name string) Key {
	if k, ok := ns.names.Get(name); ok {
		return k.(Key)
	}
	k := ns.next
	ns.next++
	ns.names.Put(name, k)
	tracer().P("sym", name).Debugf("interned as %s", k)
	return k
}

// Lookup finds the key for name without interning it.
func (ns *Namespace) Lookup(name string) (Key, bool) {
	if k, ok := ns.names.Get(name); ok {
		return k.(Key), true
	}
	return NoKey, false
}

// Name returns the identifier text for a key.
func (ns *Namespace) Name(k Key) (string, bool) {
	if ns == nil {
		return "", false
	}
	if name, ok := ns.names.GetKey(k); ok {
		return name.(string), true
	}
	return "", false
}

// NameOf returns the identifier text for a key, or Unknown.
func (ns *Namespace) NameOf(k Key) string {
	if name, ok := ns.Name(k); ok {
		return name
	}
	return Unknown
}

// Size returns the number of interned identifiers.
func (ns *Namespace) Size() int {
	return ns.names.Size()
}

// Names returns all interned identifiers, in no particular order.
func (ns *Namespace) Names() []string {
	names := make([]string, 0, ns.names.Size())
	for _, n := range ns.names.Keys() {
		names = append(names, n.(string))
	}
	return names
}
