package avl

import "golang.org/x/exp/constraints"

//
// Typed key/value layer over the intrusive core, for callers that just
// want an ordered map and have no storage of their own to thread the
// node through.  Each Put allocates one entry holding the embedded
// node; the core itself still never allocates.
//

type entry[K constraints.Ordered, V any] struct {
	node  Node
	key   K
	value V
}

func compareKey[K constraints.Ordered, V any](target, owner any) int {
	k := target.(K)
	ek := owner.(*entry[K, V]).key
	switch {
	case k < ek:
		return -1
	case k > ek:
		return +1
	}
	return 0
}

// Tree is an ordered map from K to V backed by the intrusive AVL core.
// The zero value is an empty tree ready to use.  Like the core it is
// single-owner: no concurrent use of one Tree.
type Tree[K constraints.Ordered, V any] struct {
	root *Node
	size int
}

// Len returns the number of keys in the tree.
func (t *Tree[K, V]) Len() int {
	return t.size
}

// Put associates value with key, replacing any previous value.  It
// reports whether the key was already present.
func (t *Tree[K, V]) Put(key K, value V) bool {
	n, existed := FindOrInsert(&t.root, key, compareKey[K, V], func(target any) *Node {
		e := &entry[K, V]{key: target.(K), value: value}
		e.node.SetOwner(e)
		return &e.node
	})
	if existed {
		n.Owner().(*entry[K, V]).value = value
		return true
	}
	t.size++
	return false
}

// Get returns the value associated with key and whether it is present.
func (t *Tree[K, V]) Get(key K) (V, bool) {
	n := Find(t.root, key, compareKey[K, V])
	if n == nil {
		var zero V
		return zero, false
	}
	return n.Owner().(*entry[K, V]).value, true
}

// Delete removes key from the tree and reports whether it was present.
func (t *Tree[K, V]) Delete(key K) bool {
	n := Find(t.root, key, compareKey[K, V])
	if n == nil {
		return false
	}
	Remove(&t.root, n)
	t.size--
	return true
}

// Min returns the least key and its value; ok is false on an empty
// tree.
func (t *Tree[K, V]) Min() (key K, value V, ok bool) {
	return ownerKV[K, V](Min(t.root))
}

// Max returns the greatest key and its value; ok is false on an empty
// tree.
func (t *Tree[K, V]) Max() (key K, value V, ok bool) {
	return ownerKV[K, V](Max(t.root))
}

func ownerKV[K constraints.Ordered, V any](n *Node) (key K, value V, ok bool) {
	if n == nil {
		return key, value, false
	}
	e := n.Owner().(*entry[K, V])
	return e.key, e.value, true
}

// Ascend calls fn for every key/value pair in ascending key order,
// stopping early if fn returns false.  fn must not mutate the tree.
func (t *Tree[K, V]) Ascend(fn func(key K, value V) bool) {
	t.walk(false, fn)
}

// Descend is Ascend in descending key order.
func (t *Tree[K, V]) Descend(fn func(key K, value V) bool) {
	t.walk(true, fn)
}

func (t *Tree[K, V]) walk(reverse bool, fn func(key K, value V) bool) {
	TraverseInOrder(t.root, reverse, func(n *Node) bool {
		e := n.Owner().(*entry[K, V])
		return fn(e.key, e.value)
	})
}
