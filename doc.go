/*

Overview

This package is an intrusive, allocation-free GO implementation of AVL
trees, intended for use in programs that need a self-balancing binary
search tree but want full control over the storage of the records held
in it.

"Intrusive" means that the tree node structure (Node) is embedded inside
the data structure to be indexed, in the style commonly used in kernel
data structures.  The core never allocates: insertion is driven by a
caller-supplied factory that produces the node to splice in, and removal
hands the node back in a detached state.  Whatever allocator (or static
storage) owns the surrounding record keeps owning it.

In "C" this idiom is completed by the container_of macro, which recovers
the enclosing structure from a pointer to an embedded member.  We can't
safely cast pointers like that in GO without 'unsafe' games, so the Node
carries an owner field instead: an empty interface the caller binds to
the enclosing record once, via SetOwner.  Comparison predicates receive
that owner value, and Owner returns it for any node handed back by the
tree.  A typical record looks like this:

	type session struct {
		link avl.Node
		id   int64
	}

	s := &session{id: 12345}
	s.link.SetOwner(s)

There is no tree container type in the core: a tree is just a caller
owned root pointer, and the mutating operations take the address of that
pointer because rebalancing may replace the root.  Both the insertion
and the removal retrace are iterative, so the mutating paths use no
stack beyond the call itself and cannot overflow regardless of tree
size.

Briefly, the supported operations are:

- Search (Find)
- Search with insertion on miss (FindOrInsert)
- Removal (Remove)
- Minimum/maximum (Extremum, Min, Max)
- In-order stepping, forwards and backwards (NextInOrder, PrevInOrder)
- Post-order stepping (FirstInPostOrder, NextInPostOrder)
- Recursive traversal with a direction flag (TraverseInOrder,
  TraversePostOrder)

A typed key/value layer (Tree) is provided on top of the core for
callers that just want an ordered map and don't care about storage.

The core is single-owner: operations on one tree must not run
concurrently.  Independent trees share nothing.

*/

package avl
