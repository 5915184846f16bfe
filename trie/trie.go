// Package trie provides the encoder-side phrase codebook for lzvar compression.
package trie

// NoCode marks a node whose phrase has been evicted (or that only exists as
// an interior node on the way to longer phrases).
const NoCode = ^uint32(0)

// Node represents one phrase: the path of symbols from a root down to it.
// A node stays allocated after its phrase is evicted so that longer phrases
// routed through it remain reachable; only its code slot is cleared.
type Node struct {
	children map[byte]*Node
	code     uint32
}

// Tree maps phrases to integer codes, extended one symbol at a time.
//
// Lookups never hash or compare a full phrase: the caller walks the tree
// with Next as it consumes symbols, so the hot-path "does phrase+symbol
// exist?" check is a single map access on the current node. Deletion is a
// tombstone: the node keeps its children but loses its code until Put
// revives it.
type Tree struct {
	roots [256]*Node
}

// New creates an empty tree.
func New() *Tree {
	return &Tree{}
}

// PutRoot binds the single-symbol phrase sym to code and returns its node.
func (t *Tree) PutRoot(sym byte, code uint32) *Node {
	n := t.roots[sym]
	if n == nil {
		n = &Node{code: NoCode}
		t.roots[sym] = n
	}
	n.code = code
	return n
}

// Root returns the node of the single-symbol phrase sym, or nil.
func (t *Tree) Root(sym byte) *Node {
	return t.roots[sym]
}

// Put binds the phrase of parent extended by sym to code, creating or
// reviving the child node, and returns it.
func (t *Tree) Put(parent *Node, sym byte, code uint32) *Node {
	if parent.children == nil {
		parent.children = make(map[byte]*Node)
	}
	n := parent.children[sym]
	if n == nil {
		n = &Node{code: NoCode}
		parent.children[sym] = n
	}
	n.code = code
	return n
}

// Next returns the live child of n for symbol sym, or nil if that extension
// is absent or tombstoned.
func (n *Node) Next(sym byte) *Node {
	if n.children == nil {
		return nil
	}
	c := n.children[sym]
	if c == nil || c.code == NoCode {
		return nil
	}
	return c
}

// Code returns the code bound to n. Only valid for live nodes.
func (n *Node) Code() uint32 {
	return n.code
}

// Live reports whether n currently maps to a code.
func (n *Node) Live() bool {
	return n.code != NoCode
}

// Delete tombstones n: its phrase no longer resolves, but descendants stay
// reachable and the node can be revived by a later Put.
func (n *Node) Delete() {
	n.code = NoCode
}
