// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rbtree

import (
	"reflect"

	"github.com/pkg/errors"
)

// A node is a node in the tree.
// red is only meaningful in a Tree; nodes of a BST are always black.
type node[T any] struct {
	parent *node[T]
	left   *node[T]
	right  *node[T]
	val    T
	red    bool
}

// isRed reports whether x is red. Nil nodes are black.
func (x *node[T]) isRed() bool {
	return x != nil && x.red
}

// size returns the number of nodes in x's subtree.
func (x *node[T]) size() int {
	if x == nil {
		return 0
	}
	return 1 + x.left.size() + x.right.size()
}

// minNode returns the node in x's subtree with the smallest value.
// x must not be nil.
func (x *node[T]) minNode() *node[T] {
	for x.left != nil {
		x = x.left
	}
	return x
}

// maxNode returns the node in x's subtree with the largest value.
// x must not be nil.
func (x *node[T]) maxNode() *node[T] {
	for x.right != nil {
		x = x.right
	}
	return x
}

// next returns the in-order successor of x, or nil.
// x must not be nil.
func (x *node[T]) next() *node[T] {
	if x.right == nil {
		for x.parent != nil && x.parent.right == x {
			x = x.parent
		}
		return x.parent
	}
	return x.right.minNode()
}

// rotate moves child into parent's position, making parent a child of child.
// If child is parent.left this is a right rotation, if child is parent.right
// a left rotation. In-order sequence is preserved. Colors are not touched.
func (t *tree[T]) rotate(child, parent *node[T]) error {
	if child == nil || parent == nil {
		return errors.WithStack(ErrNilNode)
	}
	switch child {
	case parent.left:
		t.rotateRight(parent)
	case parent.right:
		t.rotateLeft(parent)
	default:
		return errors.Wrapf(ErrNotChild, "rotate %v under %v", child.val, parent.val)
	}
	return nil
}

// rotateLeft rotates the subtree rooted at node x,
// turning (x a (y b c)) into (y (x a b) c).
func (t *tree[T]) rotateLeft(x *node[T]) {
	// p -> (x a (y b c))
	p := x.parent
	y := x.right
	b := y.left

	y.left = x
	x.parent = y
	x.right = b
	if b != nil {
		b.parent = x
	}
	t.replaceChild(p, x, y)
}

// rotateRight rotates the subtree rooted at node y,
// turning (y (x a b) c) into (x a (y b c)).
func (t *tree[T]) rotateRight(y *node[T]) {
	// p -> (y (x a b) c)
	p := y.parent
	x := y.left
	b := x.right

	x.right = y
	y.parent = x
	y.left = b
	if b != nil {
		b.parent = y
	}
	t.replaceChild(p, y, x)
}

// replaceChild repoints whichever link of p held old to x.
// A nil p means old was the root.
func (t *tree[T]) replaceChild(p, old, x *node[T]) {
	x.parent = p
	switch {
	case p == nil:
		t.root = x
	case p.left == old:
		p.left = x
	case p.right == old:
		p.right = x
	default:
		// unreachable
		panic("rbtree: corrupt tree")
	}
}

// isNil reports whether v is a nil pointer, interface, map, slice, func or chan.
func isNil[T any](v T) bool {
	rv := reflect.ValueOf(any(v))
	if !rv.IsValid() {
		return true
	}
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice,
		reflect.Func, reflect.Chan, reflect.UnsafePointer:
		return rv.IsNil()
	}
	return false
}
