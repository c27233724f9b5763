// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rbtree

import (
	"cmp"
	"fmt"
	"iter"
	"strings"

	"github.com/jba/rbtree/rng"
	"github.com/pkg/errors"
)

// tree is the state and behavior shared by BST and Tree:
// descent, membership, counting, iteration bounds and rotation.
type tree[T any] struct {
	root   *node[T]
	cmp    func(T, T) int
	lo, hi bound[T]
}

// A BST is an unbalanced binary search tree of values of type T.
// Equal values are kept, so a BST is a multiset.
// Its height is linear in the worst case; use a Tree for logarithmic height.
type BST[T any] struct {
	tree[T]
}

// NewBST returns an empty BST ordered according to T's standard Go ordering.
func NewBST[T cmp.Ordered]() *BST[T] {
	return NewBSTFunc(cmp.Compare[T])
}

// NewBSTFunc returns an empty BST ordered according to cmp.
func NewBSTFunc[T any](cmp func(T, T) int) *BST[T] {
	return &BST[T]{tree[T]{cmp: cmp}}
}

// Insert adds v to t.
// It returns an error wrapping ErrNilValue if v is nil.
func (t *BST[T]) Insert(v T) error {
	if isNil(v) {
		return errors.WithStack(ErrNilValue)
	}
	t.attach(&node[T]{val: v})
	return nil
}

// String returns the values of t in level order, as in "[ 5, 2, 10 ]".
func (t *BST[T]) String() string {
	return t.levelOrder(false)
}

// find reports where a new node holding v would be attached: at *pos.
// Larger values go right and ties go left, so *pos is always nil.
// If parent != nil, pos is &parent.left or &parent.right.
// If parent == nil, the tree is empty and pos is &t.root.
func (t *tree[T]) find(v T) (pos **node[T], parent *node[T]) {
	pos = &t.root
	for x := *pos; x != nil; x = *pos {
		parent = x
		if t.cmp(v, x.val) > 0 {
			pos = &x.right
		} else {
			pos = &x.left
		}
	}
	return pos, parent
}

// attach links x into the tree at the first free slot on its search path.
func (t *tree[T]) attach(x *node[T]) {
	pos, parent := t.find(x.val)
	x.parent = parent
	*pos = x
}

// Contains reports whether a value comparing equal to v is in t.
// It returns false for a nil v.
func (t *tree[T]) Contains(v T) bool {
	if isNil(v) {
		return false
	}
	for x := t.root; x != nil; {
		switch c := t.cmp(v, x.val); {
		case c > 0:
			x = x.right
		case c < 0:
			x = x.left
		default:
			return true
		}
	}
	return false
}

// Len returns the number of values in t, counting duplicates separately.
func (t *tree[T]) Len() int {
	return t.root.size()
}

// IsEmpty reports whether t holds no values.
func (t *tree[T]) IsEmpty() bool {
	return t.root == nil
}

// Clear removes all values from t.
// The iteration bounds are left unchanged.
func (t *tree[T]) Clear() {
	t.root = nil
}

// Min returns the smallest value in t and true.
// If t is empty, the second return value is false.
func (t *tree[T]) Min() (T, bool) {
	if t.root == nil {
		var z T
		return z, false
	}
	return t.root.minNode().val, true
}

// Max returns the largest value in t and true.
// If t is empty, the second return value is false.
func (t *tree[T]) Max() (T, bool) {
	if t.root == nil {
		var z T
		return z, false
	}
	return t.root.maxNode().val, true
}

// SetIteratorMin sets the inclusive lower bound used by every iterator
// created afterwards, until it is set again. A nil min removes the bound.
func (t *tree[T]) SetIteratorMin(min T) {
	if isNil(min) {
		t.lo = bound[T]{}
		return
	}
	t.lo = including(min)
}

// SetIteratorMax sets the inclusive upper bound used by every iterator
// created afterwards, until it is set again. A nil max removes the bound.
func (t *tree[T]) SetIteratorMax(max T) {
	if isNil(max) {
		t.hi = bound[T]{}
		return
	}
	t.hi = including(max)
}

// ClearIteratorMin removes the lower iteration bound.
func (t *tree[T]) ClearIteratorMin() { t.lo = bound[T]{} }

// ClearIteratorMax removes the upper iteration bound.
func (t *tree[T]) ClearIteratorMax() { t.hi = bound[T]{} }

// SetIteratorRange sets both iteration bounds from r.
// Unlike SetIteratorMin and SetIteratorMax, r may describe exclusive bounds.
func (t *tree[T]) SetIteratorRange(r rng.Range[T]) {
	t.lo = rangeBound[T](r.Low())
	t.hi = rangeBound[T](r.High())
}

func rangeBound[T any](v T, infinite, inclusive bool) bound[T] {
	switch {
	case infinite:
		return bound[T]{}
	case inclusive:
		return including(v)
	default:
		return excluding(v)
	}
}

// IteratorRange returns the iteration bounds currently in effect.
func (t *tree[T]) IteratorRange() rng.Range[T] {
	r := rng.All[T]()
	switch {
	case !t.lo.present:
	case t.lo.inclusive:
		r = rng.From(t.lo.val)
	default:
		r = rng.Above(t.lo.val)
	}
	switch {
	case !t.hi.present:
	case t.hi.inclusive:
		r = r.To(t.hi.val)
	default:
		r = r.Below(t.hi.val)
	}
	return r
}

// Iterator returns an iterator over the values of t in ascending order,
// limited by the bounds in effect now.
// The iterator must not be used after t is modified.
func (t *tree[T]) Iterator() *Iterator[T] {
	return newIterator(t.root, t.cmp, t.lo, t.hi)
}

// All returns an iterator over the values of t in ascending order,
// limited by the bounds in effect when All is called.
// t must not be modified during the iteration.
func (t *tree[T]) All() iter.Seq[T] {
	lo, hi := t.lo, t.hi
	return func(yield func(T) bool) {
		it := newIterator(t.root, t.cmp, lo, hi)
		for it.HasNext() {
			v, _ := it.Next()
			if !yield(v) {
				return
			}
		}
	}
}

// verifyLinks checks that parent and child links agree
// and that an in-order walk is non-decreasing.
func (t *tree[T]) verifyLinks() error {
	if t.root == nil {
		return nil
	}
	if t.root.parent != nil {
		return errors.Wrapf(ErrCorrupt, "root %v has a parent", t.root.val)
	}
	var walk func(*node[T]) error
	walk = func(x *node[T]) error {
		for _, c := range []*node[T]{x.left, x.right} {
			if c == nil {
				continue
			}
			if c.parent != x {
				return errors.Wrapf(ErrCorrupt, "child %v of %v has the wrong parent", c.val, x.val)
			}
			if err := walk(c); err != nil {
				return err
			}
		}
		return nil
	}
	if err := walk(t.root); err != nil {
		return err
	}
	prev := t.root.minNode()
	for x := prev.next(); x != nil; prev, x = x, x.next() {
		if t.cmp(prev.val, x.val) > 0 {
			return errors.Wrapf(ErrCorrupt, "%v precedes %v", prev.val, x.val)
		}
	}
	return nil
}

// levelOrder renders the values of t breadth first,
// each followed by its color if colored is set.
func (t *tree[T]) levelOrder(colored bool) string {
	if t.root == nil {
		return "[ ]"
	}
	var b strings.Builder
	b.WriteString("[ ")
	q := []*node[T]{t.root}
	for i := 0; i < len(q); i++ {
		x := q[i]
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprint(&b, x.val)
		if colored {
			if x.red {
				b.WriteString("(r)")
			} else {
				b.WriteString("(b)")
			}
		}
		if x.left != nil {
			q = append(q, x.left)
		}
		if x.right != nil {
			q = append(q, x.right)
		}
	}
	b.WriteString(" ]")
	return b.String()
}
