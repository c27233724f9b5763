// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package rbtree implements in-memory ordered multisets.
// [Tree][T] is a red-black tree with logarithmic height;
// [BST][T] is the same collection without balancing.
//
// Both keep duplicate values and iterate in ascending order,
// optionally limited to an interval set with SetIteratorMin,
// SetIteratorMax or SetIteratorRange.
//
// Neither is safe for concurrent use.
package rbtree

// The insertion repair follows the usual three cases on the color
// of the new node's uncle. See:
// https://en.wikipedia.org/wiki/Red%E2%80%93black_tree#Insertion

import (
	"cmp"
	"iter"

	"github.com/pkg/errors"
)

// Collection is the contract shared by BST and Tree.
type Collection[T any] interface {
	Insert(v T) error
	Contains(v T) bool
	Len() int
	IsEmpty() bool
	Clear()
}

// IterableCollection is a Collection whose values can be visited
// in ascending order within sticky bounds.
type IterableCollection[T any] interface {
	Collection[T]
	SetIteratorMin(min T)
	SetIteratorMax(max T)
	Iterator() *Iterator[T]
	All() iter.Seq[T]
}

var (
	_ IterableCollection[int] = (*BST[int])(nil)
	_ IterableCollection[int] = (*Tree[int])(nil)
)

// A Tree is a red-black tree of values of type T.
// Equal values are kept, so a Tree is a multiset.
// The zero value of a Tree is not meaningful since it has no comparison function.
// Use [New] or [NewFunc] to create a Tree.
type Tree[T any] struct {
	tree[T]
}

// New returns an empty Tree ordered according to T's standard Go ordering.
func New[T cmp.Ordered]() *Tree[T] {
	return NewFunc(cmp.Compare[T])
}

// NewFunc returns an empty Tree ordered according to cmp.
func NewFunc[T any](cmp func(T, T) int) *Tree[T] {
	return &Tree[T]{tree[T]{cmp: cmp}}
}

// Insert adds v to t, restoring the red-black properties.
// It returns an error wrapping ErrNilValue if v is nil.
func (t *Tree[T]) Insert(v T) error {
	if isNil(v) {
		return errors.WithStack(ErrNilValue)
	}
	x := &node[T]{val: v, red: true}
	if t.root == nil {
		x.red = false
		t.root = x
		return nil
	}
	t.attach(x)
	if err := t.ensureRedProperty(x); err != nil {
		return err
	}
	t.root.red = false
	return nil
}

// ensureRedProperty repairs a red x that may have a red parent,
// walking toward the root until no two reds are adjacent.
// The root may be left red; the caller blackens it.
func (t *Tree[T]) ensureRedProperty(x *node[T]) error {
	if x == nil {
		return errors.WithStack(ErrNilNode)
	}
	for {
		p := x.parent
		if p == nil || !p.red {
			return nil
		}
		g := p.parent
		if g == nil {
			return errors.Wrapf(ErrCorrupt, "red root %v", p.val)
		}
		uncle := g.left
		if uncle == p {
			uncle = g.right
		}

		// Red uncle: push the red up to g and continue from there.
		if uncle.isRed() {
			g.left.red = false
			g.right.red = false
			g.red = true
			x = g
			continue
		}

		// Black uncle, zigzag: rotate x over p to make a straight line,
		// after which x stands where p did.
		if (x == p.left) != (p == g.left) {
			if err := t.rotate(x, p); err != nil {
				return errors.Wrap(err, "zigzag rotation")
			}
			p = x
		}

		// Black uncle, straight line: rotate p over g and swap their colors.
		if err := t.rotate(p, g); err != nil {
			return errors.Wrap(err, "line rotation")
		}
		p.red = false
		g.red = true
		return nil
	}
}

// String returns the values of t in level order with their colors,
// as in "[ 10(b), 5(b), 15(b), 1(r) ]".
func (t *Tree[T]) String() string {
	return t.levelOrder(true)
}

// Verify checks the structure of t: parent links, ordering,
// and the red-black properties. It returns an error wrapping ErrCorrupt
// that describes the first violation found.
func (t *Tree[T]) Verify() error {
	if err := t.verifyLinks(); err != nil {
		return err
	}
	if t.root.isRed() {
		return errors.Wrapf(ErrCorrupt, "red root %v", t.root.val)
	}
	_, err := blackHeight(t.root)
	return err
}

// blackHeight returns the number of black nodes on every path
// from x down to a nil child, counting the nil child.
func blackHeight[T any](x *node[T]) (int, error) {
	if x == nil {
		return 1, nil
	}
	if x.red && (x.left.isRed() || x.right.isRed()) {
		return 0, errors.Wrapf(ErrCorrupt, "red %v has a red child", x.val)
	}
	l, err := blackHeight(x.left)
	if err != nil {
		return 0, err
	}
	r, err := blackHeight(x.right)
	if err != nil {
		return 0, err
	}
	if l != r {
		return 0, errors.Wrapf(ErrCorrupt, "black height of %v: left %d, right %d", x.val, l, r)
	}
	if !x.red {
		l++
	}
	return l, nil
}
