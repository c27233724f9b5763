// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rbtree

import "github.com/pkg/errors"

// A bound is one end of an iteration interval.
// The zero bound is absent, meaning unbounded.
type bound[T any] struct {
	val       T
	present   bool
	inclusive bool
}

func including[T any](v T) bound[T] {
	return bound[T]{v, true, true}
}

func excluding[T any](v T) bound[T] {
	return bound[T]{v, true, false}
}

// An Iterator yields the values of a tree in ascending order,
// limited to the bounds that were in effect when it was created.
//
// An Iterator does the work of an in-order walk lazily:
// creating one costs time proportional to the height of the tree,
// and each call to Next costs amortized constant time.
// It is not restartable; ask the tree for a new one to iterate again.
type Iterator[T any] struct {
	// stack holds the nodes whose values have not been yielded
	// and whose left subtrees have been. The top is the smallest.
	stack  []*node[T]
	cmp    func(T, T) int
	lo, hi bound[T]
}

func newIterator[T any](root *node[T], cmp func(T, T) int, lo, hi bound[T]) *Iterator[T] {
	it := &Iterator[T]{cmp: cmp, lo: lo, hi: hi}
	it.pushLeft(root)
	return it
}

// pushLeft pushes the left spine of x, skipping every subtree
// that lies wholly below the lower bound.
func (it *Iterator[T]) pushLeft(x *node[T]) {
	for x != nil {
		if it.aboveLo(x.val) {
			it.stack = append(it.stack, x)
			x = x.left
		} else {
			// x and its left subtree are below lo.
			x = x.right
		}
	}
}

func (it *Iterator[T]) aboveLo(v T) bool {
	if !it.lo.present {
		return true
	}
	c := it.cmp(v, it.lo.val)
	return c > 0 || c == 0 && it.lo.inclusive
}

func (it *Iterator[T]) belowHi(v T) bool {
	if !it.hi.present {
		return true
	}
	c := it.cmp(v, it.hi.val)
	return c < 0 || c == 0 && it.hi.inclusive
}

// HasNext reports whether Next will return a value.
func (it *Iterator[T]) HasNext() bool {
	n := len(it.stack)
	if n > 0 && !it.belowHi(it.stack[n-1].val) {
		// Everything else on the stack and to its right is larger still.
		clear(it.stack)
		it.stack = it.stack[:0]
	}
	return len(it.stack) > 0
}

// Next returns the next value.
// If there is none, it returns an error wrapping ErrExhausted.
func (it *Iterator[T]) Next() (T, error) {
	if !it.HasNext() {
		var z T
		return z, errors.WithStack(ErrExhausted)
	}
	n := len(it.stack) - 1
	x := it.stack[n]
	it.stack[n] = nil
	it.stack = it.stack[:n]
	it.pushLeft(x.right)
	return x.val, nil
}
