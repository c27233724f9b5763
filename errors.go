// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rbtree

import "github.com/pkg/errors"

var (
	// ErrNilValue is returned by Insert when the value is a nil pointer,
	// interface, map, slice, func or chan. Nil values cannot be ordered.
	ErrNilValue = errors.New("rbtree: nil value")

	// ErrNilNode is returned when a structural operation is handed a nil node.
	ErrNilNode = errors.New("rbtree: nil node")

	// ErrNotChild is returned by a rotation whose child argument
	// is not a direct child of its parent argument.
	ErrNotChild = errors.New("rbtree: node is not a child of parent")

	// ErrExhausted is returned by Iterator.Next when no values remain.
	ErrExhausted = errors.New("rbtree: iterator exhausted")

	// ErrCorrupt is returned by Verify when a structural invariant does not hold.
	ErrCorrupt = errors.New("rbtree: corrupt tree")
)
