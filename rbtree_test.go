// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rbtree

import (
	"bytes"
	"fmt"
	"math"
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/jba/rbtree/rng"
	"github.com/pkg/errors"
)

type Interface[T any] interface {
	IterableCollection[T]
	SetIteratorRange(rng.Range[T])
	IteratorRange() rng.Range[T]
	Min() (T, bool)
	Max() (T, bool)
}

func rootOf[T any](m Interface[T]) *node[T] {
	switch m := m.(type) {
	case *BST[T]:
		return m.root
	case *Tree[T]:
		return m.root
	default:
		panic("unimp")
	}
}

func treeOf[T any](m Interface[T]) *tree[T] {
	switch m := m.(type) {
	case *BST[T]:
		return &m.tree
	case *Tree[T]:
		return &m.tree
	default:
		panic("unimp")
	}
}

// permute inserts n values in random order, each twice when dups is set,
// and returns the sorted multiset that was inserted.
func permute(t *testing.T, m Interface[int], n int, dups bool) []int {
	t.Helper()
	var want []int
	for _, x := range rand.Perm(n) {
		copies := 1
		if dups && x%2 == 0 {
			copies = 2
		}
		for range copies {
			if err := m.Insert(x); err != nil {
				t.Fatal(err)
			}
			want = append(want, x)
		}
	}
	slices.Sort(want)
	return want
}

func dump[T any](x *node[T]) string {
	var buf bytes.Buffer
	var walk func(*node[T])
	walk = func(x *node[T]) {
		if x == nil {
			fmt.Fprintf(&buf, "nil")
			return
		}
		fmt.Fprintf(&buf, "(%v ", x.val)
		walk(x.left)
		fmt.Fprintf(&buf, " ")
		walk(x.right)
		fmt.Fprintf(&buf, ")")
	}
	walk(x)
	return buf.String()
}

func height[T any](x *node[T]) int {
	if x == nil {
		return 0
	}
	return 1 + max(height(x.left), height(x.right))
}

func test(t *testing.T, f func(*testing.T, func() Interface[int])) {
	t.Run("BST", func(t *testing.T) {
		f(t, func() Interface[int] { return NewBST[int]() })
	})
	t.Run("Tree", func(t *testing.T) {
		f(t, func() Interface[int] { return New[int]() })
	})
}

func TestInsertLen(t *testing.T) {
	test(t, func(t *testing.T, newTree func() Interface[int]) {
		for N := range 30 {
			m := newTree()
			if !m.IsEmpty() {
				t.Fatal("new tree is not empty")
			}
			want := permute(t, m, N, true)
			if got := m.Len(); got != len(want) {
				t.Errorf("N=%d: Len() = %d, want %d", N, got, len(want))
			}
			if m.IsEmpty() != (N == 0) {
				t.Errorf("N=%d: IsEmpty() = %t", N, m.IsEmpty())
			}
			if err := treeOf(m).verifyLinks(); err != nil {
				t.Fatalf("N=%d: %v\n%s", N, err, dump(rootOf(m)))
			}
			if got := slices.Collect(m.All()); !slices.Equal(got, want) {
				t.Errorf("N=%d: All() = %v, want %v", N, got, want)
			}
		}
	})
}

func TestContains(t *testing.T) {
	test(t, func(t *testing.T, newTree func() Interface[int]) {
		for N := range 20 {
			m := newTree()
			for _, x := range rand.Perm(N) {
				m.Insert(2*x + 1)
			}
			for k := range 2*N + 2 {
				if got, want := m.Contains(k), k%2 == 1 && k < 2*N; got != want {
					t.Fatalf("N=%d: Contains(%d) = %t, want %t\n%s", N, k, got, want, dump(rootOf(m)))
				}
			}
		}
	})
}

func TestClear(t *testing.T) {
	test(t, func(t *testing.T, newTree func() Interface[int]) {
		m := newTree()
		permute(t, m, 10, false)
		m.Clear()
		if m.Len() != 0 || !m.IsEmpty() || m.Contains(3) {
			t.Fatalf("after Clear: Len=%d IsEmpty=%t", m.Len(), m.IsEmpty())
		}
		m.Insert(7)
		m.Insert(8)
		if m.Len() != 2 {
			t.Errorf("Len() = %d, want 2", m.Len())
		}
	})
}

func TestMinMax(t *testing.T) {
	test(t, func(t *testing.T, newTree func() Interface[int]) {
		for N := range 11 {
			m := newTree()
			permute(t, m, N, true)
			lo, lok := m.Min()
			hi, hok := m.Max()
			if N == 0 {
				if lok || hok {
					t.Errorf("N=0: Min, Max report values")
				}
				continue
			}
			if lo != 0 || !lok || hi != N-1 || !hok {
				t.Errorf("N=%d: Min() = %d, %t; Max() = %d, %t", N, lo, lok, hi, hok)
			}
		}
	})
}

func TestInsertNil(t *testing.T) {
	for _, m := range []Collection[*int]{
		NewBSTFunc(func(a, b *int) int { return *a - *b }),
		NewFunc(func(a, b *int) int { return *a - *b }),
	} {
		err := m.Insert(nil)
		if !errors.Is(err, ErrNilValue) {
			t.Errorf("%T: Insert(nil) = %v, want ErrNilValue", m, err)
		}
		if !m.IsEmpty() {
			t.Errorf("%T: failed Insert changed the tree", m)
		}
		if m.Contains(nil) {
			t.Errorf("%T: Contains(nil) = true", m)
		}
	}
}

func TestIsNil(t *testing.T) {
	var (
		p  *int
		s  []int
		mp map[int]int
		f  func()
		ch chan int
		e  error
	)
	for _, test := range []struct {
		got, want bool
	}{
		{isNil(p), true},
		{isNil(s), true},
		{isNil(mp), true},
		{isNil(f), true},
		{isNil(ch), true},
		{isNil(e), true},
		{isNil(new(int)), false},
		{isNil([]int{}), false},
		{isNil(0), false},
		{isNil(""), false},
		{isNil(error(errors.New("x"))), false},
	} {
		if test.got != test.want {
			t.Errorf("got %t, want %t", test.got, test.want)
		}
	}
}

func TestRedUncle(t *testing.T) {
	m := New[int]()
	for _, v := range []int{10, 5, 15, 1} {
		m.Insert(v)
	}
	if got, want := m.String(), "[ 10(b), 5(b), 15(b), 1(r) ]"; got != want {
		t.Errorf("got %s, want %s", got, want)
	}
	if err := m.Verify(); err != nil {
		t.Error(err)
	}
}

func TestStraightLine(t *testing.T) {
	m := New[int]()
	for _, v := range []int{10, 5, 1} {
		m.Insert(v)
	}
	if got, want := m.String(), "[ 5(b), 1(r), 10(r) ]"; got != want {
		t.Errorf("got %s, want %s", got, want)
	}
	m = New[int]()
	for _, v := range []int{1, 5, 10} {
		m.Insert(v)
	}
	if got, want := m.String(), "[ 5(b), 1(r), 10(r) ]"; got != want {
		t.Errorf("mirrored: got %s, want %s", got, want)
	}
}

func TestZigzag(t *testing.T) {
	for _, test := range []struct {
		in   []int
		want string
	}{
		{[]int{10, 5, 7}, "[ 7(b), 5(r), 10(r) ]"},
		{[]int{10, 15, 12}, "[ 12(b), 10(r), 15(r) ]"},
	} {
		m := New[int]()
		for _, v := range test.in {
			m.Insert(v)
		}
		if got := m.String(); got != test.want {
			t.Errorf("%v: got %s, want %s", test.in, got, test.want)
		}
		if err := m.Verify(); err != nil {
			t.Errorf("%v: %v", test.in, err)
		}
	}
}

func TestZigzagBelowRoot(t *testing.T) {
	m := New[string]()
	for _, v := range []string{"L", "F", "P", "J", "N", "S"} {
		m.Insert(v)
	}
	// Recolor to P red with black children; still a valid red-black tree.
	m.root.right.red = true
	m.root.right.left.red = false
	m.root.right.right.red = false
	if err := m.Verify(); err != nil {
		t.Fatal(err)
	}

	m.Insert("H")
	if got, want := m.String(), "[ L(b), H(b), P(r), F(r), J(r), N(b), S(b) ]"; got != want {
		t.Errorf("got %s, want %s", got, want)
	}
	if err := m.Verify(); err != nil {
		t.Error(err)
	}
}

func TestRedBlackProperties(t *testing.T) {
	for N := range 200 {
		m := New[int]()
		for i, x := range rand.Perm(N) {
			// Fold values to force duplicates.
			if err := m.Insert(x % (N/3 + 1)); err != nil {
				t.Fatal(err)
			}
			if err := m.Verify(); err != nil {
				t.Fatalf("N=%d, after %d inserts: %v\n%s", N, i+1, err, dump(m.root))
			}
		}
		if h, limit := height(m.root), 2*math.Log2(float64(N+1)); float64(h) > limit {
			t.Errorf("N=%d: height %d exceeds %.1f", N, h, limit)
		}
	}
}

func TestSortedInsertHeight(t *testing.T) {
	const n = 1 << 12
	m := New[int]()
	b := NewBST[int]()
	for i := range n {
		m.Insert(i)
		b.Insert(i)
	}
	if err := m.Verify(); err != nil {
		t.Fatal(err)
	}
	if h := height(m.root); h > 2*12 {
		t.Errorf("Tree height %d after sorted inserts", h)
	}
	if h := height(b.root); h != n {
		t.Errorf("BST height %d after sorted inserts, want %d", h, n)
	}
}

func TestDuplicatesGoLeft(t *testing.T) {
	b := NewBST[int]()
	for _, v := range []int{5, 5, 7, 5} {
		b.Insert(v)
	}
	if got, want := dump(b.root), "(5 (5 (5 nil nil) nil) (7 nil nil))"; got != want {
		t.Errorf("got %s, want %s", got, want)
	}

	m := New[int]()
	for range 7 {
		m.Insert(3)
	}
	if err := m.Verify(); err != nil {
		t.Fatal(err)
	}
	if m.Len() != 7 {
		t.Errorf("Len() = %d, want 7", m.Len())
	}
}

func TestEnsureRedPropertyNil(t *testing.T) {
	m := New[int]()
	if err := m.ensureRedProperty(nil); !errors.Is(err, ErrNilNode) {
		t.Errorf("got %v, want ErrNilNode", err)
	}
}

func TestVerifyDetectsViolations(t *testing.T) {
	build := func() *Tree[int] {
		m := New[int]()
		for _, v := range []int{10, 5, 15, 1} {
			m.Insert(v)
		}
		return m
	}
	for name, corrupt := range map[string]func(*Tree[int]){
		"red root":    func(m *Tree[int]) { m.root.red = true },
		"red red":     func(m *Tree[int]) { m.root.left.red = true },
		"black":       func(m *Tree[int]) { m.root.left.left.red = false },
		"parent link": func(m *Tree[int]) { m.root.left.left.parent = m.root },
		"order":       func(m *Tree[int]) { m.root.left.left.val = 99 },
	} {
		m := build()
		corrupt(m)
		if err := m.Verify(); !errors.Is(err, ErrCorrupt) {
			t.Errorf("%s: Verify() = %v, want ErrCorrupt", name, err)
		}
	}
}

func TestString(t *testing.T) {
	if got := New[int]().String(); got != "[ ]" {
		t.Errorf("empty Tree: got %q", got)
	}
	b := NewBST[int]()
	for _, v := range []int{5, 10, 2} {
		b.Insert(v)
	}
	if got, want := b.String(), "[ 5, 2, 10 ]"; got != want {
		t.Errorf("got %s, want %s", got, want)
	}
}
