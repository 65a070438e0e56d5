package tree

import (
	"math/rand"
	"sort"
	"testing"
)

func implementations() map[string]TreeMap {
	return map[string]TreeMap{
		"recursive": NewRecursiveTree(),
		"iterative": NewIterativeTree(),
	}
}

func rootOf(t TreeMap) *node {
	switch v := t.(type) {
	case *RecursiveTree:
		return v.root
	case *IterativeTree:
		return v.root
	}
	return nil
}

func buildScenarioTree(tm TreeMap) {
	tm.Insert('b', 2)
	tm.Insert('a', 1)
	tm.Insert('d', 4)
	tm.Insert('c', 3)
}

func TestScenarioTraversals(t *testing.T) {
	for name, tm := range implementations() {
		buildScenarioTree(tm)
		if got := Tokens(tm, InOrder); got != "[a,1][b,2][c,3][d,4]" {
			t.Errorf("%s inorder = %s", name, got)
		}
		if got := Tokens(tm, PreOrder); got != "[b,2][a,1][d,4][c,3]" {
			t.Errorf("%s preorder = %s", name, got)
		}
		if got := Tokens(tm, PostOrder); got != "[a,1][c,3][d,4][b,2]" {
			t.Errorf("%s postorder = %s", name, got)
		}
	}
}

func TestScenarioDeleteTwoChildren(t *testing.T) {
	for name, tm := range implementations() {
		buildScenarioTree(tm)
		tm.Delete('b')
		root := rootOf(tm)
		if root == nil || root.key != 'a' || root.value != 1 {
			t.Errorf("%s root not replaced by predecessor", name)
			continue
		}
		if root.left != nil {
			t.Errorf("%s predecessor node not removed", name)
		}
		if got := Tokens(tm, InOrder); got != "[a,1][c,3][d,4]" {
			t.Errorf("%s inorder after delete = %s", name, got)
		}
	}
}

func TestInsertOverwritesValueOnly(t *testing.T) {
	for name, tm := range implementations() {
		buildScenarioTree(tm)
		tm.Insert('a', 100)
		if v, ok := tm.Search('a'); !ok || v != 100 {
			t.Errorf("%s search('a') = %d, %v", name, v, ok)
		}
		if got := Tokens(tm, PreOrder); got != "[b,2][a,100][d,4][c,3]" {
			t.Errorf("%s structure changed on overwrite: %s", name, got)
		}
	}
}

func TestSearchAbsent(t *testing.T) {
	for name, tm := range implementations() {
		buildScenarioTree(tm)
		if _, ok := tm.Search('x'); ok {
			t.Errorf("%s found key never inserted", name)
		}
	}
}

func TestDeleteLeafAndOneChild(t *testing.T) {
	for name, tm := range implementations() {
		buildScenarioTree(tm)

		// 'c' is a leaf.
		tm.Delete('c')
		if got := Tokens(tm, InOrder); got != "[a,1][b,2][d,4]" {
			t.Errorf("%s after leaf delete: %s", name, got)
		}
		// 'd' now has no children either; re-add to give it a left child.
		tm.Insert('c', 3)
		tm.Delete('d')
		if got := Tokens(tm, InOrder); got != "[a,1][b,2][c,3]" {
			t.Errorf("%s after one-child delete: %s", name, got)
		}
		if got := Tokens(tm, PreOrder); got != "[b,2][a,1][c,3]" {
			t.Errorf("%s child not rewired to parent: %s", name, got)
		}
	}
}

func TestDeleteRootUntilEmpty(t *testing.T) {
	for name, tm := range implementations() {
		tm.Insert('m', 1)
		tm.Delete('m')
		if !tm.Empty() {
			t.Errorf("%s not empty after deleting only node", name)
		}
		tm.Insert('m', 1)
		tm.Insert('s', 2)
		tm.Delete('m')
		if got := Tokens(tm, InOrder); got != "[s,2]" {
			t.Errorf("%s root delete with right child: %s", name, got)
		}
	}
}

func TestDeleteAbsentIsIdempotent(t *testing.T) {
	for name, tm := range implementations() {
		buildScenarioTree(tm)
		before := Tokens(tm, PreOrder)
		tm.Delete('z')
		if got := Tokens(tm, PreOrder); got != before {
			t.Errorf("%s content changed by absent delete: %s", name, got)
		}
	}
}

func TestDispose(t *testing.T) {
	for name, tm := range implementations() {
		for i := 0; i < 26; i++ {
			tm.Insert(byte('a'+i), i)
		}
		tm.Dispose()
		if !tm.Empty() {
			t.Errorf("%s not empty after Dispose", name)
		}
		if _, ok := tm.Search('a'); ok {
			t.Errorf("%s key survived Dispose", name)
		}
		// Handle stays usable.
		tm.Insert('k', 7)
		if v, ok := tm.Search('k'); !ok || v != 7 {
			t.Errorf("%s unusable after Dispose", name)
		}
	}
}

func TestNilHandleIsNoop(t *testing.T) {
	var rt *RecursiveTree
	var it *IterativeTree
	for name, tm := range map[string]TreeMap{"recursive": rt, "iterative": it} {
		tm.Init()
		tm.Insert('a', 1)
		if _, ok := tm.Search('a'); ok {
			t.Errorf("%s nil handle stored a value", name)
		}
		tm.Delete('a')
		tm.Dispose()
		if !tm.Empty() {
			t.Errorf("%s nil handle not empty", name)
		}
		tm.Inorder(func(byte, int) bool {
			t.Errorf("%s nil handle visited a node", name)
			return false
		})
	}
}

func TestTraversalEarlyStop(t *testing.T) {
	for name, tm := range implementations() {
		buildScenarioTree(tm)
		visited := 0
		tm.Inorder(func(key byte, _ int) bool {
			visited++
			return key != 'b'
		})
		if visited != 2 {
			t.Errorf("%s visited %d nodes, want 2", name, visited)
		}
	}
}

func checkOrdered(t *testing.T, name string, n *node, lo, hi int) int {
	if n == nil {
		return 0
	}
	k := int(n.key)
	if k <= lo || k >= hi {
		t.Errorf("%s node %q violates search order", name, n.key)
	}
	return 1 + checkOrdered(t, name, n.left, lo, k) + checkOrdered(t, name, n.right, k, hi)
}

func TestRandomOpsMatchModel(t *testing.T) {
	rnd := rand.New(rand.NewSource(42))
	impls := implementations()
	model := make(map[byte]int)
	for i := 0; i < 5000; i++ {
		key := byte('a' + rnd.Intn(26))
		if rnd.Intn(3) == 0 {
			delete(model, key)
			for _, tm := range impls {
				tm.Delete(key)
			}
		} else {
			model[key] = i
			for _, tm := range impls {
				tm.Insert(key, i)
			}
		}
	}

	keys := make([]int, 0, len(model))
	for k := range model {
		keys = append(keys, int(k))
	}
	sort.Ints(keys)

	for name, tm := range impls {
		for key := byte('a'); key <= 'z'; key++ {
			v, ok := tm.Search(key)
			want, wantOK := model[key]
			if ok != wantOK || (ok && v != want) {
				t.Errorf("%s search(%q) = %d, %v; want %d, %v", name, key, v, ok, want, wantOK)
			}
		}
		got := make([]int, 0, len(model))
		tm.Inorder(func(key byte, value int) bool {
			if value != model[key] {
				t.Errorf("%s inorder stale value for %q", name, key)
			}
			got = append(got, int(key))
			return true
		})
		if len(got) != len(keys) {
			t.Errorf("%s inorder visited %d keys, want %d", name, len(got), len(keys))
			continue
		}
		for i := range keys {
			if got[i] != keys[i] {
				t.Errorf("%s inorder out of order at %d", name, i)
				break
			}
		}
		if n := checkOrdered(t, name, rootOf(tm), -1, 256); n != len(model) {
			t.Errorf("%s tree holds %d nodes, want %d", name, n, len(model))
		}
	}
}

func TestImplementationsAgreeOnAllOrders(t *testing.T) {
	rnd := rand.New(rand.NewSource(7))
	rt := NewRecursiveTree()
	it := NewIterativeTree()
	for i := 0; i < 300; i++ {
		key := byte(' ' + rnd.Intn(95))
		if rnd.Intn(4) == 0 {
			rt.Delete(key)
			it.Delete(key)
		} else {
			rt.Insert(key, i)
			it.Insert(key, i)
		}
		for _, o := range []Order{PreOrder, InOrder, PostOrder} {
			if a, b := Tokens(rt, o), Tokens(it, o); a != b {
				t.Fatalf("order %d diverged after op %d:\nrec: %s\nite: %s", o, i, a, b)
			}
		}
	}
}

func TestDeepUnbalancedTreeTraversal(t *testing.T) {
	// Ascending inserts degrade the tree to a linked list; the iterative
	// variant must not depend on any fixed stack capacity.
	tm := NewIterativeTree()
	for i := 0; i < 200; i++ {
		tm.Insert(byte(i), i)
	}
	count := 0
	last := -1
	tm.Inorder(func(key byte, _ int) bool {
		if int(key) <= last {
			t.Error("inorder not ascending")
		}
		last = int(key)
		count++
		return true
	})
	if count != 200 {
		t.Errorf("visited %d nodes, want 200", count)
	}
	tm.Dispose()
	if !tm.Empty() {
		t.Error("not empty after Dispose")
	}
}
