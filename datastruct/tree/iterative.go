package tree

import "dstruct-instruction/datastruct/stack"

// IterativeTree implements TreeMap without call-stack recursion. Traversals
// and Dispose reify the call stack on an explicit growable stack; insert and
// delete descend through **node slots, so no parent pointers are stored.
type IterativeTree struct {
	root *node
}

func NewIterativeTree() *IterativeTree {
	return &IterativeTree{}
}

func (t *IterativeTree) Init() {
	if t == nil {
		return
	}
	t.root = nil
}

func (t *IterativeTree) Empty() bool {
	return t == nil || t.root == nil
}

func (t *IterativeTree) Search(key byte) (value int, ok bool) {
	if t == nil {
		return
	}
	n := t.root
	for n != nil {
		if key < n.key {
			n = n.left
		} else if n.key < key {
			n = n.right
		} else {
			return n.value, true
		}
	}
	return
}

func (t *IterativeTree) Insert(key byte, value int) {
	if t == nil {
		return
	}
	slot := &t.root
	for *slot != nil {
		n := *slot
		if key < n.key {
			slot = &n.left
		} else if n.key < key {
			slot = &n.right
		} else {
			n.value = value
			return
		}
	}
	*slot = &node{key: key, value: value}
}

func (t *IterativeTree) Delete(key byte) {
	if t == nil {
		return
	}
	if _, ok := t.Search(key); !ok {
		return
	}
	deleteFrom(&t.root, key)
}

func deleteFrom(slot **node, key byte) {
	for *slot != nil && (*slot).key != key {
		if key < (*slot).key {
			slot = &(*slot).left
		} else {
			slot = &(*slot).right
		}
	}
	n := *slot
	if n == nil {
		return
	}
	if n.left != nil && n.right != nil {
		// Two children: overwrite content with the in-order predecessor's
		// and remove the predecessor instead. The node itself stays put.
		rewireByRightmost(n, &n.left)
		return
	}
	if n.left != nil {
		*slot = n.left
	} else {
		*slot = n.right
	}
}

// rewireByRightmost walks to the rightmost node of the subtree at slot,
// copies its content into target and deletes it. The rightmost node has no
// right child, so the nested deleteFrom unlinks it directly.
func rewireByRightmost(target *node, slot **node) {
	for (*slot).right != nil {
		slot = &(*slot).right
	}
	rm := *slot
	target.key, target.value = rm.key, rm.value
	deleteFrom(slot, rm.key)
}

func (t *IterativeTree) Dispose() {
	if t == nil {
		return
	}
	s := stack.NewStack[*node]()
	n := t.root
	for n != nil || !s.Empty() {
		if n == nil {
			n, _ = s.Pop()
			continue
		}
		if n.right != nil {
			s.Push(n.right)
		}
		n = n.left
	}
	t.root = nil
}

// leftmostPreorder emits and pushes every node on the leftmost path from n.
// Returns false if the consumer stopped the traversal.
func leftmostPreorder(n *node, s *stack.Stack[*node], c Consumer) bool {
	for n != nil {
		if !c(n.key, n.value) {
			return false
		}
		s.Push(n)
		n = n.left
	}
	return true
}

func (t *IterativeTree) Preorder(c Consumer) {
	if t == nil {
		return
	}
	s := stack.NewStack[*node]()
	if !leftmostPreorder(t.root, s, c) {
		return
	}
	for !s.Empty() {
		n, _ := s.Pop()
		if !leftmostPreorder(n.right, s, c) {
			return
		}
	}
}

// leftmostInorder pushes without emitting; nodes are emitted when popped.
func leftmostInorder(n *node, s *stack.Stack[*node]) {
	for n != nil {
		s.Push(n)
		n = n.left
	}
}

func (t *IterativeTree) Inorder(c Consumer) {
	if t == nil {
		return
	}
	s := stack.NewStack[*node]()
	leftmostInorder(t.root, s)
	for !s.Empty() {
		n, _ := s.Pop()
		if !c(n.key, n.value) {
			return
		}
		leftmostInorder(n.right, s)
	}
}

// leftmostPostorder pushes each node of the leftmost path together with a
// first-visit flag on the companion stack.
func leftmostPostorder(n *node, s *stack.Stack[*node], firstVisit *stack.Stack[bool]) {
	for n != nil {
		s.Push(n)
		firstVisit.Push(true)
		n = n.left
	}
}

func (t *IterativeTree) Postorder(c Consumer) {
	if t == nil {
		return
	}
	s := stack.NewStack[*node]()
	firstVisit := stack.NewStack[bool]()
	leftmostPostorder(t.root, s, firstVisit)
	for !s.Empty() {
		n, _ := s.Top()
		first, _ := firstVisit.Pop()
		if first {
			firstVisit.Push(false)
			leftmostPostorder(n.right, s, firstVisit)
			continue
		}
		s.Pop()
		if !c(n.key, n.value) {
			return
		}
	}
}
