package tree

// RecursiveTree implements TreeMap with call-stack recursion. Link rewiring
// goes through **node slots ("root", "parent.left" or "parent.right") instead
// of parent pointers.
type RecursiveTree struct {
	root *node
}

func NewRecursiveTree() *RecursiveTree {
	return &RecursiveTree{}
}

func (t *RecursiveTree) Init() {
	if t == nil {
		return
	}
	t.root = nil
}

func (t *RecursiveTree) Empty() bool {
	return t == nil || t.root == nil
}

func (t *RecursiveTree) Search(key byte) (value int, ok bool) {
	if t == nil {
		return
	}
	return searchNode(t.root, key)
}

func searchNode(n *node, key byte) (value int, ok bool) {
	if n == nil {
		return
	}
	if key < n.key {
		return searchNode(n.left, key)
	}
	if n.key < key {
		return searchNode(n.right, key)
	}
	return n.value, true
}

func (t *RecursiveTree) Insert(key byte, value int) {
	if t == nil {
		return
	}
	insertNode(&t.root, key, value)
}

func insertNode(slot **node, key byte, value int) {
	n := *slot
	if n == nil {
		*slot = &node{key: key, value: value}
		return
	}
	if key < n.key {
		insertNode(&n.left, key, value)
	} else if n.key < key {
		insertNode(&n.right, key, value)
	} else {
		n.value = value
	}
}

func (t *RecursiveTree) Delete(key byte) {
	if t == nil {
		return
	}
	deleteNode(&t.root, key)
}

func deleteNode(slot **node, key byte) {
	n := *slot
	if n == nil {
		return
	}
	if key < n.key {
		deleteNode(&n.left, key)
		return
	}
	if n.key < key {
		deleteNode(&n.right, key)
		return
	}
	if n.left != nil && n.right != nil {
		// Two children: the node keeps its identity, only its content is
		// replaced by the in-order predecessor's.
		replaceByRightmost(n, &n.left)
		return
	}
	if n.left != nil {
		*slot = n.left
	} else {
		*slot = n.right
	}
}

// replaceByRightmost copies the rightmost node of the subtree at slot into
// target, then removes that rightmost node. It has no right child, so its
// removal never recurses back here.
func replaceByRightmost(target *node, slot **node) {
	n := *slot
	if n.right != nil {
		replaceByRightmost(target, &n.right)
		return
	}
	target.key, target.value = n.key, n.value
	deleteNode(slot, n.key)
}

func (t *RecursiveTree) Dispose() {
	if t == nil {
		return
	}
	disposeNode(&t.root)
}

func disposeNode(slot **node) {
	n := *slot
	if n == nil {
		return
	}
	disposeNode(&n.left)
	disposeNode(&n.right)
	*slot = nil
}

func (t *RecursiveTree) Preorder(c Consumer) {
	if t == nil {
		return
	}
	preorderNode(t.root, c)
}

func preorderNode(n *node, c Consumer) bool {
	if n == nil {
		return true
	}
	if !c(n.key, n.value) {
		return false
	}
	if !preorderNode(n.left, c) {
		return false
	}
	return preorderNode(n.right, c)
}

func (t *RecursiveTree) Inorder(c Consumer) {
	if t == nil {
		return
	}
	inorderNode(t.root, c)
}

func inorderNode(n *node, c Consumer) bool {
	if n == nil {
		return true
	}
	if !inorderNode(n.left, c) {
		return false
	}
	if !c(n.key, n.value) {
		return false
	}
	return inorderNode(n.right, c)
}

func (t *RecursiveTree) Postorder(c Consumer) {
	if t == nil {
		return
	}
	postorderNode(t.root, c)
}

func postorderNode(n *node, c Consumer) bool {
	if n == nil {
		return true
	}
	if !postorderNode(n.left, c) {
		return false
	}
	if !postorderNode(n.right, c) {
		return false
	}
	return c(n.key, n.value)
}
