package tree

// Consumer receives visited (key, value) pairs in traversal order.
// Returning false stops the traversal early.
type Consumer func(key byte, value int) bool

// TreeMap is an ordered map over single-byte keys, backed by an unbalanced
// binary search tree. The tree never rebalances, so depth is O(n) in the
// worst case. All operations on a nil handle are no-ops returning absent.
type TreeMap interface {
	Init()
	Empty() bool
	Search(key byte) (value int, ok bool)
	Insert(key byte, value int)
	Delete(key byte)
	Dispose()
	Preorder(c Consumer)
	Inorder(c Consumer)
	Postorder(c Consumer)
}

// Every key in a node's left subtree is strictly less than its key, every key
// in the right subtree strictly greater. Each node is owned by its parent.
type node struct {
	key   byte
	value int
	left  *node
	right *node
}
