package tree

import (
	"strconv"
	"strings"
)

type Order int

const (
	PreOrder Order = iota
	InOrder
	PostOrder
)

// OrderOf maps a configuration name ("preorder", "inorder", "postorder")
// to its Order.
func OrderOf(name string) (Order, bool) {
	switch strings.ToLower(name) {
	case "preorder":
		return PreOrder, true
	case "inorder":
		return InOrder, true
	case "postorder":
		return PostOrder, true
	}
	return 0, false
}

// Tokens renders a traversal as bracketed tokens, one per visited node,
// e.g. "[a,1][b,2]".
func Tokens(t TreeMap, o Order) string {
	var b strings.Builder
	c := func(key byte, value int) bool {
		b.WriteByte('[')
		b.WriteByte(key)
		b.WriteByte(',')
		b.WriteString(strconv.Itoa(value))
		b.WriteByte(']')
		return true
	}
	switch o {
	case PreOrder:
		t.Preorder(c)
	case InOrder:
		t.Inorder(c)
	case PostOrder:
		t.Postorder(c)
	}
	return b.String()
}
