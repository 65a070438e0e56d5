package stack

// Stack is a growable last-in-first-out container. Traversal code uses it to
// reify the call stack, so it never imposes a depth limit.
type Stack[T any] struct {
	items []T
}

func NewStack[T any]() *Stack[T] {
	return &Stack[T]{}
}

func (s *Stack[T]) Size() int {
	if s == nil {
		return 0
	}
	return len(s.items)
}

func (s *Stack[T]) Empty() bool {
	return s.Size() == 0
}

func (s *Stack[T]) Push(item T) {
	if s == nil {
		return
	}
	s.items = append(s.items, item)
}

func (s *Stack[T]) Pop() (item T, ok bool) {
	if s.Empty() {
		return
	}
	last := len(s.items) - 1
	item, ok = s.items[last], true
	s.items = s.items[:last]
	return
}

func (s *Stack[T]) Top() (item T, ok bool) {
	if s.Empty() {
		return
	}
	return s.items[len(s.items)-1], true
}

func (s *Stack[T]) Clear() {
	if s == nil {
		return
	}
	s.items = s.items[:0]
}
