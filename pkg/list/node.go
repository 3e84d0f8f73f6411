package list

// Node holds one element of a List. It is owned by its predecessor, or by
// the List when it is the head.
type Node[T comparable] struct {
	Value T
	next  *Node[T]
}

// Next returns the following node, or nil for the last one.
func (n *Node[T]) Next() *Node[T] {
	return n.next
}
