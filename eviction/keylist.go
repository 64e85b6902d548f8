package eviction

// keyNode represents ONE key inside a keyList.
type keyNode struct {
	key string

	// prev points to the node closer to the front (older)
	prev *keyNode

	// next points to the node closer to the back (newer)
	next *keyNode
}

/*
keyList is an ordered set of keys: a doubly-linked list plus an index.

- front is the OLDEST key, back is the NEWEST
- append, lookup and removal of any key are O(1)

Every order-based policy is built on top of it. They only differ in
WHEN they move a key to the back and WHICH end they evict from.
*/
type keyList struct {
	// nodes maps keys to their list nodes, so we can find and unlink them in O(1).
	nodes map[string]*keyNode

	head *keyNode
	tail *keyNode
}

func newKeyList() *keyList {
	return &keyList{nodes: make(map[string]*keyNode)}
}

func (l *keyList) Len() int {
	return len(l.nodes)
}

func (l *keyList) Contains(k string) bool {
	_, ok := l.nodes[k]
	return ok
}

// PushBack appends k as the newest key. It does nothing if k is already tracked.
func (l *keyList) PushBack(k string) {
	if _, ok := l.nodes[k]; ok {
		return
	}
	n := &keyNode{key: k}
	l.nodes[k] = n
	l.addBack(n)
}

// MoveToBack marks k as the newest key, appending it if it is not tracked yet.
func (l *keyList) MoveToBack(k string) {
	n, ok := l.nodes[k]
	if !ok {
		l.PushBack(k)
		return
	}
	if n == l.tail {
		return
	}
	l.unlink(n)
	l.addBack(n)
}

// Remove forgets k. It reports whether k was tracked.
func (l *keyList) Remove(k string) bool {
	n, ok := l.nodes[k]
	if !ok {
		return false
	}
	l.unlink(n)
	delete(l.nodes, k)
	return true
}

// Front returns the oldest key.
func (l *keyList) Front() (string, bool) {
	if l.head == nil {
		return "", false
	}
	return l.head.key, true
}

// Back returns the newest key.
func (l *keyList) Back() (string, bool) {
	if l.tail == nil {
		return "", false
	}
	return l.tail.key, true
}

// PopFront removes and returns the oldest key, or "" if the list is empty.
func (l *keyList) PopFront() string {
	k, ok := l.Front()
	if !ok {
		return ""
	}
	l.Remove(k)
	return k
}

// PopBack removes and returns the newest key, or "" if the list is empty.
func (l *keyList) PopBack() string {
	k, ok := l.Back()
	if !ok {
		return ""
	}
	l.Remove(k)
	return k
}

// Keys returns every key from oldest to newest.
func (l *keyList) Keys() []string {
	keys := make([]string, 0, len(l.nodes))
	for n := l.head; n != nil; n = n.next {
		keys = append(keys, n.key)
	}
	return keys
}

// addBack links n after the current tail.
func (l *keyList) addBack(n *keyNode) {
	n.prev = l.tail
	n.next = nil
	if l.tail != nil {
		l.tail.next = n
	}
	l.tail = n

	// If the list was empty, head and tail are the same
	if l.head == nil {
		l.head = n
	}
}

// unlink detaches n, fixing up head and tail when n sits at either end.
func (l *keyList) unlink(n *keyNode) {
	if n.prev != nil {
		n.prev.next = n.next
	} else {
		l.head = n.next
	}
	if n.next != nil {
		n.next.prev = n.prev
	} else {
		l.tail = n.prev
	}
	n.prev, n.next = nil, nil
}
