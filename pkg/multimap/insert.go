package multimap

// findOrCreate locates the key record for key, walking down from the root
// and proactively splitting any full node it is about to descend into. If
// create is false, a miss returns (nil, false) without mutating the tree.
// If create is true and the key is absent, a new zero-value key record
// (nVals == 0, no buffer) is created in a leaf and returned.
func (t *Tree) findOrCreate(key int64, create bool) (*keyRecord, bool) {
	if t.root == nil {
		if !create {
			return nil, false
		}
		t.root = newNode(true)
		t.root.n = 1
		t.root.keys[0] = keyRecord{key: key}
		return &t.root.keys[0], true
	}

	if create && t.root.n == Fanout {
		t.growRoot()
	}

	n := t.root
	for {
		i := n.search(key)
		if i < n.n && n.keys[i].key == key {
			return &n.keys[i], true
		}
		if n.isLeaf {
			if !create {
				return nil, false
			}
			return insertIntoLeaf(n, i, key), true
		}
		if create && n.children[i].n == Fanout {
			splitChild(n, i)
			// The query key may now live under the new sibling; re-search
			// this node from scratch rather than continuing into the
			// child we were about to visit.
			continue
		}
		n = n.children[i]
	}
}

// insertIntoLeaf shifts keys[i:n] right by one and installs a fresh key
// record for key at position i. The caller must guarantee n has a free slot
// — proactive splitting makes that guarantee hold by the time a leaf is
// reached, so a full leaf here indicates a split-discipline bug, not bad
// input.
func insertIntoLeaf(n *node, i int, key int64) *keyRecord {
	if n.n == Fanout {
		panic("multimap: leaf node full at insertion time; split discipline violated")
	}
	copy(n.keys[i+1:n.n+1], n.keys[i:n.n])
	n.keys[i] = keyRecord{key: key}
	n.n++
	return &n.keys[i]
}
