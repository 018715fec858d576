package multimap

// AddValue inserts (key, value), creating the key record if it is absent.
// Duplicate (key, value) pairs are stored as duplicates, never deduplicated.
func (t *Tree) AddValue(key int64, value Value) {
	requireTree(t)
	rec, _ := t.findOrCreate(key, true)
	rec.appendValue(value)
}

// ContainsKey reports whether any value has been added for key.
func (t *Tree) ContainsKey(key int64) bool {
	requireTree(t)
	_, ok := t.findOrCreate(key, false)
	return ok
}

// ContainsPair reports whether (key, value) has been added. It looks the
// key up and then scans that key's value buffer linearly.
func (t *Tree) ContainsPair(key int64, value Value) bool {
	requireTree(t)
	rec, ok := t.findOrCreate(key, false)
	if !ok {
		return false
	}
	return rec.containsValue(value)
}

// requireTree enforces the one programmer contract the façade can check
// cheaply: a nil *Tree handle is a caller bug, not an ordinary miss, and is
// reported as fatal rather than silently treated as an empty tree.
func requireTree(t *Tree) {
	if t == nil {
		panic("multimap: operation on a nil *Tree handle")
	}
}
