package fadaf

import "iter"

// The tree holds every pair; the hash index only mirrors which keys are
// present so that LookupAny does not have to walk the tree.

func (m *fadaf[K, D]) Size() int {
	return m.tree.Size()
}

func (m *fadaf[K, D]) UniqueKeyCount() int {
	return m.tree.UniqueKeys()
}

func (m *fadaf[K, D]) Insert(key K, data D) (bool, error) {
	inserted, err := m.tree.Insert(key, data)
	if err != nil || !inserted {
		return false, err
	}
	if !m.index.Lookup(key) {
		if _, err := m.index.Insert(key); err != nil {
			return true, err
		}
	}
	return true, nil
}

func (m *fadaf[K, D]) Remove(key K, data D) (bool, error) {
	removed, err := m.tree.Remove(key, data)
	if err != nil || !removed {
		return false, err
	}
	if !m.tree.LookupAny(key) {
		if _, err := m.index.Delete(key); err != nil {
			return true, err
		}
	}
	return true, nil
}

func (m *fadaf[K, D]) RemoveAll(key K) (bool, error) {
	deleted, err := m.index.Delete(key)
	if err != nil || !deleted {
		return false, err
	}
	return m.tree.RemoveAll(key)
}

func (m *fadaf[K, D]) LookupAny(key K) bool {
	return m.index.Lookup(key)
}

func (m *fadaf[K, D]) Lookup(key K, data D) bool {
	return m.tree.Lookup(key, data)
}

// AllKeys returns the key of every stored pair in ascending order, a key
// repeated once per pair stored under it.
func (m *fadaf[K, D]) AllKeys() []K {
	keys := make([]K, 0, m.Size())
	for key := range m.tree.All() {
		keys = append(keys, key)
	}
	return keys
}

func (m *fadaf[K, D]) AllData(key K) []D {
	return m.tree.AllData(key)
}

func (m *fadaf[K, D]) MinKey() (K, bool) {
	return m.tree.Min()
}

func (m *fadaf[K, D]) MaxKey() (K, bool) {
	return m.tree.Max()
}

func (m *fadaf[K, D]) All() iter.Seq2[K, D] {
	return m.tree.All()
}

func (m *fadaf[K, D]) Iterator() Iterator[K, D] {
	return m.tree.Iterator()
}
