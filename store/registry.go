package store

import "slices"

// registry maps subscription keys to listeners in registration order.
// A key is present only while it has at least one listener.
type registry struct {
	order []Key
	lists map[Key][]*Listener
}

func (r *registry) add(key Key, l *Listener) {
	if r.lists == nil {
		r.lists = make(map[Key][]*Listener)
	}
	list, ok := r.lists[key]
	if !ok {
		r.order = append(r.order, key)
	}
	r.lists[key] = append(list, l)
}

// remove drops the first registration of l under key.
func (r *registry) remove(key Key, l *Listener) bool {
	list := r.lists[key]
	i := slices.Index(list, l)
	if i < 0 {
		return false
	}
	list = slices.Delete(slices.Clone(list), i, i+1)
	if len(list) > 0 {
		r.lists[key] = list
		return true
	}
	delete(r.lists, key)
	if j := slices.Index(r.order, key); j >= 0 {
		r.order = slices.Delete(r.order, j, j+1)
	}
	return true
}

func (r *registry) count(key Key) int {
	return len(r.lists[key])
}

// snapshot returns the listeners for key. The slice is never mutated in
// place by add or remove, so it is safe to iterate after unlocking.
func (r *registry) snapshot(key Key) []*Listener {
	return r.lists[key]
}

// fieldKeys returns the registered field keys in first-registration order
// whose names are in changed.
func (r *registry) fieldKeys(changed map[string]struct{}) []Key {
	var keys []Key
	for _, k := range r.order {
		if k.IsAll() {
			continue
		}
		if _, ok := changed[k.name]; ok {
			keys = append(keys, k)
		}
	}
	return keys
}
