package pairs

// Pair is a single committed key/value entry.
type Pair struct {
	Key   string
	Value string
}

// Buffer is an ordered string-to-string map. Keys are unique and keep the
// position of their first insertion.
type Buffer struct {
	index map[string]int
	items []Pair
}

// NewBuffer returns an empty buffer.
func NewBuffer() *Buffer {
	return &Buffer{index: make(map[string]int)}
}

// Set stores value under key. A new key is appended; an existing key is
// overwritten in place. It reports whether the key was new.
func (b *Buffer) Set(key, value string) bool {
	if b.index == nil {
		b.index = make(map[string]int)
	}
	if i, ok := b.index[key]; ok {
		b.items[i].Value = value
		return false
	}
	b.index[key] = len(b.items)
	b.items = append(b.items, Pair{Key: key, Value: value})
	return true
}

// Get returns the value stored under key.
func (b *Buffer) Get(key string) (string, bool) {
	if b == nil {
		return "", false
	}
	i, ok := b.index[key]
	if !ok {
		return "", false
	}
	return b.items[i].Value, true
}

// Has reports whether key is present.
func (b *Buffer) Has(key string) bool {
	_, ok := b.Get(key)
	return ok
}

// Position returns the zero-based insertion position of key, or -1.
func (b *Buffer) Position(key string) int {
	if b == nil {
		return -1
	}
	if i, ok := b.index[key]; ok {
		return i
	}
	return -1
}

// Len returns the number of pairs.
func (b *Buffer) Len() int {
	if b == nil {
		return 0
	}
	return len(b.items)
}

// Keys returns the keys in insertion order.
func (b *Buffer) Keys() []string {
	if b == nil {
		return nil
	}
	keys := make([]string, len(b.items))
	for i, p := range b.items {
		keys[i] = p.Key
	}
	return keys
}

// Pairs returns a copy of the entries in insertion order.
func (b *Buffer) Pairs() []Pair {
	if b == nil {
		return nil
	}
	out := make([]Pair, len(b.items))
	copy(out, b.items)
	return out
}

// Clone returns an independent copy of the buffer.
func (b *Buffer) Clone() *Buffer {
	c := NewBuffer()
	if b == nil {
		return c
	}
	for _, p := range b.items {
		c.Set(p.Key, p.Value)
	}
	return c
}
