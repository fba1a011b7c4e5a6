// Package pairs holds the ordered key/value buffer that pairctl builds and
// its JSON encoding.
//
// A Buffer keeps keys in first-insertion order. Setting an existing key
// replaces its value without moving it, so the emitted object always lists
// keys in the order the user first entered them:
//
//	b := pairs.NewBuffer()
//	b.Set("x", "1")
//	b.Set("y", "2")
//	b.Set("x", "9")
//	out, _ := pairs.Encode(b, pairs.EncodeOptions{}) // {"x":"9","y":"2"}
//
// Values are always encoded as JSON strings, even when they look numeric.
package pairs
