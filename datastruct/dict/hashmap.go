package dict

// Processor receives stored (key, value) pairs; returning false stops the
// iteration.
type Processor func(string, float32) bool

// HashMap is a string-keyed map of float32 values. All operations on a nil
// handle are no-ops returning absent.
type HashMap interface {
	Size() int
	Put(key string, value float32)
	Get(key string) (value float32, ok bool)
	Delete(key string) (ok bool)
	ForEach(p Processor)
	Keys() []string
	Clear()
}
