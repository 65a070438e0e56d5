package dict

// SimpleHashMap wraps a builtin map. It exists as the reference model the
// chained implementation is tested against.
type SimpleHashMap struct {
	data map[string]float32
}

func NewSimpleHashMap() *SimpleHashMap {
	return &SimpleHashMap{data: make(map[string]float32)}
}

func (m *SimpleHashMap) Size() int {
	if m == nil {
		return 0
	}
	return len(m.data)
}

func (m *SimpleHashMap) Put(key string, value float32) {
	if m == nil {
		return
	}
	m.data[key] = value
}

func (m *SimpleHashMap) Get(key string) (value float32, ok bool) {
	if m == nil {
		return
	}
	value, ok = m.data[key]
	return
}

func (m *SimpleHashMap) Delete(key string) (ok bool) {
	if m == nil {
		return
	}
	_, ok = m.data[key]
	if ok {
		delete(m.data, key)
	}
	return
}

func (m *SimpleHashMap) ForEach(p Processor) {
	if m == nil {
		return
	}
	for k, v := range m.data {
		if !p(k, v) {
			break
		}
	}
}

func (m *SimpleHashMap) Keys() []string {
	res := make([]string, 0, m.Size())
	m.ForEach(func(key string, _ float32) bool {
		res = append(res, key)
		return true
	})
	return res
}

func (m *SimpleHashMap) Clear() {
	if m == nil {
		return
	}
	m.data = make(map[string]float32)
}
