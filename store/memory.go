package store

// Memory keeps the countdown state in memory only. It is used when
// persistence is disabled and in tests.
type Memory struct {
	value []byte
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{}
}

func (m *Memory) GetState() ([]byte, error) {
	if m.value == nil {
		return nil, nil
	}

	b := make([]byte, len(m.value))
	copy(b, m.value)

	return b, nil
}

func (m *Memory) UpdateState(value []byte) error {
	m.value = make([]byte, len(value))
	copy(m.value, value)

	return nil
}

func (m *Memory) Close() error {
	return nil
}
