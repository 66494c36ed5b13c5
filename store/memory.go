package store

import (
	"context"
	"sync"

	"github.com/bitmark-inc/commerce-survey/schema"
)

type memoryTable struct {
	sync.RWMutex
	header []string
	rows   [][]string
}

// NewMemoryStore - process-local table, lost on restart
func NewMemoryStore(header []string) ResponseStore {
	return &memoryTable{
		header: append([]string{}, header...),
	}
}

func (m *memoryTable) Append(_ context.Context, row []string) error {
	m.Lock()
	defer m.Unlock()

	m.rows = append(m.rows, append([]string{}, row...))
	return nil
}

func (m *memoryTable) ReadAll(_ context.Context) ([]schema.Record, error) {
	m.RLock()
	defer m.RUnlock()

	records := make([]schema.Record, 0, len(m.rows))
	for _, row := range m.rows {
		records = append(records, schema.NewRecord(m.header, row))
	}
	return records, nil
}

func (m *memoryTable) Ping(_ context.Context) error {
	return nil
}

func (m *memoryTable) Close() {}
