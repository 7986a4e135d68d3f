package repository

// Column describes one persisted field of an entity.
type Column struct {
	Name string
	// Immutable columns are written on insert and never rewritten by Update.
	Immutable bool
}

// Schema describes how an entity type maps onto a table or collection.
// Values and Pointers return one element per column, in Columns order.
type Schema[T any] struct {
	Name         string
	Key          string
	GeneratedKey bool
	Columns      []Column
	// Unique lists columns that must be unique ignoring case.
	Unique []string

	ID       func(*T) int
	SetID    func(*T, int)
	Values   func(*T) []any
	Pointers func(*T) []any
}

// Fields returns the entity's column values keyed by column name.
func (s Schema[T]) Fields(e *T) map[string]any {
	vals := s.Values(e)
	out := make(map[string]any, len(s.Columns))
	for i, c := range s.Columns {
		out[c.Name] = vals[i]
	}
	return out
}

// ColumnNames returns every column name in order.
func (s Schema[T]) ColumnNames() []string {
	names := make([]string, len(s.Columns))
	for i, c := range s.Columns {
		names[i] = c.Name
	}
	return names
}

// Mutable returns the indexes of the columns an update rewrites.
func (s Schema[T]) Mutable() []int {
	idx := make([]int, 0, len(s.Columns))
	for i, c := range s.Columns {
		if c.Immutable || c.Name == s.Key {
			continue
		}
		idx = append(idx, i)
	}
	return idx
}
