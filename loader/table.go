package loader

// table is a dataset read from a source, column by column, every value as text
type table struct {
	names   []string
	columns map[string][]string
	rows    int
}

func newTable(names []string) *table {
	columns := make(map[string][]string, len(names))
	for _, name := range names {
		columns[name] = nil
	}
	return &table{
		names:   names,
		columns: columns,
	}
}

func (t *table) hasColumn(name string) bool {
	_, ok := t.columns[name]
	return ok
}

// value returns the value of column in row, or "" if the column does not exist
func (t *table) value(column string, row int) string {
	values, ok := t.columns[column]
	if !ok {
		return ""
	}
	return values[row]
}
