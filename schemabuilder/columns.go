package schemabuilder

import "fmt"

// columnMap is an insertion-ordered mapping of column name to type. Adding
// an existing name keeps its position and overwrites the type (last write
// wins).
type columnMap struct {
	names []string
	types map[string]ColumnType
}

func (m *columnMap) put(name string, columnType ColumnType) {
	if m.types == nil {
		m.types = make(map[string]ColumnType)
	}
	if _, ok := m.types[name]; !ok {
		m.names = append(m.names, name)
	}
	m.types[name] = columnType
}

func (m *columnMap) size() int {
	return len(m.names)
}

// declarations renders each column as "<name> <type>" with an optional
// trailing modifier such as STATIC.
func (m *columnMap) declarations(suffix string) []string {
	decls := make([]string, 0, len(m.names))
	for _, name := range m.names {
		decls = append(decls, name+" "+m.types[name].AsCQL()+suffix)
	}
	return decls
}

// intersect returns the names present in both maps, in this map's insertion
// order.
func (m *columnMap) intersect(other *columnMap) []string {
	var common []string
	for _, name := range m.names {
		if _, ok := other.types[name]; ok {
			common = append(common, name)
		}
	}
	return common
}

// validateColumn runs the checks shared by every column-accepting call:
// non-empty non-keyword name, non-nil type, and no deferred construction
// error inside the type.
func validateColumn(name string, nameLabel string, kind string, columnType ColumnType, typeLabel string) error {
	if err := validateIdentifier(name, nameLabel, kind); err != nil {
		return err
	}
	if err := validateNotNil(columnType, typeLabel); err != nil {
		return err
	}
	return columnTypeError(columnType)
}

func formatNames(names []string) string {
	s := ""
	for i, name := range names {
		if i > 0 {
			s += ", "
		}
		s += name
	}
	return fmt.Sprintf("[%s]", s)
}
