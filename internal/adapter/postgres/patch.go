package postgres

import (
	"fmt"
	"strings"
)

// setClause accumulates "col = $n" assignments for partial updates. Columns
// are always literal strings from the repository code, never request input.
type setClause struct {
	cols []string
}

func newSetClause() (*setClause, []interface{}) {
	return &setClause{}, nil
}

func (s *setClause) add(col string, value interface{}, args *[]interface{}) {
	*args = append(*args, value)
	s.cols = append(s.cols, fmt.Sprintf("%s = $%d", col, len(*args)))
}

func (s *setClause) empty() bool {
	return len(s.cols) == 0
}

func (s *setClause) sql() string {
	return strings.Join(s.cols, ", ")
}
