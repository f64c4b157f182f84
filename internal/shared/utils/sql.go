package utils

import (
	"fmt"
	"strings"
)

// JoinWithAnd joins a slice of strings with AND operator
func JoinWithAnd(clauses []string) string {
	return strings.Join(clauses, " AND ")
}

// JoinWithOr joins a slice of strings with OR operator
func JoinWithOr(clauses []string) string {
	return strings.Join(clauses, " OR ")
}

// ArgList gom positional args ($1, $2, ...) khi build SQL động
type ArgList struct {
	args []any
}

// Add thêm arg và trả về placeholder tương ứng
func (a *ArgList) Add(v any) string {
	a.args = append(a.args, v)
	return fmt.Sprintf("$%d", len(a.args))
}

func (a *ArgList) Values() []any {
	return a.args
}
