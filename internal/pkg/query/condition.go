package query

import "fmt"

// Condition represents a WHERE clause condition.
// Implementations must generate SQL fragments and parameter maps
// using Spanner's named parameter format (@paramName).
type Condition interface {
	// SQL returns the SQL fragment and parameter map for this condition.
	// paramIndex is used to generate unique parameter names (@p0, @p1, etc.)
	SQL(paramIndex int) (string, map[string]interface{})
}

// eqCondition implements equality comparison (field = value).
type eqCondition struct {
	field string
	value interface{}
}

// Eq creates a WHERE condition for equality comparison.
// Example: Eq("payment_method", "cash") generates "payment_method = @p0"
func Eq(field string, value interface{}) Condition {
	return &eqCondition{
		field: field,
		value: value,
	}
}

// SQL generates the SQL fragment for equality comparison.
func (c *eqCondition) SQL(paramIndex int) (string, map[string]interface{}) {
	paramName := fmt.Sprintf("p%d", paramIndex)
	sql := fmt.Sprintf("%s = @%s", c.field, paramName)
	params := map[string]interface{}{
		paramName: c.value,
	}
	return sql, params
}

// neCondition implements inequality comparison (field != value).
type neCondition struct {
	field string
	value interface{}
}

// Ne creates a WHERE condition for inequality comparison.
// Example: Ne("payment_method", "in-progress") generates "payment_method != @p0"
func Ne(field string, value interface{}) Condition {
	return &neCondition{
		field: field,
		value: value,
	}
}

// SQL generates the SQL fragment for inequality comparison.
func (c *neCondition) SQL(paramIndex int) (string, map[string]interface{}) {
	paramName := fmt.Sprintf("p%d", paramIndex)
	sql := fmt.Sprintf("%s != @%s", c.field, paramName)
	params := map[string]interface{}{
		paramName: c.value,
	}
	return sql, params
}

// gtCondition implements greater-than comparison (field > value).
type gtCondition struct {
	field string
	value interface{}
}

// Gt creates a WHERE condition for greater-than comparison.
// Example: Gt("stock_applied", 0) generates "stock_applied > @p0"
func Gt(field string, value interface{}) Condition {
	return &gtCondition{
		field: field,
		value: value,
	}
}

// SQL generates the SQL fragment for greater-than comparison.
func (c *gtCondition) SQL(paramIndex int) (string, map[string]interface{}) {
	paramName := fmt.Sprintf("p%d", paramIndex)
	sql := fmt.Sprintf("%s > @%s", c.field, paramName)
	params := map[string]interface{}{
		paramName: c.value,
	}
	return sql, params
}

// containsCondition implements substring match against the string form of a
// column. Numeric columns are cast so operators can filter stock or price by
// typing digits, the same way they filter names.
type containsCondition struct {
	field string
	value string
}

// Contains creates a WHERE condition matching rows whose field, rendered as a
// string, contains the given substring.
// Example: Contains("item_name", "cof") generates
// "CAST(item_name AS STRING) LIKE @p0" with "%cof%".
func Contains(field, value string) Condition {
	return &containsCondition{
		field: field,
		value: value,
	}
}

// SQL generates the SQL fragment for substring comparison.
func (c *containsCondition) SQL(paramIndex int) (string, map[string]interface{}) {
	paramName := fmt.Sprintf("p%d", paramIndex)
	sql := fmt.Sprintf("CAST(%s AS STRING) LIKE @%s", c.field, paramName)
	params := map[string]interface{}{
		paramName: "%" + c.value + "%",
	}
	return sql, params
}

// timestampContainsCondition implements substring match against a formatted
// timestamp column.
type timestampContainsCondition struct {
	field string
	value string
}

// TimestampContains creates a WHERE condition matching rows whose timestamp
// field, formatted as "2006-01-02T15:04:05", contains the given substring.
// Typing a date prefix such as "2026-09" matches every sale in that month.
func TimestampContains(field, value string) Condition {
	return &timestampContainsCondition{
		field: field,
		value: value,
	}
}

// SQL generates the SQL fragment for formatted timestamp comparison.
func (c *timestampContainsCondition) SQL(paramIndex int) (string, map[string]interface{}) {
	paramName := fmt.Sprintf("p%d", paramIndex)
	sql := fmt.Sprintf("FORMAT_TIMESTAMP('%%Y-%%m-%%dT%%H:%%M:%%S', %s) LIKE @%s", c.field, paramName)
	params := map[string]interface{}{
		paramName: "%" + c.value + "%",
	}
	return sql, params
}
