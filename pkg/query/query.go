// Package query validates client-supplied conference filters and composes
// them into an ordered execution plan for the record store.
package query

import (
	"fmt"
	"strconv"
)

// Filter is a single client-supplied filter specification.
type Filter struct {
	Field    string `json:"field"`
	Operator string `json:"operator"`
	Value    string `json:"value"`
}

// Predicate is a validated filter with its field and operator resolved to
// record-store names and its value coerced to the field's type.
type Predicate struct {
	Field string
	Op    string
	Value interface{}
}

// Plan is the validated, ordered query: conjunctive predicates in input
// order plus the sort keys the store must apply. When an inequality filter
// is present its field must be the first sort key.
type Plan struct {
	Predicates      []Predicate
	InequalityField string
	Sort            []string
}

// Field tokens accepted from clients, mapped to record field names.
var fields = map[string]string{
	"CITY":          "city",
	"TOPIC":         "topics",
	"MONTH":         "month",
	"MAX_ATTENDEES": "maxAttendees",
}

// Operator tokens accepted from clients, mapped to comparison symbols.
var operators = map[string]string{
	"EQ":   "=",
	"GT":   ">",
	"GTEQ": ">=",
	"LT":   "<",
	"LTEQ": "<=",
	"NE":   "!=",
}

// Fields whose values are integers on the record.
var integerFields = map[string]bool{
	"month":        true,
	"maxAttendees": true,
}

// SecondarySortField is the stable sort key appended to every plan.
const SecondarySortField = "name"

// Build validates the filters in input order and composes the query plan.
// The first filter with a non-equality operator designates the inequality
// field; any later non-equality filter on a different field is rejected.
func Build(filters []Filter) (*Plan, error) {
	plan := &Plan{Predicates: make([]Predicate, 0, len(filters))}

	for _, f := range filters {
		field, ok := fields[f.Field]
		if !ok {
			return nil, &InvalidFilterError{Reason: fmt.Sprintf("unknown field %q", f.Field)}
		}

		op, ok := operators[f.Operator]
		if !ok {
			return nil, &InvalidFilterError{Reason: fmt.Sprintf("unknown operator %q", f.Operator)}
		}

		var value interface{} = f.Value
		if integerFields[field] {
			n, err := strconv.Atoi(f.Value)
			if err != nil {
				return nil, &InvalidFilterError{Reason: fmt.Sprintf("field %q requires a numeric value, got %q", f.Field, f.Value)}
			}
			value = n
		}

		// Every operator except "=" is an inequality, and the store allows
		// inequality comparisons on a single field only.
		if op != "=" {
			if plan.InequalityField != "" && plan.InequalityField != field {
				return nil, &MultipleInequalityFieldsError{First: plan.InequalityField, Second: field}
			}
			plan.InequalityField = field
		}

		plan.Predicates = append(plan.Predicates, Predicate{Field: field, Op: op, Value: value})
	}

	if plan.InequalityField != "" {
		plan.Sort = append(plan.Sort, plan.InequalityField)
	}
	plan.Sort = append(plan.Sort, SecondarySortField)

	return plan, nil
}
