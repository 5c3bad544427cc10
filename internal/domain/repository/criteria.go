package repository

import (
	"strings"
	"time"
)

// Operator is the comparison applied by a Predicate.
type Operator string

const (
	OpEqual    Operator = "eq"
	OpContains Operator = "contains" // case-insensitive substring
	OpBetween  Operator = "between"  // time range [from, to), a zero bound is open; Value is [2]time.Time
)

// Resource field names understood by the persistence layer. Each repository
// maps the names it supports onto whitelisted columns and rejects the rest
// with ErrUnsupportedField.
const (
	FieldName         = "name"
	FieldEmail        = "email"
	FieldRole         = "role"
	FieldLocked       = "locked"
	FieldCategory     = "category"
	FieldStoreID      = "storeId"
	FieldCustomerID   = "customerId"
	FieldCustomerName = "customerName"
	FieldStatus       = "status"
	FieldKind         = "kind"
	FieldCode         = "code"
	FieldResolved     = "resolved"
	FieldPrice        = "price"
	FieldQuantity     = "quantity"
	FieldTotal        = "total"
	FieldPercent      = "percent"
	FieldRating       = "rating"
	FieldExpiredAt    = "expiredAt"
	FieldCreatedAt    = "createdAt"
	FieldUpdatedAt    = "updatedAt"
)

// Predicate is one field -> operator -> value condition.
type Predicate struct {
	Field string
	Op    Operator
	Value any
}

// Criteria is a conjunction of predicates built explicitly by the use cases.
type Criteria struct {
	predicates []Predicate
}

// NewCriteria starts an empty conjunction.
func NewCriteria() *Criteria {
	return &Criteria{}
}

// Equal adds an exact-match predicate.
func (c *Criteria) Equal(field string, value any) *Criteria {
	c.predicates = append(c.predicates, Predicate{Field: field, Op: OpEqual, Value: value})

	return c
}

// Contains adds a case-insensitive substring predicate. Blank input adds nothing.
func (c *Criteria) Contains(field, substr string) *Criteria {
	substr = strings.TrimSpace(substr)
	if substr == "" {
		return c
	}
	c.predicates = append(c.predicates, Predicate{Field: field, Op: OpContains, Value: substr})

	return c
}

// Between adds a half-open time-range predicate.
func (c *Criteria) Between(field string, from, to time.Time) *Criteria {
	c.predicates = append(c.predicates, Predicate{Field: field, Op: OpBetween, Value: [2]time.Time{from, to}})

	return c
}

// Predicates returns the predicates in insertion order.
func (c *Criteria) Predicates() []Predicate {
	if c == nil {
		return nil
	}

	return c.predicates
}

// Has reports whether a predicate on field is present.
func (c *Criteria) Has(field string) bool {
	for _, p := range c.Predicates() {
		if p.Field == field {
			return true
		}
	}

	return false
}
