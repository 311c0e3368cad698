package models

import (
	"encoding/json"
	"strconv"
	"time"
)

// Kind distinguishes the two record collections served by the backend.
// Expenses are classified by category, transactions by type.
type Kind string

const (
	KindExpense     Kind = "expense"
	KindTransaction Kind = "transaction"
)

// Amount is a decimal value that tolerates sloppy server encodings: a JSON
// number, a numeric string, or nothing at all. Valid is false when the field
// was absent, null, or not numeric; such amounts render as 0.00 downstream.
type Amount struct {
	Value float64
	Valid bool
}

func (a *Amount) UnmarshalJSON(data []byte) error {
	var n float64
	if err := json.Unmarshal(data, &n); err == nil {
		*a = Amount{Value: n, Valid: true}
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		if v, err := strconv.ParseFloat(s, 64); err == nil {
			*a = Amount{Value: v, Valid: true}
			return nil
		}
	}

	// Null or junk: treat as missing rather than failing the whole decode.
	*a = Amount{}
	return nil
}

func (a Amount) MarshalJSON() ([]byte, error) {
	if !a.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(a.Value)
}

// Record is a single expense or transaction entry. The client holds a
// read-only snapshot fetched once per view; filtering and export never
// modify records.
//
// CreatedAt is kept as the raw wire string: an unparsable timestamp must
// still export (as "Invalid Date") instead of failing the whole collection.
type Record struct {
	ID          string `json:"_id"`
	CreatedAt   string `json:"createdAt"`
	Amount      Amount `json:"amount"`
	Category    string `json:"category"`
	Type        string `json:"type"`
	Description string `json:"description"`
}

// createdAtLayouts are tried in order when parsing CreatedAt.
var createdAtLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// CreatedAtTime parses the record timestamp. The second return value is
// false when the timestamp is empty or not a recognizable date.
func (r Record) CreatedAtTime() (time.Time, bool) {
	if r.CreatedAt == "" {
		return time.Time{}, false
	}
	for _, layout := range createdAtLayouts {
		if t, err := time.Parse(layout, r.CreatedAt); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// Class returns the classification field for the given kind: category for
// expenses, type for transactions. Empty means the field is missing, which
// filtering treats as non-matching.
func (r Record) Class(kind Kind) string {
	if kind == KindTransaction {
		return r.Type
	}
	return r.Category
}
