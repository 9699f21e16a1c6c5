package dialect

import (
	"reflect"

	"github.com/mickamy/keywordwrap/internal/naming"
)

// TableNamer can be implemented by model structs to override the
// auto-derived table name.
type TableNamer interface {
	TableName() string
}

// TableName returns the table name for type T.
// If T implements TableNamer (value or pointer receiver), that name is used;
// otherwise it is inferred from the type name ("UserProfile" → "user_profiles").
func TableName[T any]() string {
	var zero T
	if tn, ok := any(&zero).(TableNamer); ok {
		return tn.TableName()
	}
	return naming.TableName(reflect.TypeFor[T]().Name())
}

// QuoteTable returns the table name for type T quoted for d.
func QuoteTable[T any](d Dialect) string {
	return QuoteQualified(d, TableName[T]())
}
