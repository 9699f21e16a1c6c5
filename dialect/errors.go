package dialect

import "errors"

// ErrUnknownDialect is returned by Lookup when no dialect matches the name.
var ErrUnknownDialect = errors.New("dialect: unknown dialect")
