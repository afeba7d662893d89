package extract

import "errors"

// ErrMalformedDocument is returned when the input is not valid JSON.
// No records are produced in that case.
var ErrMalformedDocument = errors.New("malformed export document: not valid JSON")
