package log

import "sort"

// Common field names for structured logging
const (
	FieldComponent = "component"
	FieldSessionID = "session_id"
	FieldBackend   = "backend"
	FieldOperation = "operation"
	FieldOutcome   = "outcome"
	FieldBillName  = "bill_name"
	FieldAmount    = "amount"
	FieldCount     = "count"
	FieldSelection = "selection"
	FieldError     = "error"
	FieldErrorType = "error_type"

	FieldSchemaVersion = "schema_version"
)

// Components defines standard component names
const (
	ComponentApp     = "app"
	ComponentConsole = "console"
	ComponentService = "service"
	ComponentStorage = "storage"
	ComponentBackend = "backend"
)

// Operations defines standard operation names
const (
	OpAdd      = "add"
	OpList     = "list"
	OpRemove   = "remove"
	OpUpdate   = "update"
	OpStartup  = "startup"
	OpShutdown = "shutdown"
)

// Outcomes of a store operation.
const (
	OutcomeOK       = "ok"
	OutcomeNotFound = "not_found"
	OutcomeFailed   = "failed"
)

// ErrorTypes defines standard error type categories
const (
	ErrorTypeValidation    = "validation_error"
	ErrorTypeConfiguration = "configuration_error"
	ErrorTypeDatabase      = "database_error"
	ErrorTypeInput         = "input_error"
	ErrorTypeInternal      = "internal_error"
)

// LogFields provides a builder pattern for structured log fields
type LogFields map[string]any

// NewFields creates a new LogFields instance
func NewFields() LogFields {
	return make(LogFields)
}

// WithError adds error field
func (f LogFields) WithError(err error) LogFields {
	if err != nil {
		f[FieldError] = err.Error()
	}
	return f
}

// WithOperation adds operation field
func (f LogFields) WithOperation(op string) LogFields {
	f[FieldOperation] = op
	return f
}

// WithOutcome adds outcome field
func (f LogFields) WithOutcome(outcome string) LogFields {
	f[FieldOutcome] = outcome
	return f
}

// WithBillName adds the bill name only, for operations keyed by name
func (f LogFields) WithBillName(name string) LogFields {
	f[FieldBillName] = name
	return f
}

// WithBill adds bill-related fields
func (f LogFields) WithBill(name string, amount float64) LogFields {
	f[FieldBillName] = name
	f[FieldAmount] = amount
	return f
}

// ToSlice converts LogFields to a slice for slog, ordered by key.
func (f LogFields) ToSlice() []any {
	keys := make([]string, 0, len(f))
	for k := range f {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	slice := make([]any, 0, len(f)*2)
	for _, k := range keys {
		slice = append(slice, k, f[k])
	}
	return slice
}
