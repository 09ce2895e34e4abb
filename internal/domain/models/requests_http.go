package models

// Requests for the stock HTTP endpoints.

// Symbols are not length-checked: anything the provider cannot serve goes
// through the fallback branch.
type SymbolRequest struct {
	Symbol string `param:"symbol" validate:"required"`
}

type HistoryRequest struct {
	Symbol string `param:"symbol" validate:"required"`
	// Days stays a string: anything unparsable falls back to the default.
	Days string `query:"days"`
}

type SearchRequest struct {
	Q string `query:"q" validate:"min=2"`
}
