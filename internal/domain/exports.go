package domain

import (
	interfaces "calc/internal/domain/interfaces"
	types "calc/internal/domain/types"
)

// Type aliases expose domain types from the types subpackage for compact imports.
type (
	EntryID     = types.EntryID
	Operation   = types.Operation
	Entry       = types.Entry
	IntOperands = types.IntOperands
)

// OpAdd is re-exported from the types subpackage.
const OpAdd = types.OpAdd

// Interface aliases expose domain interfaces from the interfaces subpackage.
type (
	CalculatorService = interfaces.CalculatorService
	HistoryStore      = interfaces.HistoryStore
)
