package ir

// SymbolKind distinguishes the role a Symbol plays so the walker can decide
// where to bind it (frame variable table vs. receiver's field map).
type SymbolKind int

const (
	SymbolLocal SymbolKind = iota
	SymbolValueParameter
	SymbolField
	SymbolReceiver
	SymbolExtensionReceiver
	SymbolSynthetic
)

// Symbol is a unique identity for a binding site. Equality is pointer
// identity, mapping IR symbol identity to its current value: two
// distinct *Symbol values are always distinct bindings even if they
// share a Name, which only exists for diagnostics.
type Symbol struct {
	Name string
	Kind SymbolKind
	Type Type
}

// NewSymbol allocates a fresh symbol. Frontends call this once per
// declaration site; the evaluator never constructs symbols itself.
func NewSymbol(name string, kind SymbolKind, typ Type) *Symbol {
	return &Symbol{Name: name, Kind: kind, Type: typ}
}
