package view

import (
	"fmt"
	"strings"
)

// CustomPrefix marks a card type that names its renderer directly.
const CustomPrefix = "custom:"

// DefaultBuiltins are the card types every dashboard understands.
var DefaultBuiltins = []string{"entities", "entity-filter"}

// BuiltinRendererID returns the renderer identifier for a built-in card type.
func BuiltinRendererID(name string) string {
	return fmt.Sprintf("hui-%s-card", name)
}

// BuiltinTypes maps each name to its renderer identifier.
func BuiltinTypes(names ...string) map[string]string {
	table := make(map[string]string, len(names))
	for _, name := range names {
		table[name] = BuiltinRendererID(name)
	}
	return table
}

// Resolver maps card type names to renderer identifiers.
type Resolver struct {
	builtins map[string]string
}

// NewResolver returns a resolver over the given built-in table. A nil table
// selects DefaultBuiltins.
func NewResolver(builtins map[string]string) *Resolver {
	if builtins == nil {
		builtins = BuiltinTypes(DefaultBuiltins...)
	}
	return &Resolver{builtins: builtins}
}

// Resolve returns the renderer identifier for typ. Built-in names come from
// the table, "custom:<id>" yields <id> verbatim, anything else is unresolved.
func (r *Resolver) Resolve(typ string) (string, bool) {
	if id, ok := r.builtins[typ]; ok {
		return id, true
	}
	if strings.HasPrefix(typ, CustomPrefix) {
		if id := strings.TrimPrefix(typ, CustomPrefix); id != "" {
			return id, true
		}
	}
	return "", false
}
