package keymap

// Resolver maps key strings to actions.
type Resolver struct {
	actions map[string]Action
}

// NewResolver creates a resolver from bindings. A key bound more than once
// resolves to its last binding, so contexts listed later take precedence.
func NewResolver(bindings []Binding) *Resolver {
	r := &Resolver{actions: make(map[string]Action, len(bindings))}
	for _, b := range bindings {
		for _, key := range b.Keys {
			r.actions[key] = b.Action
		}
	}
	return r
}

// Resolve returns the action bound to key, or "" if none.
func (r *Resolver) Resolve(key string) Action {
	return r.actions[key]
}
