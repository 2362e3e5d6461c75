package registry

// Module is implemented by packages that contribute codes to a registry at
// startup, before the registry is handed to consumers.
type Module[T comparable] interface {
	RegisterCodes(r *Registry[T]) error
}

// Install runs every module against the registry, stopping at the first
// failure.
func (r *Registry[T]) Install(modules ...Module[T]) error {
	for _, m := range modules {
		if err := m.RegisterCodes(r); err != nil {
			return err
		}
	}
	return nil
}
