package testutil

import "github.com/vk/fcodego/registry"

// StaticModule registers a fixed set of code groups, each group being the
// active code followed by its legacy codes, all bound to TypeName.
type StaticModule struct {
	TypeName string
	Groups   [][]string
}

// RegisterCodes implements registry.Module.
func (m *StaticModule) RegisterCodes(r *registry.Registry[string]) error {
	for _, group := range m.Groups {
		if err := r.Def(group[0], m.TypeName, group[1:]...); err != nil {
			return err
		}
	}
	return nil
}
