package registry

import "reflect"

// DefType registers V under code through the definition-time path, using its
// reflect.Type as the descriptor, and returns that type unchanged so the
// call composes with whatever the caller does next.
func DefType[V any](r *Registry[reflect.Type], code string, legacyCodes ...string) (reflect.Type, error) {
	t := reflect.TypeOf((*V)(nil)).Elem()
	if err := r.Def(code, t, legacyCodes...); err != nil {
		return nil, err
	}
	return t, nil
}

// MustDefType is DefType panicking on error, so a type can self-register in
// a package-level var declaration next to its definition:
//
//	type UserCreated struct{ ... }
//
//	var _ = registry.MustDefType[UserCreated](Codes, "user.created", "uc.v1")
func MustDefType[V any](r *Registry[reflect.Type], code string, legacyCodes ...string) reflect.Type {
	t, err := DefType[V](r, code, legacyCodes...)
	if err != nil {
		panic(err)
	}
	return t
}

// SubtypesOf builds a CodeGroups predicate for Registry[reflect.Type] that
// matches registered types assignable to B. An interface base matches types
// implementing it with either value or pointer receivers. A type assignable
// to several bases matches each of them independently.
func SubtypesOf[B any]() func(reflect.Type) bool {
	base := reflect.TypeOf((*B)(nil)).Elem()
	return func(t reflect.Type) bool {
		if t == nil {
			return false
		}
		if base.Kind() == reflect.Interface {
			return t.Implements(base) || reflect.PointerTo(t).Implements(base)
		}
		return t.AssignableTo(base)
	}
}
