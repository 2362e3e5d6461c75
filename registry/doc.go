// Package registry provides the core code↔type table of fcodego.
//
// A registry maps short string identifiers ("codes") to type descriptors.
// Every registered type carries exactly one active code — the current
// canonical identifier — and any number of legacy codes: deprecated aliases
// that still resolve to the same type, so that records persisted under an
// old code keep deserializing after a rename.
//
// There is no implicit global instance. The host application constructs a
// registry with New and passes it to whatever code needs registration or
// lookup. The descriptor type parameter is anything comparable: reflect.Type
// for Go types (see DefType/MustDefType), or a caller-defined tag such as a
// declared type name when codes come from manifests.
//
// Registration happens through two paths. Def is the definition-time path,
// meant to run from init blocks or package-level var declarations before the
// registry is first consulted. Register is the direct path; codes registered
// through it are tracked and can be bulk-removed with ClearDirect, which is
// what test teardown wants. SetLocked freezes the registry once the process
// is fully configured.
package registry
