// Package registry maps stable operation names to their request and
// response schema pair.
//
// A Registry is populated once, single-threaded, during process
// startup, before the host begins dispatching to providers and actors.
// It is read-only afterwards, so lookups need no locking.
// Registering a name twice fails with duplicate_operation; this is a
// build-time catalog inconsistency and initialization should abort.
//
//	reg := registry.New()
//	if err := reg.Register(keyvalue.OpGet, keyvalue.GetRequestType, keyvalue.GetResponseType); err != nil {
//		return err
//	}
//	op, err := reg.Resolve("KeyValue.Get")
//
// The catalog package performs the exhaustive population for the fixed
// operation set shared by every component build.
package registry
