// Package props provides property access for the dynamically shaped values
// the query operators select keys from and merge during joins.
//
// A property bag is a map with string keys, a struct, or a pointer to
// either. Paths use dot notation and are resolved directly, segment by
// segment, without building or evaluating code:
//
//	props.Lookup(order, "customer.address.city") // → "London", true
//	props.Has(order, "customer.email")            // → false
//	keys, _ := props.Keys(order)                  // stable property order
//	rec, _ := props.ToRecord(order)               // map[string]any copy
//
// Struct fields are exposed under their json tag name when one is set, so
// a struct and its decoded map[string]any form answer the same paths.
package props
