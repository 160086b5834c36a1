// Package typegen synthesizes TypeScript type expressions for GraphQL
// schema fields and composes operation result types out of fragments.
//
// # Field types
//
// ResolveFieldType turns a FieldDescriptor into a type expression:
//
//  1. The real type is the primitive mapping of the base type when one
//     exists (built-ins overlaid with the scalars option), otherwise the
//     converted type name, prefixed with interfacePrefix unless the field
//     is a scalar.
//  2. Scalars that are not primitives (opaque ids such as ObjectId) go
//     through the NameRegistry. A hit is rewritten by the tbReplaces chain
//     and qualified with the namespace unless noNamespaces is set.
//  3. Arrays nest their element type DimensionOfArray times, either as
//     T[] or ReadonlyArray<T>. Nullable elements become (Maybe<T>)[] or
//     ReadonlyArray<Maybe<T>>.
//  4. A field that is neither required nor defaulted is wrapped in
//     Maybe<T> when Maybe wrapping is enabled.
//
// Optional reports the separate property-level "?" marker.
//
// # Fragments
//
// BuildOperationType buckets inline fragments and fragment spreads by the
// type they apply to. Names inside a bucket are intersected, buckets are
// unioned:
//
//	(A1 & A2) | B1
//
// A spread naming a fragment missing from the table fails with
// *FragmentNotFoundError. Every other lookup falls back to a default.
//
// A Generator is immutable after New and safe for concurrent use.
package typegen
