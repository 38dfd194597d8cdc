// Package service implements the field-resolution dispatch contract that
// turns schema object types into response document sub-trees.
//
// # Model
//
// Each schema object type is represented by an Object binding declared field
// names to FieldResolver functions. Resolving a selection set walks the
// requested fields in declared order (respecting aliases, fragment spreads,
// inline fragments, and the @skip/@include directives), dispatches each field
// group to its resolver, and assembles the finished members into an
// Object-kind response.Value whose member order matches the request. The same
// declared field requested under different aliases forms separate groups,
// each resolved independently with its own materialized arguments. Fields the
// request did not select are never resolved.
//
// # Concurrency
//
// Sibling fields of one selection are independent. Resolve launches one
// goroutine per field group; each resolver builds an isolated sub-tree and
// may block inside application code (that is the only place suspension
// happens). Completed sub-trees are attached to the parent Object one at a
// time on the joining goroutine, in declared order, regardless of the order
// in which the goroutines finished. When the context is cancelled the
// assembled parent is discarded without attaching anything, so no partially
// built state stays reachable. ResolveSerial resolves groups sequentially
// for mutation root selections.
//
// # Errors
//
// Failures follow the response package's taxonomy. Contract violations and
// duplicate-member defects abort the operation and surface as an error
// return from Resolve. Any other resolver error is recorded on the shared
// State as a FieldError located at the field's response path; the member
// renders as null and sibling sub-trees already built into the same parent
// remain valid.
package service
