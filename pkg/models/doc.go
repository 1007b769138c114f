// Package models implements the declarative model layer: named record types
// whose attributes resolve default values through field descriptors, plus a
// registry that makes every declared type retrievable by its lowercased name.
//
// A type is declared once, either from a name and a set of constant defaults
// (DeclareType) or from an explicit Template (Declare). Declaration registers
// the type; afterwards any number of instances can be constructed from it.
// Instances keep their own mutable set of known field names, so assigning a
// value under a new name grows the instance beyond what its type declares.
//
// Every type carries the built-in fields "_id" and "_type"; "_type" always
// resolves to the registry key, regardless of what the declaration said.
//
// The registry is not synchronized: declare all types before handing the
// registry to concurrent readers, and serialize registration externally if a
// multi-threaded host needs it.
package models
