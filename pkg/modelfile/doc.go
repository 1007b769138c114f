// Package modelfile declares model types from a YAML document, so a schema
// of record types can live next to the code that consumes it instead of being
// spelled out in Go. Base types are referenced by name and resolved through
// the registry, which means a document can layer types on ones it declared
// earlier in the same file.
package modelfile
