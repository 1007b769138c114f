// Package openapimodel declares model types from the component schemas of an
// OpenAPI document. Each object schema under components/schemas becomes a
// model template: property defaults turn into constant field defaults and
// property descriptions into field docs, so an API contract can double as the
// declaration source for its record types.
package openapimodel
