// Package projectmodel defines the format-agnostic, read-only view of the
// host build tool's multi-module project: modules, source sets, compilations
// and their dependency buckets.
//
// Why a separate model?
//
// The host exposes this information through its own extension API, and the
// shape of that API differs between host versions and between language
// plugins. Everything downstream (classification, registration,
// serialization) works against this one neutral model instead, so a new
// input format is a new Loader implementation, not a change to the core.
//
// The model is an input: the core never creates or mutates source sets and
// compilations, it only reads them. Ownership stays with the host.
package projectmodel
