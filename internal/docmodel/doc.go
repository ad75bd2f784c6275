// Package docmodel holds the documentation generator's view of a module: one
// SourceSpec per source set, collected in a per-module Registry.
//
// The registry has a strict two-phase life. During the configuration pass it
// is mutable and registration is idempotent by name; Seal flips it into the
// read-only execution phase. Registering after Seal is a programmer error
// and panics, mirroring how duplicate handler registration is treated
// elsewhere in this codebase.
package docmodel
