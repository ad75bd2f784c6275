// Package app contains the core application logic. It defines the main App
// struct, its configuration, and the configuration pass itself, decoupled
// from any specific entrypoint like a CLI.
//
// One App run is one build-configuration pass: load the project model and
// doc configuration, classify and register every module's source sets,
// apply explicit user overrides, seal the per-module registries, and write
// the serialized plugin parameter bags under the components directory. The
// pass is single-threaded; ordering between classifier and registrar is a
// data dependency (the registrar installs a lazy classification provider),
// not explicit sequencing.
package app
