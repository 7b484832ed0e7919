// Package common holds process-wide constants shared by every other ravec
// package, mirroring the teacher's common package.
package common

// RaveVersion is the current version of the Rave language implemented by
// this front end.
const RaveVersion = "0.1.0"

// ModuleFileName is the name of the TOML module descriptor consumed by the
// config loader.
const ModuleFileName = "rave-mod.toml"

// SourceFileExt is the file extension for Rave source files.
const SourceFileExt = ".rave"

// AliasCycleBound is the hard backstop on alias/substitution resolution
// length, used only if the visited-set cycle guard in the types package
// were ever to miss a cycle (it shouldn't -- see DESIGN.md).
const AliasCycleBound = 256
