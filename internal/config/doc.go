// Package config provides the optional YAML configuration of the builder
// generator.
//
// A configuration file selects record types by name or glob pattern and
// overrides naming options per selection:
//
//	version: "1"
//	defaults:
//	  setter_prefix: With
//	builders:
//	  - type: Command
//	  - type: ["*Request", "*Response"]
//	    suffix: Factory
//	    build_method: Finish
//
// Options left empty on a selection fall back to defaults, then to the
// generator's built-in names (Builder, New, "", Build). The first selection
// matching a type wins.
package config
