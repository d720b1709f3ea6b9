// Package pipeline ties the generator together: it loads packages, selects
// the types to build, plans names and renders one builder file per type.
//
// Types are selected, in order of precedence, from an explicit list, from
// the patterns of a configuration file, or from the position of the
// go:generate directive that invoked the tool.
package pipeline
