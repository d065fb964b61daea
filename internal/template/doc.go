// Package template substitutes {{ name }} placeholders in instrument
// definition files before they are parsed.
//
// Placeholders may carry a leading dot ({{ .name }}) and surrounding
// spaces. Values come from --var-file and --var and are merged with
// MergeContexts, later sources winning.
package template
