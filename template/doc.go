// Package template parses and renders the trackable message templates.
//
// A template is a plain string with positional placeholders in one of two forms:
//
//	{0}            - the argument at index 0
//	{1-user-name}  - the argument at index 1, 'user-name' documents its meaning
//
// The placeholder names never affect rendering. Any other use of the curly braces is
// kept as literal text.
package template
