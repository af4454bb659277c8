// Package transform builds WARP agent and workflow records from parsed BMAD
// descriptors. Transformation never fails: sparse input produces a complete
// record filled with engine defaults. Records copy everything they hold, so
// nothing they contain aliases the profile or the registry.
package transform
