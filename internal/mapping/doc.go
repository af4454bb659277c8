// Package mapping loads the WARP integration registry: per-agent overrides
// (target type, capabilities, extra environment), the directory layout to
// create, and the config template. A Loader reads its source once and hands
// out the same *Registry for the rest of the run.
package mapping
