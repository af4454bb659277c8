// Package descriptor extracts structured metadata from BMAD agent documents
// and workflow files. Agent documents are markdown with an embedded ```yaml
// block; only the first block is read. Metadata problems never fail a parse:
// they surface as warnings on the Result so callers decide how to report them.
package descriptor
