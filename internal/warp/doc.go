// Package warp installs the WARP integration into a BMAD project. It drives
// the pipeline over every agent and workflow (locate, parse, transform,
// emit, record) one item at a time, isolating per-item failures, and writes
// the manifest and static artifacts around it.
//
// Failure policy: a registry load error aborts the run; a missing agent
// document skips the item silently; malformed metadata, unreadable files and
// failed writes are logged as warnings and the batch continues.
package warp
