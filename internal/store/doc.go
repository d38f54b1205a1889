// Package store provides file access for nvramgen's inputs and output.
//
// A Workspace is rooted at a directory (normally the working directory)
// and resolves relative paths against it; absolute paths pass through.
// Read errors keep the offending path so the CLI can name the missing file.
package store
