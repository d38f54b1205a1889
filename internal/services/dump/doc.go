// Package dump parses NVRAM text exports into ordered Dumps.
//
// The export format is one name=value pair per line, where values may span
// multiple lines and may contain further '=' characters. Only the first '='
// on a stanza line separates name from value. Some firmware builds append a
// free-text epilogue after a "---" line; it is stripped before parsing.
package dump
