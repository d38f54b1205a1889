// Package diffing computes the settings changed relative to a defaults dump.
package diffing
