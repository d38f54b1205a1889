// Package app wires the pipeline services and runs the generate driver.
package app
