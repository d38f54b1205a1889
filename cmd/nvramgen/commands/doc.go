// Package commands defines the nvramgen CLI and wires the pipeline.
//
// Commands
//
//   - (root)     Diff nvram.txt against defaults.txt and write set-nvram.sh
//   - diff       Print the raw name=value diff without script formatting
//   - sections   Print the section table in display order
//
// # Implementation
//
// The root command loads the optional nvramgen.yaml config file, configures
// logging, and builds the service graph (parser, differ, classifier,
// renderer, workspace) before any command runs, so handlers share one app
// context.
package commands
