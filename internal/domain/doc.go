// Package domain defines the core data model for nvramgen.
//
// The model mirrors the pipeline: a Dump is parsed from an NVRAM text
// export, two Dumps are diffed into Settings, each Setting is classified
// into a Section by an ordered rule table, and the grouped result is
// rendered as a shell script.
//
// The package also declares the service interfaces consumed by the driver,
// so each pipeline stage can be replaced or tested in isolation.
package domain
