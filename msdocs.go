// Package msdocs builds and serves an offline database of Microsoft
// Win32/WDK API documentation. An offline build step parses cloned
// documentation trees into a single compressed database file; at runtime a
// resolver maps a symbol name -- possibly misspelled or decorated by a
// disassembler -- to the best matching documentation entry.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., sqlite/, levenshtein/, zstd/).
package msdocs
