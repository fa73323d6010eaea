// Package stream implements the newline-delimited ASCII MOC variant: a
// `qty=`/`depth=` preamble followed by one `depth/idx[-idx]` token per
// line. Cells must already be in ascending NESTED z-order (space) or
// numeric order (time/frequency); Decode checks this ordering as it reads
// and never sorts. Decode does not run in constant memory: it collects
// every decoded cell in a slice before building the RangeMOC.
package stream
