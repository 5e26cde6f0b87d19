// Package edgelist persists contact graphs in the plain edge-list format:
// one directed edge per line, "<source>:<target>", no header.
//
// Files ending in ".sz" are snappy-framed. Save never overwrites: when the
// target name exists it retries with "0-", "1-", ... prefixes.
package edgelist
