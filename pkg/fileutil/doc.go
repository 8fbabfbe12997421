// Package fileutil provides filesystem helpers built on afero: atomic
// replacement of a file and size-limited reads.
package fileutil
