// Package translate re-encodes a core config document for display.
package translate
