// Package vec implements a growable array on top of a manually managed
// buffer.
//
// Element types without Go pointers are stored in anonymous mappings that
// grow with mremap, so growth keeps the old bytes without copying them
// through Go. Other element types live on the Go heap, where the collector
// can see them. Either way a Vec must be released explicitly; an element
// implementing alloc.Releaser has Release called when it is dropped.
package vec
