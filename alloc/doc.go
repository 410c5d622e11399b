// Package alloc holds the manual memory plumbing shared by the containers:
// anonymous mappings that outlive no owner, size arithmetic that aborts
// instead of wrapping, and element teardown.
//
// Memory returned by Map is invisible to the garbage collector. Only values
// for which PointerFree reports true may be stored there.
package alloc
