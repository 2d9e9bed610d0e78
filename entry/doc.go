// Package entry implements the RPN entry pad core: a bounded text
// buffer for the number being typed and a fixed arena of such buffers
// forming the visible stack.
//
// Both types enforce their bounds explicitly. Appending past the
// entry length and committing past the last slot are rejected with
// sentinel errors instead of writing out of range.
package entry
