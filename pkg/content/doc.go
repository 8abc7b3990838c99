/*
Package content resolves the display copy and colors used by generated business
websites. Every lookup is a pure, total mapping from a business-type or
color-scheme key to a fixed value, with an explicit fallback arm for keys that
are not recognized. Nothing in this package allocates shared state, so all
functions are safe for concurrent use.
*/
package content
