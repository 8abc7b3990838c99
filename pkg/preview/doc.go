// Package preview builds the read-only website document shown after generation.
//
// Build is a pure function of a frozen wizard record: it resolves copy and
// colors through package content and lays them out in a fixed section order.
// Viewports and panes only describe how the same document is framed, so they
// never influence what Build produces.
package preview
