// Package ui implements the Bubble Tea interface of wodview: the week board,
// the week explorer, notifications and the help and configuration modals.
//
// Content comes from the render package; this package only decides layout,
// colors and input handling.
package ui
