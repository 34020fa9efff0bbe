// Package label builds the text attached to mapper artifacts.
//
// Wrap soft-wraps long labels with a hysteresis window: around every nominal
// wrap column it looks up to half a column in both directions for the nearest
// non-alphanumeric rune and breaks there, so words stay intact whenever a
// separator is close enough.
package label
