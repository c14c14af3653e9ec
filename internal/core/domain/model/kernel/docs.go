// Package kernel holds the value objects shared by every aggregate of the order
// lifecycle service. Today that is the UUID identifier; values here are immutable
// and safe for concurrent use.
package kernel
