// Package utils provides loose type conversion helpers.
//
// Feed snapshots are hand-written JSON, so an id may arrive as a number or a string and a flag
// as true, 1 or "true". ToInt, ToString and ToBool normalise such values and never fail.
package utils
