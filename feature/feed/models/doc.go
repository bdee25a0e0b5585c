// Package models defines the feed snapshot format, the persisted row and the reports returned
// by the feed service.
package models
