// Package fileutil writes output files atomically under an advisory lock.
package fileutil
