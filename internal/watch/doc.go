// Package watch re-runs an action whenever one of a set of files changes.
//
// The directories holding the files are watched with fsnotify, so editors
// that save by renaming a temporary file into place are handled. Bursts of
// events are debounced into a single call.
package watch
