package cache

import (
	"io/fs"
	"time"
)

// fileInfo holds the metadata kept for a cached directory entry. Fields are
// exported so the entry can be gob-encoded.
type fileInfo struct {
	Nm string
	Sz int64
	Md fs.FileMode
	Mt time.Time
}

// Name returns the base name of the file.
func (fi fileInfo) Name() string { return fi.Nm }

// Size is always zero for directory entries.
func (fi fileInfo) Size() int64 { return fi.Sz }

// Mode returns the type bits of the file.
func (fi fileInfo) Mode() fs.FileMode { return fi.Md }

// ModTime is not recorded for directory entries.
func (fi fileInfo) ModTime() time.Time { return fi.Mt }

// IsDir is an abbreviation for Mode().IsDir().
func (fi fileInfo) IsDir() bool { return fi.Md.IsDir() }

// Sys always returns nil.
func (fi fileInfo) Sys() interface{} { return nil }

// dirEntry is a lightweight fs.DirEntry restored from the cache. It is not
// as filled out as if you called Stat on the file itself.
type dirEntry struct {
	FI fileInfo
}

// Name returns the name of the entry.
func (di dirEntry) Name() string { return di.FI.Name() }

// IsDir reports whether the entry describes a directory.
func (di dirEntry) IsDir() bool { return di.FI.IsDir() }

// Type returns the type bits for the entry.
func (di dirEntry) Type() fs.FileMode { return di.FI.Mode().Type() }

// Info returns the entry's FileInfo as of the directory read.
func (di dirEntry) Info() (fs.FileInfo, error) { return di.FI, nil }
