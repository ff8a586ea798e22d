/*
Package cache implements a read-through cache around a fs.FS, using groupcache.

Only ReadFile and ReadDir are cached, which is how the content loader reads
its folders. Open passes through to the wrapped file system.

	groupcache.RegisterPeerPicker(func() groupcache.PeerPicker { return groupcache.NoPeers{} })

	fsys := cache.New(os.DirFS(root), &cache.Config{SizeInBytes: 8 << 20, Duration: time.Minute})
	if err := fsys.Watch(ctx, filepath.Join(root, "content/blog")); err != nil {
		log.Print(err)
	}

groupcache does not support expiration, so keys carry a quantized time
bucket: an entry is reloaded roughly every Duration. Keys also carry a
generation number that Invalidate bumps, which makes every cached entry
unreachable at once. Errors, including missing files, are never cached.
*/
package cache

import (
	"bytes"
	"context"
	"encoding/gob"
	"fmt"
	"io/fs"
	"net/url"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/golang/groupcache"
	"github.com/google/uuid"
)

// Config stores the configuration settings of the cache.
type Config struct {
	GroupName   string        // groupcache group; a random name is used when empty
	SizeInBytes int64         // cache size; 1MB when zero
	Duration    time.Duration // how long entries live; zero means until Invalidate
}

// An FS provides cached access to a hierarchical file system.
type FS struct {
	fs       fs.FS
	duration time.Duration
	gen      atomic.Uint64
	cache    *groupcache.Group
}

const (
	opFile = "file"
	opDir  = "dir"
)

// New creates a cached FS around innerFS. If config is nil, it defaults to a
// 1MB cache with no expiration.
func New(innerFS fs.FS, config *Config) *FS {
	var c Config
	if config != nil {
		c = *config
	}
	if c.GroupName == "" {
		c.GroupName = uuid.NewString()
	}
	if c.SizeInBytes <= 0 {
		c.SizeInBytes = 1 << 20
	}
	cfs := &FS{fs: innerFS, duration: c.Duration}
	cfs.cache = groupcache.NewGroup(c.GroupName, c.SizeInBytes, groupcache.GetterFunc(
		func(ctx context.Context, key string, dest groupcache.Sink) error {
			q, err := url.ParseQuery(key)
			if err != nil {
				return fmt.Errorf("invalid cache key: %w", err)
			}
			name := q.Get("path")
			switch q.Get("op") {
			case opFile:
				b, err := fs.ReadFile(innerFS, name)
				if err != nil {
					return err
				}
				return dest.SetBytes(b)
			case opDir:
				des, err := fs.ReadDir(innerFS, name)
				if err != nil {
					return err
				}
				ents := make([]dirEntry, len(des))
				for i, de := range des {
					ents[i].FI.Nm = de.Name()
					ents[i].FI.Md = de.Type()
				}
				var buf bytes.Buffer
				if err := gob.NewEncoder(&buf).Encode(ents); err != nil {
					return err
				}
				return dest.SetBytes(buf.Bytes())
			}
			return fmt.Errorf("invalid cache op %q", q.Get("op"))
		}))
	return cfs
}

// Open opens the named file of the wrapped file system. It is not cached.
func (cfs *FS) Open(name string) (fs.File, error) {
	return cfs.fs.Open(name)
}

// ReadFile reads the named file through the cache.
func (cfs *FS) ReadFile(name string) ([]byte, error) {
	if !fs.ValidPath(name) {
		return nil, &fs.PathError{Op: "readfile", Path: name, Err: fs.ErrInvalid}
	}
	var buf groupcache.ByteView
	if err := cfs.get(opFile, name, groupcache.ByteViewSink(&buf)); err != nil {
		return nil, err
	}
	return buf.ByteSlice(), nil
}

// ReadDir reads the named directory through the cache. Entries carry only
// their name and type; Info does not stat the file.
func (cfs *FS) ReadDir(name string) ([]fs.DirEntry, error) {
	if !fs.ValidPath(name) {
		return nil, &fs.PathError{Op: "readdir", Path: name, Err: fs.ErrInvalid}
	}
	var buf groupcache.ByteView
	if err := cfs.get(opDir, name, groupcache.ByteViewSink(&buf)); err != nil {
		return nil, err
	}
	var ents []dirEntry
	if err := gob.NewDecoder(buf.Reader()).Decode(&ents); err != nil {
		return nil, &fs.PathError{Op: "readdir", Path: name, Err: err}
	}
	r := make([]fs.DirEntry, len(ents))
	for i := range ents {
		r[i] = ents[i]
	}
	return r, nil
}

// Invalidate makes every cached entry stale. The next read of each path
// goes to the wrapped file system.
func (cfs *FS) Invalidate() {
	cfs.gen.Add(1)
}

// get loads the key for op and name into dest.
func (cfs *FS) get(op, name string, dest groupcache.Sink) error {
	q := make(url.Values, 4)
	q.Set("op", op)
	q.Set("path", name)
	q.Set("t", strconv.FormatInt(quantize(time.Now(), cfs.duration, name), 10))
	q.Set("g", strconv.FormatUint(cfs.gen.Load(), 10))
	return cfs.cache.Get(context.Background(), q.Encode(), dest)
}
