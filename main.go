package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/ancientlore/folio/cache"
	"github.com/ancientlore/folio/content"
	"github.com/ancientlore/folio/render"
	"github.com/ancientlore/folio/site"
	"github.com/facebookgo/flagenv"
	"github.com/golang/groupcache"
)

// main is where it all begins. 😀
func main() {
	// Setup flags
	var (
		fPort              = flag.Int("port", 8080, "Port to listen on.")
		fReadTimeout       = flag.Duration("readtimeout", 10*time.Second, "HTTP server read timeout.")
		fReadHeaderTimeout = flag.Duration("readheadertimeout", 5*time.Second, "HTTP server read header timeout.")
		fWriteTimeout      = flag.Duration("writetimeout", 30*time.Second, "HTTP server write timeout.")
		fRoot              = flag.String("root", ".", "Root of web site.")
		fCache             = flag.Duration("cache", 0, "How long to cache content and static files; 0 reads the disk on every request.")
		fCacheSize         = flag.Int64("cachesize", 32*1024*1024, "Cache size in bytes.")
		fRenderer          = flag.String("renderer", render.Default, "Markdown renderer: blackfriday or goldmark.")
		fWatch             = flag.Bool("watch", true, "Drop cached content as soon as files change.")
	)
	flag.Parse()
	flagenv.Prefix = "FOLIO_"
	flagenv.Parse()

	// Setup groupcache (with no peers)
	groupcache.RegisterPeerPicker(func() groupcache.PeerPicker { return groupcache.NoPeers{} })

	watchCtx, stopWatching := context.WithCancel(context.Background())
	defer stopWatching()

	// Open the site
	var (
		fsys   fs.FS = os.DirFS(*fRoot)
		cached *cache.FS
	)
	if *fCache > 0 {
		cached = cache.New(fsys, &cache.Config{GroupName: "content", SizeInBytes: *fCacheSize, Duration: *fCache})
		fsys = cached
		log.Printf("Caching content for %s", *fCache)
	}
	renderer, err := render.New(*fRenderer)
	if err != nil {
		log.Print(err)
		os.Exit(2)
	}
	s, err := site.New(fsys, site.Options{
		Renderer:      renderer,
		CacheSize:     *fCacheSize,
		CacheDuration: *fCache,
	})
	if err != nil {
		log.Printf("Cannot load site %q: %s", *fRoot, err)
		os.Exit(2)
	}
	cfg := s.Config()
	log.Printf("Loaded site %q from %q", cfg.Title, *fRoot)

	if cached != nil && *fWatch {
		err = cached.Watch(watchCtx,
			filepath.Join(*fRoot, filepath.FromSlash(cfg.BlogDir)),
			filepath.Join(*fRoot, filepath.FromSlash(cfg.ProjectsDir)))
		if err != nil {
			log.Printf("Cannot watch content: %s", err)
		} else {
			log.Print("Watching content for changes")
		}
	}

	// Report content problems without refusing to serve
	for _, check := range []func() ([]content.Problem, error){s.Blog().Check, s.Projects().Check} {
		problems, err := check()
		if err != nil {
			log.Printf("check: %s", err)
			continue
		}
		for _, p := range problems {
			log.Printf("check: %s", p)
		}
	}

	// Create HTTP server
	var srv = http.Server{
		Addr:              fmt.Sprintf(":%d", *fPort),
		Handler:           s.Handler(),
		ReadTimeout:       *fReadTimeout,
		WriteTimeout:      *fWriteTimeout,
		ReadHeaderTimeout: *fReadHeaderTimeout,
	}

	// Create signal handler for graceful shutdown
	go func() {
		sigint := make(chan os.Signal, 1)

		// interrupt signal sent from terminal
		signal.Notify(sigint, os.Interrupt)
		// sigterm signal sent from kubernetes
		signal.Notify(sigint, syscall.SIGTERM)

		<-sigint
		stopWatching()

		// We received an interrupt signal, shut down.
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			// Error from closing listeners, or context timeout:
			log.Printf("HTTP server Shutdown: %v", err)
		}
	}()

	// Listen for requests
	log.Printf("Listening for requests on %s", srv.Addr)
	if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		log.Printf("HTTP server: %v", err)
	} else {
		log.Print("Goodbye.")
	}
}
