//go:build pprof

package main

import (
	"net/http"
	_ "net/http/pprof"

	"github.com/tesselslate/xwin/internal/log"
)

func init() {
	go func() {
		log.Info("Started pprof server.")
		log.Error("pprof server stopped: %s", http.ListenAndServe("localhost:6060", nil))
	}()
}
