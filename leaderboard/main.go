package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"
	"time"
)

func main() {
	port := flag.Int("port", 8090, "HTTP listen port")
	ttl := flag.Duration("token-ttl", 24*time.Hour, "Session token lifetime without use")
	flag.Parse()

	store := NewStore(*ttl)
	defer store.Stop()

	addr := fmt.Sprintf(":%d", *port)
	log.Printf("[leaderboard] starting on %s (token TTL=%s)", addr, *ttl)
	if err := http.ListenAndServe(addr, routes(store)); err != nil {
		log.Fatalf("[leaderboard] fatal: %v", err)
	}
}
