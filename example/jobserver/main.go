package main

import (
	"flag"
	"log"
)

var listenAddr = flag.String("listen-addr", "127.0.0.1:8080", "The address to listen on")

func main() {
	flag.Parse()

	s := NewServer(log.Default(), *listenAddr)

	log.Printf("Listening connections on %q", *listenAddr)
	if err := s.Serve(); err != nil {
		log.Fatalf("Serving failed: %v", err)
	}
}
