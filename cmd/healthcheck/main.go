// Command healthcheck probes the server's /healthz endpoint and exits non-zero on failure.
// It is intended for container HEALTHCHECK directives on images without curl.
package main

import (
	"context"
	"log"
	"os"
	"time"

	infrahttp "market_dashboard/internal/platform/http"
)

func main() {
	url := os.Getenv("HEALTHCHECK_URL")
	if url == "" {
		port := os.Getenv("PORT")
		if port == "" {
			port = "8080"
		}
		url = "http://127.0.0.1:" + port + "/healthz"
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := infrahttp.Probe(ctx, infrahttp.NewHTTPClient(3*time.Second), url); err != nil {
		log.Println("[ERROR]", err)
		os.Exit(1)
	}
}
