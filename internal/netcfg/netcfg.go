package netcfg

import "os"

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

// APIBase selects the backend origin. The /api prefix lives in the request
// paths, not here.
var APIBase = getenv("BLOCK_API_BASE", "http://127.0.0.1:8001")
