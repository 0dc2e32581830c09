package util

import (
	"os"
	"strconv"
	"time"

	log "github.com/sirupsen/logrus"
)

func InitConfig() {
	addr := os.Getenv("ADDR")
	if addr == "" {
		addr = ":8080"
	}

	apiURL := os.Getenv("API_URL")
	if apiURL == "" {
		apiURL = "https://api.ctrlbits.xyz/api"
		log.Warnf("API_URL not set, using %s", apiURL)
	}

	serverSideFilter := false
	if v, err := strconv.ParseBool(os.Getenv("SERVER_SIDE_FILTER")); err == nil {
		serverSideFilter = v
	}

	Config = config{
		StartTime:        time.Now().Unix(),
		Addr:             addr,
		ApiURL:           apiURL,
		FallbackFile:     os.Getenv("FALLBACK_FILE"),
		ServerSideFilter: serverSideFilter,
		Version:          "1.0.0",
	}
}

var Config config

type config struct {
	StartTime int64
	Addr      string
	// ApiURL is the base URL of the content backend, e.g.
	// https://api.ctrlbits.xyz/api.
	ApiURL string
	// FallbackFile overrides the embedded placeholder fixtures.
	FallbackFile string
	// ServerSideFilter resolves the featured and category lenses via
	// backend query parameters instead of filtering the full
	// collection locally.
	ServerSideFilter bool
	Version          string
}
