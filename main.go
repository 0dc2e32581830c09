package main

import (
	"context"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"

	"github.com/ctrlbits/ctrlbits-site/pkg/backend"
	"github.com/ctrlbits/ctrlbits-site/pkg/fallback"
	"github.com/ctrlbits/ctrlbits-site/pkg/util"
	"github.com/ctrlbits/ctrlbits-site/pkg/web"
)

func main() {
	godotenv.Load()

	if dbg, err := strconv.ParseBool(os.Getenv("DEBUG")); err == nil && dbg {
		log.SetLevel(log.DebugLevel)
	}

	util.InitConfig()

	if err := sentry.Init(sentry.ClientOptions{
		Dsn: os.Getenv("SENTRY_DSN"),
	}); err != nil {
		log.Fatal(err)
	}

	fixtures, err := fallback.Load(util.Config.FallbackFile)
	if err != nil {
		sentry.CaptureException(err)
		log.Fatal(err)
	}

	client := backend.New(util.Config.ApiURL)

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	client.Preload(ctx)
	cancel()

	r := web.Router(client, fixtures)

	log.Infof("starting server at %s", util.Config.Addr)
	http.ListenAndServe(util.Config.Addr, r)

	sentry.Flush(time.Second * 5)
}
