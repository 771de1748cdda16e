package main

import (
	"context"

	"github.com/joho/godotenv"

	"devpulse/internal/adapters/github"
	"devpulse/internal/platform/config"
	"devpulse/internal/platform/logger"
	phttp "devpulse/internal/platform/net/http"

	"devpulse/internal/services/api"
)

func main() {
	// optional .env for local development, real envs win
	_ = godotenv.Load()

	// service-scoped config for HTTP etc (CORE_API_*)
	root := config.New()
	apiCfg := root.Prefix("CORE_API_")
	ghCfg := root.Prefix("GITHUB_")

	// bring up logging early
	l := logger.Get()

	// github client shared by all modules, one quota store per process
	gh := github.NewClient(github.Options{
		BaseURL:   ghCfg.MayString("BASE_URL", ""),
		UserAgent: ghCfg.MayString("USER_AGENT", "devpulse"),
		Timeout:   ghCfg.MayDuration("TIMEOUT", 0),
		TokensCSV: ghCfg.MayString("TOKENS", ""),
		PageSize:  ghCfg.MayInt("PAGE_SIZE", 0),
		MaxItems:  ghCfg.MayInt("MAX_ITEMS", 0),
	}, nil)

	// http server (reads CORE_API_PORT)
	srv := phttp.NewServer(apiCfg)

	// mount our API
	api.Mount(
		srv.Router(),
		api.Options{
			Config:         root,
			GitHub:         gh,
			Logger:         l,
			EnableProfiler: apiCfg.MayBool("PROFILER", false),
		},
	)

	// run
	if err := srv.Run(context.Background()); err != nil {
		l.Panic().Err(err).Msg("http server stopped")
	}
}
