package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/Engineerbabu777/blog-app/internal/backend"
	"github.com/Engineerbabu777/blog-app/internal/buildinfo"
	"github.com/Engineerbabu777/blog-app/internal/client/bloc"
	"github.com/Engineerbabu777/blog-app/internal/client/cli"
	"github.com/Engineerbabu777/blog-app/internal/client/config"
	"github.com/Engineerbabu777/blog-app/internal/client/local"
	"github.com/Engineerbabu777/blog-app/internal/client/remote"
	authrepo "github.com/Engineerbabu777/blog-app/internal/client/repositories/auth"
	blogrepo "github.com/Engineerbabu777/blog-app/internal/client/repositories/blogs"
	"github.com/Engineerbabu777/blog-app/internal/client/usecases"
	"github.com/Engineerbabu777/blog-app/internal/logging"
	"github.com/Engineerbabu777/blog-app/internal/netx"
)

func main() {
	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()

	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	platform, err := backend.New(ctx, backend.Config{
		DatabaseDSN:             cfg.DatabaseDSN,
		SecretKey:               cfg.SecretKey,
		SessionValidityDuration: cfg.SessionValidityDuration,
		S3RootUser:              cfg.S3RootUser,
		S3RootPassword:          cfg.S3RootPassword,
		S3Bucket:                cfg.S3Bucket,
		S3Region:                cfg.S3Region,
		S3BaseEndpoint:          cfg.S3BaseEndpoint,
	})
	if err != nil {
		log.Fatalf("%v", err)
	}
	defer platform.Close()

	box, cacheDB, err := local.Open(ctx, cfg.LocalCachePath)
	if err != nil {
		log.Fatalf("%v", err)
	}
	defer cacheDB.Close()

	checker := netx.NewHTTPChecker(cfg.ProbeURL, cfg.ProbeTimeout)

	blogRepository := blogrepo.NewRepository(
		remote.NewBackendBlogSource(platform),
		local.NewBlogCache(box),
		checker,
		logger,
	)
	authRepository := authrepo.NewRepository(
		remote.NewBackendAuthSource(platform),
		local.NewSessionCache(box),
		logger,
	)

	blogBloc := bloc.NewBlogBloc(
		usecases.NewUploadBlog(blogRepository),
		usecases.NewGetAllBlogs(blogRepository),
	)
	authBloc := bloc.NewAuthBloc(
		usecases.NewUserSignUp(authRepository),
		usecases.NewUserSignIn(authRepository),
		usecases.NewCurrentUser(authRepository),
		usecases.NewUserSignOut(authRepository),
	)

	app := cli.NewApp(authBloc, blogBloc, logger)
	app.Run(ctx)
}
