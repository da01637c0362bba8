/*******************************************************************************
* Copyright (C) 2025 the Eclipse BaSyx Authors and Fraunhofer IESE
*
* Permission is hereby granted, free of charge, to any person obtaining
* a copy of this software and associated documentation files (the
* "Software"), to deal in the Software without restriction, including
* without limitation the rights to use, copy, modify, merge, publish,
* distribute, sublicense, and/or sell copies of the Software, and to
* permit persons to whom the Software is furnished to do so, subject to
* the following conditions:
*
* The above copyright notice and this permission notice shall be
* included in all copies or substantial portions of the Software.
*
* THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND,
* EXPRESS OR IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF
* MERCHANTABILITY, FITNESS FOR A PARTICULAR PURPOSE AND
* NONINFRINGEMENT. IN NO EVENT SHALL THE AUTHORS OR COPYRIGHT HOLDERS BE
* LIABLE FOR ANY CLAIM, DAMAGES OR OTHER LIABILITY, WHETHER IN AN ACTION
* OF CONTRACT, TORT OR OTHERWISE, ARISING FROM, OUT OF OR IN CONNECTION
* WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE SOFTWARE.
*
* SPDX-License-Identifier: MIT
******************************************************************************/

// Package main implements the Thing Description Import Service server.
package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/eclipse-basyx/basyx-go-tdimporter/internal/common"
	"github.com/eclipse-basyx/basyx-go-tdimporter/internal/common/model"
	auth "github.com/eclipse-basyx/basyx-go-tdimporter/internal/common/security"
	"github.com/eclipse-basyx/basyx-go-tdimporter/internal/tdimport"
	"github.com/eclipse-basyx/basyx-go-tdimporter/internal/tdimport/api"
	"github.com/eclipse-basyx/basyx-go-tdimporter/internal/tdimport/archive"
	"github.com/eclipse-basyx/basyx-go-tdimporter/internal/tdimport/events"
	"github.com/eclipse-basyx/basyx-go-tdimporter/internal/tdimport/metrics"
	"github.com/eclipse-basyx/basyx-go-tdimporter/internal/tdimport/persistence"
	persistence_inmemory "github.com/eclipse-basyx/basyx-go-tdimporter/internal/tdimport/persistence/inmemory"
	persistence_mongodb "github.com/eclipse-basyx/basyx-go-tdimporter/internal/tdimport/persistence/mongodb"
	persistence_postgresql "github.com/eclipse-basyx/basyx-go-tdimporter/internal/tdimport/persistence/postgres"
	"github.com/go-chi/chi/v5"
)

func runServer(ctx context.Context, configPath string) error {
	common.PrintSplash()
	log.Default().Println("Loading Thing Description Import Service...")
	log.Default().Println("Config Path:", configPath)

	cfg, err := common.LoadConfig(configPath)
	if err != nil {
		return err
	}
	common.PrintConfiguration(cfg)

	// === Main Router ===
	r := chi.NewRouter()
	common.AddCors(r, cfg)

	// --- Health and Metrics (public) ---
	common.AddHealthEndpoint(r, cfg)
	m := metrics.New()
	common.AddMetricsEndpoint(r, cfg, m.Handler())

	store, err := openStore(ctx, cfg.Storage)
	if err != nil {
		log.Printf("❌ Store setup failed: %v", err)
		return err
	}
	defer func() {
		_ = store.Close(context.Background())
	}()

	archiver, err := archive.New(ctx, cfg.Archive.S3)
	if err != nil {
		return err
	}
	if cfg.Archive.S3.Bucket != "" {
		log.Printf("🪣 Archiving Thing Descriptions to s3://%s/%s", cfg.Archive.S3.Bucket, cfg.Archive.S3.Prefix)
	}

	publisher, err := events.New(cfg.Events.NATS)
	if err != nil {
		return err
	}
	defer func() {
		_ = publisher.Close()
	}()
	if cfg.Events.NATS.URL != "" {
		log.Printf("📣 Publishing import events on %s", cfg.Events.NATS.Subject)
	}

	importOptions, err := importOptionsFromConfig(cfg.Import)
	if err != nil {
		return err
	}

	svc := api.NewThingDescriptionImportAPIService(store,
		api.WithArchiver(archiver),
		api.WithPublisher(publisher),
		api.WithMetrics(m),
		api.WithImportOptions(importOptions...),
		api.WithStrictVerification(cfg.Import.StrictVerification),
	)

	ctrlOpts := []api.ThingDescriptionImportAPIOption{api.WithMaxDocumentBytes(cfg.Import.MaxDocumentBytes)}
	if cfg.OIDC.Enabled {
		verifier, err := auth.NewOIDC(ctx, auth.OIDCSettings{
			Issuer:         cfg.OIDC.Issuer,
			Audience:       cfg.OIDC.Audience,
			RequiredScopes: cfg.OIDC.Scopes,
		})
		if err != nil {
			log.Printf("❌ OIDC setup failed: %v", err)
			return err
		}
		ctrlOpts = append(ctrlOpts, api.WithWriteMiddleware(verifier.Middleware))
	}
	ctrl := api.NewThingDescriptionImportAPIController(svc, ctrlOpts...)

	base := common.NormalizeBasePath(cfg.Server.ContextPath)
	common.AddSwaggerUI(r, common.SwaggerUIConfig{
		UIPath:      common.JoinBasePath(base, "/swagger"),
		SpecPath:    common.JoinBasePath(base, "/api-docs/openapi.yaml"),
		SpecContent: api.OpenAPISpec,
		ServerURL:   serverURL(cfg),
	})

	// === API Subrouter ===
	apiRouter := chi.NewRouter()
	for _, rt := range ctrl.Routes() {
		apiRouter.Method(rt.Method, rt.Pattern, rt.HandlerFunc)
	}
	r.Mount(base, apiRouter)

	// === Start Server ===
	srv := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}
	log.Printf("▶️ Thing Description Import Service listening on %s (contextPath=%q)\n", srv.Addr, cfg.Server.ContextPath)

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}
	log.Println("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func openStore(ctx context.Context, cfg common.StorageConfig) (persistence.Store, error) {
	switch cfg.Backend {
	case "postgres":
		log.Printf("🗄️  Connecting to Postgres with DSN: postgres://%s:****@%s:%d/%s?sslmode=disable",
			cfg.Postgres.User, cfg.Postgres.Host, cfg.Postgres.Port, cfg.Postgres.DBName)
		store, err := persistence_postgresql.NewPostgresRecordStore(cfg.Postgres.DSN(), cfg.Postgres.MaxOpenConnections, cfg.Postgres.MaxIdleConnections, cfg.Postgres.ConnMaxLifetimeMinutes)
		if err != nil {
			return nil, err
		}
		log.Println("✅ Postgres connection established")
		return store, nil
	case "mongodb":
		log.Printf("🗄️  Connecting to MongoDB database %q collection %q", cfg.MongoDB.Database, cfg.MongoDB.Collection)
		store, err := persistence_mongodb.NewMongoRecordStore(ctx, cfg.MongoDB)
		if err != nil {
			return nil, err
		}
		log.Println("✅ MongoDB connection established")
		return store, nil
	default:
		log.Println("📦 Using in-memory import record store")
		return persistence_inmemory.NewInMemoryRecordStore(), nil
	}
}

func importOptionsFromConfig(cfg common.ImportConfig) ([]tdimport.Option, error) {
	opts := []tdimport.Option{
		tdimport.WithKind(model.ModellingKind(cfg.Kind)),
		tdimport.WithAttachMode(tdimport.ParseAttachMode(cfg.AttachMode)),
		tdimport.WithParallel(cfg.Parallel),
	}
	if cfg.SchemaPath != "" {
		validator, err := tdimport.NewSchemaValidatorFromFile(cfg.SchemaPath)
		if err != nil {
			log.Printf("❌ Loading Thing Description schema %s failed: %v", cfg.SchemaPath, err)
			return nil, err
		}
		log.Printf("📜 Validating Thing Descriptions against %s", cfg.SchemaPath)
		opts = append(opts, tdimport.WithValidator(validator))
	}
	return opts, nil
}

func serverURL(cfg *common.Config) string {
	host := cfg.Server.Host
	if host == "" || host == "0.0.0.0" {
		host = "localhost"
	}
	base := common.NormalizeBasePath(cfg.Server.ContextPath)
	if base == "/" {
		base = ""
	}
	return "http://" + host + ":" + strconv.Itoa(cfg.Server.Port) + base
}

func main() {
	configPath := ""
	flag.StringVar(&configPath, "config", "", "Path to config file")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := runServer(ctx, configPath); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
