package main

import (
	"context"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	knowledgev1 "github.com/knowledgepipe/knowledgepipe/gen/knowledge/v1"
	"github.com/knowledgepipe/knowledgepipe/internal/chunker"
	"github.com/knowledgepipe/knowledgepipe/internal/common"
	"github.com/knowledgepipe/knowledgepipe/internal/embed"
	"github.com/knowledgepipe/knowledgepipe/internal/export"
	"github.com/knowledgepipe/knowledgepipe/internal/extract"
	"github.com/knowledgepipe/knowledgepipe/internal/llm"
	"github.com/knowledgepipe/knowledgepipe/internal/objectstore"
	"github.com/knowledgepipe/knowledgepipe/internal/pipeline"
	"github.com/knowledgepipe/knowledgepipe/internal/repository"
	"github.com/knowledgepipe/knowledgepipe/internal/search"
	"github.com/knowledgepipe/knowledgepipe/internal/server"
	"github.com/knowledgepipe/knowledgepipe/internal/vectorstore"
	"github.com/knowledgepipe/knowledgepipe/internal/watcher"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Database
	entc, pool, err := repository.Open(ctx, repository.Config{
		DSN:              cfg.Database.DSN,
		MaxConns:         cfg.Database.MaxConns,
		MinConns:         cfg.Database.MinConns,
		MaxConnLifetime:  cfg.Database.MaxConnLifetime,
		MaxConnIdleTime:  cfg.Database.MaxConnIdleTime,
		DialTimeout:      cfg.Database.DialTimeout,
		StatementTimeout: cfg.Database.StatementTimeout,
	}, logger)
	if err != nil {
		logger.Error("database open failed", "error", err)
		os.Exit(1)
	}
	defer repository.Close(entc, pool, logger)

	if err := repository.HealthCheck(ctx, pool, cfg.Database.DialTimeout, logger); err != nil {
		logger.Error("database health check failed", "error", err)
		os.Exit(1)
	}

	// Object store
	store, err := objectstore.NewMinioStore(ctx, cfg.ObjectStore, logger)
	if err != nil {
		logger.Error("object store setup failed", "error", err)
		os.Exit(1)
	}

	// Vector index
	index, err := vectorstore.NewQdrantIndex(cfg.VectorStore, logger)
	if err != nil {
		logger.Error("vector store setup failed", "error", err)
		os.Exit(1)
	}
	defer index.Close()
	if err := index.EnsureCollection(ctx, cfg.VectorStore.Dim); err != nil {
		logger.Error("collection setup failed", "error", err)
		os.Exit(1)
	}

	// Embedder and chunker
	embedder, err := embed.NewEmbedder(cfg.Embedding, logger)
	if err != nil {
		logger.Error("embedder setup failed", "error", err)
		os.Exit(1)
	}
	splitter, err := chunker.New(cfg.Chunking.Size, cfg.Chunking.Overlap)
	if err != nil {
		logger.Error("chunker setup failed", "error", err)
		os.Exit(1)
	}

	// Repositories and pipeline
	jobs := repository.NewJobRepository(entc, logger)
	chunks := repository.NewChunkRepository(entc, logger)
	extractor := extract.NewExtractor(extract.NewExecRunner(), cfg.Pipeline.Pdftotext, logger)

	processor := &pipeline.Processor{
		Logger:   logger,
		Store:    store,
		Extract:  extractor,
		Chunker:  splitter,
		Embedder: embedder,
		Index:    index,
		Jobs:     jobs,
		Chunks:   chunks,
	}
	workers, err := pipeline.NewPool(processor, pipeline.PoolConfig{
		Workers:        cfg.Pipeline.Workers,
		ClaimInterval:  cfg.Pipeline.ClaimInterval,
		StaleAfter:     cfg.Pipeline.StaleAfter,
		ProcessTimeout: cfg.Pipeline.ProcessTimeout,
	}, logger)
	if err != nil {
		logger.Error("worker pool setup failed", "error", err)
		os.Exit(1)
	}

	poller := watcher.New(store, jobs, cfg.ObjectStore.Prefix, cfg.Pipeline.PollInterval, logger)

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		poller.Run(ctx, cfg.ObjectStore.Bucket)
	}()
	go func() {
		defer wg.Done()
		workers.Run(ctx)
	}()

	// gRPC server
	grpcServer := grpc.NewServer()
	hs := health.NewServer()
	healthpb.RegisterHealthServer(grpcServer, hs)
	hs.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	reflection.Register(grpcServer)

	svc := server.NewKnowledgeService(
		jobs,
		chunks,
		search.NewService(embedder, index, chunks, logger),
		llm.NewClient(cfg.Chat, logger),
		export.NewService(jobs, logger),
		splitter,
		cfg.Chat.MaxContextTokens,
		logger,
	)
	knowledgev1.RegisterKnowledgeServiceServer(grpcServer, svc)

	lis, err := net.Listen("tcp", cfg.Server.GRPCAddr)
	if err != nil {
		logger.Error("listen failed", "addr", cfg.Server.GRPCAddr, "error", err)
		os.Exit(1)
	}
	logger.Info("grpc serving", "addr", cfg.Server.GRPCAddr)

	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			logger.Error("grpc serve failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")
	grpcServer.GracefulStop()
	wg.Wait()
	logger.Info("stopped")
}
