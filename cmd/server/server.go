package main

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
	"google.golang.org/grpc/status"

	grpc_logging "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
	grpc_recovery "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"

	apiv1alpha1 "github.com/KirkDiggler/grimoire-api/internal/api/spellbook/v1alpha1"
	"github.com/KirkDiggler/grimoire-api/internal/config"
	"github.com/KirkDiggler/grimoire-api/internal/handlers/rest"
	"github.com/KirkDiggler/grimoire-api/internal/handlers/spellbook/v1alpha1"
	"github.com/KirkDiggler/grimoire-api/internal/orchestrators/spellbook"
)

var (
	grpcPort int
	httpPort int
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the gRPC and HTTP servers",
	Long: `Start the grimoire gRPC server and the HTTP keepalive/REST server.
The dataset is loaded at startup and reloaded on SIGHUP.`,
	RunE: runServer,
}

func init() {
	serverCmd.Flags().IntVar(&grpcPort, "grpc-port", 50051, "gRPC server port")
	serverCmd.Flags().IntVar(&httpPort, "http-port", 8080, "HTTP server port")
}

// applyServerFlags copies explicitly set port flags over the loaded config
func applyServerFlags(cmd *cobra.Command, c *config.Config) {
	flags := cmd.Flags()
	if f := flags.Lookup("grpc-port"); f != nil && f.Changed {
		c.Server.GRPCPort = grpcPort
	}
	if f := flags.Lookup("http-port"); f != nil && f.Changed {
		c.Server.HTTPPort = httpPort
	}
}

func runServer(_ *cobra.Command, _ []string) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	svc, cleanup, err := newSpellbook()
	if err != nil {
		return err
	}
	defer cleanup()

	// A failed startup load leaves the server up with an empty spellbook
	if out, err := svc.Reload(ctx, &spellbook.ReloadInput{}); err != nil {
		log.Error().Err(err).Msg("Initial dataset load failed, serving an empty spellbook")
	} else {
		log.Info().Int("spells", out.Count).Str("source", out.Source).Msg("Spellbook loaded")
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM, syscall.SIGHUP)
	defer signal.Stop(sigChan)

	go func() {
		for sig := range sigChan {
			if sig == syscall.SIGHUP {
				reloadOnSignal(ctx, svc)
				continue
			}
			log.Info().Str("signal", sig.String()).Msg("Received shutdown signal, gracefully stopping...")
			cancel()
			return
		}
	}()

	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", cfg.Server.GRPCPort))
	if err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}

	srv, err := newGRPCServer(svc)
	if err != nil {
		return err
	}

	httpSrv, err := newHTTPServer(svc)
	if err != nil {
		return err
	}

	errChan := make(chan error, 2)
	go func() {
		log.Info().Int("port", cfg.Server.GRPCPort).Msg("gRPC server starting")
		if err := srv.Serve(lis); err != nil {
			errChan <- fmt.Errorf("failed to serve grpc: %w", err)
		}
	}()
	go func() {
		log.Info().Int("port", cfg.Server.HTTPPort).Msg("HTTP server starting")
		if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("failed to serve http: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		log.Info().Msg("Shutting down servers...")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer shutdownCancel()

		if err := httpSrv.Shutdown(shutdownCtx); err != nil {
			log.Warn().Err(err).Msg("HTTP shutdown did not complete")
		}

		stopped := make(chan struct{})
		go func() {
			srv.GracefulStop()
			close(stopped)
		}()

		select {
		case <-shutdownCtx.Done():
			log.Warn().Msg("Graceful shutdown timeout exceeded, forcing stop")
			srv.Stop()
		case <-stopped:
			log.Info().Msg("Server stopped gracefully")
		}

		return nil
	case err := <-errChan:
		srv.Stop()
		_ = httpSrv.Close()
		return err
	}
}

func reloadOnSignal(ctx context.Context, svc spellbook.Service) {
	out, err := svc.Reload(ctx, &spellbook.ReloadInput{})
	if err != nil {
		log.Error().Err(err).Msg("Reload on SIGHUP failed, keeping previous spellbook")
		return
	}
	log.Info().Int("spells", out.Count).Str("version", out.Version).Msg("Spellbook reloaded on SIGHUP")
}

func newGRPCServer(svc spellbook.Service) (*grpc.Server, error) {
	logger := interceptorLogger(log.Logger)
	recoveryOpt := grpc_recovery.WithRecoveryHandler(func(p any) error {
		log.Error().Interface("panic", p).Msg("Recovered from panic in gRPC handler")
		return status.Error(codes.Internal, "internal error")
	})

	srv := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			grpc_logging.UnaryServerInterceptor(logger),
			grpc_recovery.UnaryServerInterceptor(recoveryOpt),
		),
		grpc.ChainStreamInterceptor(
			grpc_logging.StreamServerInterceptor(logger),
			grpc_recovery.StreamServerInterceptor(recoveryOpt),
		),
	)

	handler, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{
		SpellbookService: svc,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create spellbook handler: %w", err)
	}
	apiv1alpha1.RegisterSpellbookServiceServer(srv, handler)

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(srv, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus(apiv1alpha1.ServiceName, grpc_health_v1.HealthCheckResponse_SERVING)

	reflection.Register(srv)
	return srv, nil
}

func newHTTPServer(svc spellbook.Service) (*http.Server, error) {
	if zerolog.GlobalLevel() > zerolog.DebugLevel {
		gin.SetMode(gin.ReleaseMode)
	}

	handler, err := rest.NewHandler(&rest.HandlerConfig{SpellbookService: svc})
	if err != nil {
		return nil, fmt.Errorf("failed to create http handler: %w", err)
	}

	return &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.HTTPPort),
		Handler:           rest.NewRouter(handler),
		ReadHeaderTimeout: 5 * time.Second,
	}, nil
}

// interceptorLogger adapts zerolog to the grpc middleware logger
func interceptorLogger(l zerolog.Logger) grpc_logging.Logger {
	return grpc_logging.LoggerFunc(func(_ context.Context, lvl grpc_logging.Level, msg string, fields ...any) {
		l := l.With().Fields(fields).Logger()

		switch lvl {
		case grpc_logging.LevelDebug:
			l.Debug().Msg(msg)
		case grpc_logging.LevelInfo:
			l.Info().Msg(msg)
		case grpc_logging.LevelWarn:
			l.Warn().Msg(msg)
		case grpc_logging.LevelError:
			l.Error().Msg(msg)
		default:
			l.Info().Msg(msg)
		}
	})
}
