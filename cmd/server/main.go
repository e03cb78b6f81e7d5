package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
	"google.golang.org/grpc"
	"liyu1981.xyz/rf-code-hub/pkg/common"
	"liyu1981.xyz/rf-code-hub/pkg/db"
	rfGrpc "liyu1981.xyz/rf-code-hub/pkg/grpc"
	rfHttp "liyu1981.xyz/rf-code-hub/pkg/http"
	"liyu1981.xyz/rf-code-hub/pkg/live"
	"liyu1981.xyz/rf-code-hub/pkg/rf"
	"liyu1981.xyz/rf-code-hub/pkg/transport/mqtt"
	"liyu1981.xyz/rf-code-hub/pkg/transport/serial"
	"liyu1981.xyz/rf-code-hub/pkg/webhook"
)

const shutdownTimeout = 5 * time.Second

func selectTransport(kind string) (rf.Transport, error) {
	switch kind {
	case "serial":
		return serial.New(serial.ConfigFromEnv()), nil
	case "mqtt":
		return mqtt.New(mqtt.ConfigFromEnv()), nil
	case "", "none":
		return nil, nil
	default:
		return nil, fmt.Errorf("unknown RF_TRANSPORT: %s", kind)
	}
}

func main() {
	if err := godotenv.Load(); err != nil && !common.IsProduction() {
		log.Fatal("Error loading .env file, copy .env.example to .env first if in development")
	}

	var dbInstance *db.DB
	rfDbType := os.Getenv(common.EnvKeyRFDBType)
	switch rfDbType {
	case "file":
		dbInstance = db.GetInstance(db.UseSqliteDialector())
	case "memory":
		dbInstance = db.GetInstance(db.UseMemorySqliteDialector())
	default:
		log.Fatal("Unknown RF_DB_TYPE: " + rfDbType)
	}

	logger := common.GetLogger()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	hub := live.NewHub()
	go hub.Run(ctx)

	dispatcher := webhook.NewDispatcher(*dbInstance, common.GetEnvDuration(common.EnvKeyRFWebhookTimeout, 10*time.Second))
	fanout := rf.NewFanout(dispatcher, hub)

	if redisAddr := strings.TrimSpace(os.Getenv(common.EnvKeyRFRedisAddr)); redisAddr != "" {
		mirror := live.NewRedisMirror(live.NewRedisClient(redisAddr), common.GetEnvOr(common.EnvKeyRFRedisChannel, "rfhub:events"))
		if err := mirror.Ping(ctx); err != nil {
			logger.Warn("Redis mirror unreachable at startup", zap.String("addr", redisAddr), zap.Error(err))
		}
		fanout.AddSink(mirror)
		defer mirror.Close()
	}

	rfCore := rf.RF{
		Db:        *dbInstance,
		AssetsDir: common.GetEnvOr(common.EnvKeyRFAssetsDir, "assets"),
	}
	if repeatRate := common.GetEnvFloat(common.EnvKeyRFRepeatRate, 0); repeatRate > 0 {
		rfCore.Repeats = rf.NewRateLimiterStore(rate.Limit(repeatRate), common.GetEnvInt(common.EnvKeyRFRepeatBurst, 1))
	}
	rfCore.WithServices(rf.ServiceOpts{Notifier: fanout}).WithDefaultServices()

	if _, err := rfCore.Cards.SeedDefaults(ctx); err != nil {
		logger.Error("Failed to seed default cards", zap.Error(err))
	}

	radio, err := selectTransport(strings.TrimSpace(os.Getenv(common.EnvKeyRFTransport)))
	if err != nil {
		log.Fatal(err)
	}
	var sender rfHttp.Sender
	if radio != nil {
		if err := radio.Open(ctx); err != nil {
			log.Fatalf("failed to open transport: %v", err)
		}
		sender = radio
		go func() {
			if err := rfCore.Run(ctx, radio); err != nil && !errors.Is(err, context.Canceled) {
				logger.Error("Ingestor stopped", zap.Error(err))
			}
			logger.Info("Transport event stream ended")
		}()
	} else {
		logger.Warn("No RF transport configured, codes only arrive through gRPC IngestCode")
	}

	var grpcServer *grpc.Server
	if grpcHostPort := strings.TrimSpace(os.Getenv(common.EnvKeyRFGrpcHostPort)); grpcHostPort != "" {
		grpcRate := common.GetEnvFloat(common.EnvKeyRFGrpcRate, 50)
		grpcBurst := common.GetEnvInt(common.EnvKeyRFGrpcBurst, 100)

		rfGrpcServer := rfGrpc.RFServer{
			RF:               &rfCore,
			RateLimiterStore: rf.NewRateLimiterStore(rate.Limit(grpcRate), grpcBurst),
		}
		interceptor := rfGrpcServer.CreateRateLimitInterceptor([]string{
			rfGrpc.MethodIngestCode,
			rfGrpc.MethodSetArmed,
		})
		grpcServer = grpc.NewServer(grpc.UnaryInterceptor(interceptor))
		rfGrpc.RegisterRFHubServer(grpcServer, &rfGrpcServer)
		logger.Info("gRPC server created with:",
			zap.String("default_limiter",
				fmt.Sprintf("{\"default_rate\": %v, \"default_burst\": %v}", grpcRate, grpcBurst)))

		listener, err := net.Listen("tcp", grpcHostPort)
		if err != nil {
			log.Fatalf("failed to listen: %v", err)
		}
		go func() {
			logger.Info("Starting gRPC server on: " + grpcHostPort)
			if err := grpcServer.Serve(listener); err != nil {
				logger.Error("grpc server failed to serve", zap.Error(err))
			}
		}()
	}

	httpHostPort := strings.TrimSpace(os.Getenv(common.EnvKeyRFHttpHostPort))
	if httpHostPort == "" {
		// fallback to default http port
		httpHostPort = ":1080"
	}

	rs := &rfHttp.RestfulServer{
		Server:           gin.Default(),
		RF:               &rfCore,
		Transport:        sender,
		Webhooks:         dispatcher,
		Live:             hub,
		RateLimiterStore: rf.NewRateLimiterStore(rate.Limit(2), 4),
	}
	rs.Setup()

	httpServer := &http.Server{Addr: httpHostPort, Handler: rs.Server}
	go func() {
		logger.Info("Starting HTTP server on: " + httpHostPort)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("http server failed to serve: %v", err)
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down")

	// the radio goes first so no new events start; in flight work is not awaited
	if radio != nil {
		if err := radio.Close(); err != nil {
			logger.Warn("Failed to close transport", zap.Error(err))
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Warn("HTTP shutdown incomplete", zap.Error(err))
	}
	if grpcServer != nil {
		grpcServer.GracefulStop()
	}
	// flush queued live events before the redis mirror closes
	fanout.Close()
	_ = logger.Sync()
}
