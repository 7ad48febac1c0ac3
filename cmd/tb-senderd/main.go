package main

import (
	"context"
	"flag"
	"fmt"
	"errors"
	"io"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"google.golang.org/grpc"

	"xdao.co/tokenbridge/config"
	"xdao.co/tokenbridge/internal/logging"
	"xdao.co/tokenbridge/rpc"
	"xdao.co/tokenbridge/sender"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	os.Exit(run(ctx, os.Args[1:], os.Stderr))
}

func loadConfig(args []string, errOut io.Writer) (config.Config, int) {
	fs := flag.NewFlagSet("tb-senderd", flag.ContinueOnError)
	fs.SetOutput(errOut)
	configPath := fs.String("config", "", "JSON config file")
	listen := fs.String("listen", "", "listen address (overrides config)")
	logLevel := fs.String("log-level", "", "log level (overrides config)")
	dev := fs.Bool("dev", false, "development (console) logging")
	metricsListen := fs.String("metrics-listen", "", "Prometheus metrics address (overrides config)")
	if err := fs.Parse(args); err != nil {
		return config.Config{}, 2
	}

	var cfg config.Config
	if *configPath != "" {
		var err error
		cfg, err = config.LoadFile(*configPath)
		if err != nil {
			fmt.Fprintln(errOut, err)
			return cfg, 2
		}
	}
	if *listen != "" {
		cfg.Listen = *listen
	}
	if *logLevel != "" {
		cfg.Log.Level = *logLevel
	}
	if *dev {
		cfg.Log.Development = true
	}
	if *metricsListen != "" {
		cfg.MetricsListen = *metricsListen
	}
	cfg = cfg.WithDefaults()
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(errOut, err)
		return cfg, 2
	}
	return cfg, 0
}

func run(ctx context.Context, args []string, errOut io.Writer) int {
	cfg, code := loadConfig(args, errOut)
	if code != 0 {
		return code
	}
	level, _ := cfg.Log.ZapLevel()
	log, err := logging.New(level, cfg.Log.Development)
	if err != nil {
		fmt.Fprintln(errOut, err)
		return 1
	}
	defer func() { _ = log.Sync() }()

	lis, err := net.Listen("tcp", cfg.Listen)
	if err != nil {
		log.Error("listen failed", zap.String("listen", cfg.Listen), zap.Error(err))
		return 1
	}
	defer lis.Close()

	reg := prometheus.NewRegistry()
	metrics := rpc.NewMetrics(reg)
	if cfg.MetricsListen != "" {
		mlis, err := net.Listen("tcp", cfg.MetricsListen)
		if err != nil {
			log.Error("metrics listen failed", zap.String("metrics_listen", cfg.MetricsListen), zap.Error(err))
			return 1
		}
		ms := serveMetrics(ctx, mlis, reg, log)
		defer ms.Close()
	}

	opts := []grpc.ServerOption{grpc.ChainUnaryInterceptor(
		rpc.LoggingInterceptor(log),
		rpc.MetricsInterceptor(metrics),
	)}
	if cfg.MaxMsgBytes > 0 {
		opts = append(opts, grpc.MaxRecvMsgSize(cfg.MaxMsgBytes), grpc.MaxSendMsgSize(cfg.MaxMsgBytes))
	}
	s := grpc.NewServer(opts...)
	rpc.RegisterSenderResolverServer(s, &rpc.Server{Resolver: &sender.Resolver{}})

	go func() {
		<-ctx.Done()
		s.GracefulStop()
	}()

	log.Info("tb-senderd listening",
		zap.String("addr", lis.Addr().String()),
		zap.Uint16("chain_id", uint16(cfg.ChainID)),
	)
	if err := s.Serve(lis); err != nil {
		log.Error("serve failed", zap.Error(err))
		return 1
	}
	log.Info("tb-senderd stopped")
	return 0
}

// serveMetrics exposes reg at /metrics on lis until ctx is done.
func serveMetrics(ctx context.Context, lis net.Listener, reg *prometheus.Registry, log *zap.Logger) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	srv := &http.Server{Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		<-ctx.Done()
		_ = srv.Close()
	}()
	go func() {
		if err := srv.Serve(lis); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("metrics serve failed", zap.Error(err))
		}
	}()
	log.Info("metrics listening", zap.String("addr", lis.Addr().String()))
	return srv
}
