package main

import (
	"context"
	"errors"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"google.golang.org/grpc"

	"go-cln-grpc-proxy/config"
	cgrpc "go-cln-grpc-proxy/grpc"
	chttp "go-cln-grpc-proxy/http"
	"go-cln-grpc-proxy/lightningd"
	"go-cln-grpc-proxy/pb"

	nhttp "net/http"
)

func main() {
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(2)
	}

	w := log.NewSyncWriter(os.Stderr)
	logger := log.NewLogfmtLogger(w)
	logger = level.NewFilter(logger, level.Allow(level.ParseDefault(cfg.LogLevel, level.InfoValue())))
	logger = log.With(logger, "ts", log.DefaultTimestampUTC, "caller", log.DefaultCaller)

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	lightningdService := lightningd.NewService(cfg.RPCFile, cfg.CallTimeout)
	lightningdService = lightningd.NewInstrumentingService(lightningd.NewMetrics(reg), lightningdService)
	lightningdService = lightningd.NewLoggingService(level.Debug(log.With(logger, "component", "lightningd_rpc")), lightningdService)
	if cfg.CacheTTL > 0 {
		lightningdService = lightningd.NewCachingService(cfg.CacheTTL, log.With(logger, "component", "lightningd_cache"), lightningdService)
	}

	lis, err := net.Listen("tcp", cfg.GRPCListen)
	if err != nil {
		level.Error(logger).Log("msg", "listen failed", "addr", cfg.GRPCListen, "err", err)
		os.Exit(1)
	}

	grpcServer := grpc.NewServer(
		grpc.ForceServerCodec(pb.Codec{}),
		grpc.UnaryInterceptor(cgrpc.RateLimitInterceptor(cfg.RateLimitRPS, cfg.RateLimitBurst)),
	)
	pb.RegisterNodeServer(grpcServer, cgrpc.NewServer(lightningdService, log.With(logger, "component", "grpc")))

	errc := make(chan error, 2)
	go func() {
		level.Info(logger).Log("msg", "grpc server listening", "addr", lis.Addr().String(), "rpc_file", cfg.RPCFile)
		errc <- grpcServer.Serve(lis)
	}()

	var httpServer *nhttp.Server
	if cfg.HTTPListen != "" {
		httpServer = &nhttp.Server{
			Addr:              cfg.HTTPListen,
			Handler:           chttp.NewServer(lightningdService, reg),
			ReadHeaderTimeout: 5 * time.Second,
		}
		go func() {
			level.Info(logger).Log("msg", "http server listening", "addr", cfg.HTTPListen)
			errc <- httpServer.ListenAndServe()
		}()
	}

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigc:
		level.Info(logger).Log("msg", "shutting down", "signal", sig)
	case err := <-errc:
		level.Error(logger).Log("msg", "server failed", "err", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if httpServer != nil {
		_ = httpServer.Shutdown(ctx)
	}
	stopped := make(chan struct{})
	go func() {
		grpcServer.GracefulStop()
		close(stopped)
	}()
	select {
	case <-stopped:
	case <-ctx.Done():
		grpcServer.Stop()
	}
}
