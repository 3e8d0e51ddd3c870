package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/jessevdk/go-flags"
	"gopkg.in/yaml.v3"
)

const (
	defaultRPCFile     = "lightning-rpc"
	defaultGRPCListen  = "127.0.0.1:9736"
	defaultHTTPListen  = "127.0.0.1:9737"
	defaultConfigFile  = "cln-grpc-proxy.yaml"
	defaultCallTimeout = 30 * time.Second
	defaultCacheTTL    = 5 * time.Second
)

var logLevels = map[string]bool{"debug": true, "info": true, "warn": true, "error": true}

// Config defines the configuration options of the gateway.
//
// Every option can be set in the YAML file, on the command line, or through
// the environment; see Load for precedence.
type Config struct {
	ConfigFile     string        `short:"C" long:"config" env:"CLN_GRPC_CONFIG" description:"Path to YAML configuration file" yaml:"-"`
	RPCFile        string        `long:"rpc-file" env:"CLN_GRPC_RPC_FILE" description:"Path of the lightningd JSON-RPC socket" yaml:"rpcFile"`
	GRPCListen     string        `long:"grpc-listen" env:"CLN_GRPC_LISTEN" description:"Address the gRPC server listens on" yaml:"grpcListen"`
	HTTPListen     string        `long:"http-listen" env:"CLN_GRPC_HTTP_LISTEN" description:"Address for /metrics and /healthz, empty disables" yaml:"httpListen"`
	LogLevel       string        `short:"l" long:"log-level" env:"CLN_GRPC_LOG_LEVEL" description:"Logging level [debug, info, warn, error]" yaml:"logLevel"`
	CallTimeout    time.Duration `long:"call-timeout" env:"CLN_GRPC_CALL_TIMEOUT" description:"Timeout of a single lightningd call" yaml:"callTimeout"`
	CacheTTL       time.Duration `long:"cache-ttl" env:"CLN_GRPC_CACHE_TTL" description:"How long getinfo results are cached, 0 disables" yaml:"cacheTTL"`
	RateLimitRPS   float64       `long:"rate-limit-rps" env:"CLN_GRPC_RATE_LIMIT_RPS" description:"Requests per second allowed per peer, 0 disables" yaml:"rateLimitRPS"`
	RateLimitBurst int           `long:"rate-limit-burst" env:"CLN_GRPC_RATE_LIMIT_BURST" description:"Burst size of the per peer rate limit" yaml:"rateLimitBurst"`
}

// Default returns a config with sane settings for a node running in the working directory.
func Default() Config {
	return Config{
		ConfigFile:     defaultConfigFile,
		RPCFile:        defaultRPCFile,
		GRPCListen:     defaultGRPCListen,
		HTTPListen:     defaultHTTPListen,
		LogLevel:       "info",
		CallTimeout:    defaultCallTimeout,
		CacheTTL:       defaultCacheTTL,
		RateLimitRPS:   0,
		RateLimitBurst: 20,
	}
}

// Load initializes and parses the config using a config file and command
// line options.
//
// The configuration proceeds as follows:
//  1. Start with a default config
//  2. Pre-parse the command line to check for an alternative config file
//  3. Load the YAML file overwriting defaults with any specified options
//  4. Parse the command line and environment again, overwriting file values
//
// A missing default config file is not an error. A missing file named on the
// command line or in the environment is, as is a malformed one.
func Load(args []string) (*Config, error) {
	cfg := Default()

	preCfg := cfg
	if _, err := flags.NewParser(&preCfg, flags.IgnoreUnknown).ParseArgs(args); err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			return nil, err
		}
	}

	if err := loadFile(preCfg.ConfigFile, preCfg.ConfigFile != defaultConfigFile, &cfg); err != nil {
		return nil, err
	}
	cfg.ConfigFile = preCfg.ConfigFile

	if _, err := flags.NewParser(&cfg, flags.Default).ParseArgs(args); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func loadFile(path string, required bool, cfg *Config) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) && !required {
		return nil
	}
	if err != nil {
		return fmt.Errorf("reading config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parsing config file [%v]: %w", path, err)
	}
	return nil
}

// Validate reports the first invalid option.
func (c *Config) Validate() error {
	switch {
	case c.RPCFile == "":
		return errors.New("rpc-file must be set")
	case c.GRPCListen == "":
		return errors.New("grpc-listen must be set")
	case !logLevels[c.LogLevel]:
		return fmt.Errorf("unknown log level %q", c.LogLevel)
	case c.CallTimeout < 0:
		return errors.New("call-timeout must not be negative")
	case c.CacheTTL < 0:
		return errors.New("cache-ttl must not be negative")
	case c.RateLimitRPS < 0:
		return errors.New("rate-limit-rps must not be negative")
	case c.RateLimitBurst < 0:
		return errors.New("rate-limit-burst must not be negative")
	}
	return nil
}
