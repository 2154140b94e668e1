package config

import (
	"errors"
	"flag"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses the process command line.
//
// Flags:
//
//	-a local API address in format [host]:[port]
//	-remote favorites service base URL
//	-remote-timeout favorites service request timeout (e.g. "15s")
//	-d SQLite DSN
//	-token initial session credential
//	-request-timeout local API credential wait bound (e.g. "30s")
//	-refresh-interval periodic refresh interval (e.g. "5m")
//	-keep-on-refresh-error keep last known favorites when a refresh fails
//	-log-level zerolog level
//	-log-file log file path
//	-c/-config json file path with configs
func ParseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("favsync", flag.ContinueOnError)

	var serverAddress NetAddress
	var remoteAddress string
	var remoteTimeout time.Duration
	var databaseDSN string
	var token string
	var requestTimeout time.Duration
	var refreshInterval time.Duration
	var keepOnRefreshError bool
	var logLevel string
	var logFile string
	var jsonConfigPath string

	fs.Var(&serverAddress, "a", "Local API address host:port")
	fs.StringVar(&remoteAddress, "remote", "", "Favorites service base URL")
	fs.DurationVar(&remoteTimeout, "remote-timeout", 0, "Favorites service request timeout (e.g., 15s)")
	fs.StringVar(&databaseDSN, "d", "", "SQLite DSN")
	fs.StringVar(&token, "token", "", "Initial session credential")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Credential wait bound for local API mutations (e.g., 30s)")
	fs.DurationVar(&refreshInterval, "refresh-interval", 0, "Periodic refresh interval (e.g., 5m)")
	fs.BoolVar(&keepOnRefreshError, "keep-on-refresh-error", false, "Keep last known favorites when a refresh fails")
	fs.StringVar(&logLevel, "log-level", "", "Log level")
	fs.StringVar(&logFile, "log-file", "", "Log file path")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return &StructuredConfig{
		App: App{
			LogLevel: logLevel,
			LogFile:  logFile,
		},
		Adapter: Adapter{
			HTTPAddress:    remoteAddress,
			RequestTimeout: remoteTimeout,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Session: Session{
			Token: token,
		},
		Workers: Workers{
			RefreshInterval:    refreshInterval,
			KeepOnRefreshError: keepOnRefreshError,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1..65535")
	}

	if host != "localhost" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
