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

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-p server port (overridden by -a when both are given)
//	-d database DSN
//	-c/-config json file path with configs
//	-secret-key token signing secret
//	-token-issuer token issuer name
//	-token-duration token duration (e.g., "24h", "30m")
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-allowed-hosts comma-separated host allowlist
//	-debug enable debug mode
//	-seed seed demo data after migrations
func ParseFlags() *StructuredConfig {
	var serverAddress NetAddress
	var serverPort string
	var databaseDSN string
	var jsonConfigPath string
	var secretKey string
	var tokenIssuer string
	var tokenDuration time.Duration
	var requestTimeout time.Duration
	var allowedHosts string
	var debug bool
	var seedDemoData bool

	flag.Var(&serverAddress, "a", "Net address host:port")
	flag.StringVar(&serverPort, "p", "", "Server port")
	flag.StringVar(&databaseDSN, "d", "", "Database DSN")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.StringVar(&secretKey, "secret-key", "", "Token signing secret")
	flag.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	flag.DurationVar(&tokenDuration, "token-duration", 0, "Token duration (e.g., 24h, 30m)")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.StringVar(&allowedHosts, "allowed-hosts", "", "Comma-separated host allowlist")
	flag.BoolVar(&debug, "debug", false, "Enable debug mode")
	flag.BoolVar(&seedDemoData, "seed", false, "Seed demo data after migrations")

	flag.Parse()

	var hosts []string
	if allowedHosts != "" {
		for _, h := range strings.Split(allowedHosts, ",") {
			if h = strings.TrimSpace(h); h != "" {
				hosts = append(hosts, h)
			}
		}
	}

	return &StructuredConfig{
		App: App{
			Debug:         debug,
			AllowedHosts:  hosts,
			SecretKey:     secretKey,
			TokenIssuer:   tokenIssuer,
			TokenDuration: tokenDuration,
			SeedDemoData:  seedDemoData,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Server: Server{
			Port:           serverPort,
			Address:        serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Workers:      Workers{},
		Kitchen:      Kitchen{},
		JSONFilePath: jsonConfigPath,
	}
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

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "localhost" && host != "" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
