package config

import (
	"errors"
	"flag"
	"net"
	"os"
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

// ParseFlags parses all configuration flags from os.Args using the default
// flag set.
//
// Flags:
//
//	-t telegram bot token
//	-cipher-secret credential cipher secret
//	-d database DSN (sqlite path or postgres url)
//	-u provider API base url
//	-request-timeout provider request timeout (e.g., "20s", "1m")
//	-auth-mode provider auth mode (header|param)
//	-operations provider operations JSON file
//	-queue-size pending updates allowed per user
//	-log-level log level
//	-a ops http address in format [host]:[port]
//	-c/-config json file path with configs
func ParseFlags() *StructuredConfig {
	return parseFlagSet(flag.CommandLine, os.Args[1:])
}

func parseFlagSet(fs *flag.FlagSet, args []string) *StructuredConfig {
	var opsAddress NetAddress
	var botToken string
	var cipherSecret string
	var databaseDSN string
	var baseURL string
	var requestTimeout time.Duration
	var authMode string
	var operationsFile string
	var queueSize int
	var logLevel string
	var jsonConfigPath string

	fs.StringVar(&botToken, "t", "", "Telegram bot token")
	fs.StringVar(&cipherSecret, "cipher-secret", "", "Credential cipher secret")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&baseURL, "u", "", "Provider API base url")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Provider request timeout (e.g., 20s, 1m)")
	fs.StringVar(&authMode, "auth-mode", "", "Provider auth mode (header|param)")
	fs.StringVar(&operationsFile, "operations", "", "Provider operations file (JSON or YAML)")
	fs.IntVar(&queueSize, "queue-size", 0, "Pending updates allowed per user")
	fs.StringVar(&logLevel, "log-level", "", "Log level")
	fs.Var(&opsAddress, "a", "Ops http address host:port")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if !fs.Parsed() {
		_ = fs.Parse(args)
	}

	return &StructuredConfig{
		Bot: Bot{
			Token:     botToken,
			QueueSize: queueSize,
		},
		App: App{
			CipherSecret: cipherSecret,
			LogLevel:     logLevel,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Provider: Provider{
			BaseURL:        baseURL,
			RequestTimeout: requestTimeout,
			AuthMode:       authMode,
			OperationsFile: operationsFile,
		},
		Server: Server{
			HTTPAddress: opsAddress.String(),
		},
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
// An empty host listens on all interfaces. It validates the port range,
// checks IP correctness unless host is "localhost", and returns an error if
// the format or values are invalid.
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
		return errors.New("port number must be in range 1-65535")
	}

	if host != "" && host != "localhost" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
