package main

import (
	"bufio"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/mail"
	"os"
	"strings"
	"time"

	"github.com/opsdesk/bec-engine/internal/config"
	"github.com/opsdesk/bec-engine/internal/core"
	"github.com/opsdesk/bec-engine/internal/di"
	"github.com/opsdesk/bec-engine/internal/logging"
	"github.com/opsdesk/bec-engine/internal/utils"
	"go.uber.org/zap"
)

var (
	// Input flags
	inputFile = flag.String("file", "", "Input file (use stdin if not specified)")
	format    = flag.String("format", "eml", "Input format: eml (RFC 5322 message) or json (submission object)")
	legit     = flag.String("legit", "", "Comma-separated list of legitimate reference domains")

	// Directory flags
	directoryType = flag.String("directory-type", "memory", "Known-contacts directory backend (memory, sqlite, mysql)")
	sqlitePath    = flag.String("sqlite-path", "/data/contacts.db", "Path to the SQLite contacts database")
	mysqlDSN      = flag.String("mysql-dsn", "", "DSN for the MySQL contacts database")
	contacts      = flag.String("contacts", "", "Comma-separated Name=domain pairs for the memory directory")

	// Engine flags
	dnsTimeout = flag.String("dns-timeout", "5s", "Timeout for each DNS TXT lookup")

	// Output flags
	verbose    = flag.Bool("verbose", false, "Enable verbose logging")
	jsonLog    = flag.Bool("json-log", false, "Output logs in JSON format")
	pretty     = flag.Bool("pretty", false, "Indent the JSON report")
	configFile = flag.String("config", "", "Path to config file (overrides command line flags)")
)

func main() {
	flag.Parse()

	// Initialize logger
	logger, err := logging.InitConsoleLogger(*verbose, *jsonLog)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	// Load configuration from file if specified
	var cfg *config.Config
	if *configFile != "" {
		cfg, err = config.New()
		if err != nil {
			logger.Fatal("Failed to load configuration", zap.Error(err))
		}
		logger.Info("Loaded configuration from file", zap.String("file", cfg.GetViper().ConfigFileUsed()))
	} else {
		cfg = createConfigFromFlags()
	}

	// Build the dependency injection container
	container, err := di.BuildContainerWithConfig(cfg, logger)
	if err != nil {
		logger.Fatal("Failed to build dependency container", zap.Error(err))
	}

	// Read the submission
	var input io.Reader
	if *inputFile != "" {
		file, err := os.Open(*inputFile)
		if err != nil {
			logger.Fatal("Failed to open input file", zap.Error(err), zap.String("file", *inputFile))
		}
		defer file.Close()
		input = file
		logger.Info("Reading email from file", zap.String("file", *inputFile))
	} else {
		input = os.Stdin
		logger.Info("Reading email from stdin")
	}

	submission, err := readSubmission(input, *format, logger)
	if err != nil {
		logger.Fatal("Failed to read submission", zap.Error(err))
	}

	// Reference domains from the command line take precedence
	if *legit != "" {
		submission.LegitimateDomains = splitTrimmed(*legit)
	}

	// Run the analysis
	if err := container.Invoke(func(service *core.AnalysisService) error {
		return analyzeAndPrint(service, submission, logger)
	}); err != nil {
		logger.Fatal("Analysis failed", zap.Error(err))
	}
}

// analyzeAndPrint runs the engine on a submission and prints the report
func analyzeAndPrint(service *core.AnalysisService, submission core.EmailSubmission, logger *zap.Logger) error {
	tp := utils.NewTextProcessor(logger)

	// Print submission summary
	fmt.Printf("\n=== Email Summary ===\n")
	fmt.Printf("From: %s <%s>\n", submission.DisplayName, submission.SenderEmail)
	fmt.Printf("Subject: %s\n", submission.Subject)
	fmt.Printf("Body length: %d bytes\n", len(submission.Content))
	if len(submission.LegitimateDomains) > 0 {
		fmt.Printf("Reference domains: %s\n", strings.Join(submission.LegitimateDomains, ", "))
	}
	if *verbose {
		fmt.Printf("\nBody preview:\n%s\n", tp.Preview(submission.Content, 500))
	}
	fmt.Printf("\n")

	startTime := time.Now()
	report := service.Analyze(context.Background(), submission)
	duration := time.Since(startTime)

	// Print results
	fmt.Printf("=== Results ===\n")
	fmt.Printf("Status: %s\n", report.Status)
	fmt.Printf("Risk score: %d\n", report.RiskScore)
	fmt.Printf("Verdict: %s\n", report.Verdict)
	fmt.Printf("IOCs: %d, recommended actions: %d\n", len(report.IOCs), len(report.RecommendedActions))
	fmt.Printf("Processing time: %v\n", duration)

	var (
		encoded []byte
		err     error
	)
	if *pretty {
		encoded, err = json.MarshalIndent(report, "", "  ")
	} else {
		encoded, err = json.Marshal(report)
	}
	if err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}

	fmt.Printf("\n%s\n", encoded)
	return nil
}

// readSubmission builds an EmailSubmission from an RFC 5322 message or a
// JSON submission object
func readSubmission(input io.Reader, format string, logger *zap.Logger) (core.EmailSubmission, error) {
	tp := utils.NewTextProcessor(logger)

	switch format {
	case "json":
		var submission core.EmailSubmission
		if err := json.NewDecoder(input).Decode(&submission); err != nil {
			return core.EmailSubmission{}, fmt.Errorf("failed to decode submission: %w", err)
		}
		submission.Content = tp.SanitizeUTF8(submission.Content)
		return submission, nil

	case "eml":
		msg, err := mail.ReadMessage(bufio.NewReader(input))
		if err != nil {
			return core.EmailSubmission{}, fmt.Errorf("failed to parse email: %w", err)
		}

		bodyBytes, err := io.ReadAll(msg.Body)
		if err != nil {
			return core.EmailSubmission{}, fmt.Errorf("failed to read email body: %w", err)
		}

		submission := core.EmailSubmission{
			Subject: msg.Header.Get("Subject"),
			Content: tp.SanitizeUTF8(string(bodyBytes)),
		}

		// Keep the raw From header if it does not parse; the engine
		// fails safe on malformed addresses
		from := msg.Header.Get("From")
		if addr, err := mail.ParseAddress(from); err == nil {
			submission.SenderEmail = addr.Address
			submission.DisplayName = addr.Name
		} else {
			submission.SenderEmail = from
		}

		return submission, nil

	default:
		return core.EmailSubmission{}, fmt.Errorf("unsupported input format: %s", format)
	}
}

// createConfigFromFlags creates a configuration from command line flags
func createConfigFromFlags() *config.Config {
	v := config.NewEmptyViper()

	v.Set("directory.type", *directoryType)
	switch *directoryType {
	case "memory":
		entries := map[string]string{}
		for _, pair := range splitTrimmed(*contacts) {
			if name, domain, ok := strings.Cut(pair, "="); ok {
				entries[name] = domain
			}
		}
		v.Set("directory.contacts", entries)
	case "sqlite":
		v.Set("directory.sqlite_path", *sqlitePath)
	case "mysql":
		v.Set("directory.mysql_dsn", *mysqlDSN)
	}

	v.Set("dns.timeout", *dnsTimeout)

	return config.NewFromViper(v)
}

// splitTrimmed splits a comma-separated flag value into trimmed parts
func splitTrimmed(value string) []string {
	if value == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	for i, part := range parts {
		parts[i] = strings.TrimSpace(part)
	}
	return parts
}
