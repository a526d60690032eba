// Command moneytool is a small demonstration CLI for the monetary library:
// it formats, allocates and converts amounts from the command line, with an
// optional YAML file of custom currency configs.
//
// Usage:
//
//	moneytool [-currencies file.yaml] format <amount> <code>
//	moneytool [-currencies file.yaml] allocate <amount> <code> <r1,r2,...>
//	moneytool [-currencies file.yaml] convert <amount> <code> <rate> <target-code>
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/SscSPs/monetary/pkg/currency"
	"github.com/SscSPs/monetary/pkg/money"
	"github.com/spf13/viper"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	currenciesFile := flag.String("currencies", "", "YAML file with custom currency configs to register")
	flag.Parse()

	if *currenciesFile != "" {
		if err := loadCurrencies(*currenciesFile); err != nil {
			logger.Error("Failed to load currency config", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	args := flag.Args()
	if len(args) == 0 {
		usage()
		os.Exit(2)
	}

	out, err := run(args[0], args[1:])
	if err != nil {
		logger.Error("Command failed", slog.String("command", args[0]), slog.String("error", err.Error()))
		os.Exit(1)
	}
	fmt.Println(out)
}

func run(command string, args []string) (string, error) {
	switch command {
	case "format":
		if len(args) != 2 {
			return "", fmt.Errorf("format expects <amount> <code>")
		}
		m, err := money.New(args[0], args[1])
		if err != nil {
			return "", err
		}
		return m.FormattedValueWithSymbol(), nil

	case "allocate":
		if len(args) != 3 {
			return "", fmt.Errorf("allocate expects <amount> <code> <r1,r2,...>")
		}
		m, err := money.New(args[0], args[1])
		if err != nil {
			return "", err
		}
		ratios, err := parseRatios(args[2])
		if err != nil {
			return "", err
		}
		shares, err := m.Allocate(ratios...)
		if err != nil {
			return "", err
		}
		parts := make([]string, len(shares))
		for i, s := range shares {
			parts[i] = s.FormattedValueWithSymbol()
		}
		return strings.Join(parts, " "), nil

	case "convert":
		if len(args) != 4 {
			return "", fmt.Errorf("convert expects <amount> <code> <rate> <target-code>")
		}
		m, err := money.New(args[0], args[1])
		if err != nil {
			return "", err
		}
		rate, err := money.New(args[2], args[3])
		if err != nil {
			return "", err
		}
		converted, err := m.ConvertTo(rate)
		if err != nil {
			return "", err
		}
		return converted.FormattedValueWithSymbol(), nil

	default:
		usage()
		return "", fmt.Errorf("unknown command %q", command)
	}
}

func parseRatios(s string) ([]float64, error) {
	fields := strings.Split(s, ",")
	ratios := make([]float64, len(fields))
	for i, f := range fields {
		r, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid ratio %q: %w", f, err)
		}
		ratios[i] = r
	}
	return ratios, nil
}

// loadCurrencies registers custom currency configs from a YAML file shaped
// like:
//
//	currencies:
//	  - code: DOGE
//	    name: Dogecoin
//	    symbol: Ð
//	    decimals: 8
//	    isCrypto: true
func loadCurrencies(path string) error {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	var cfgs []currency.Config
	if err := v.UnmarshalKey("currencies", &cfgs); err != nil {
		return fmt.Errorf("decoding %s: %w", path, err)
	}
	registered, err := currency.Register(cfgs...)
	if err != nil {
		return err
	}
	slog.Info("Registered custom currencies", slog.Int("count", len(registered)))
	return nil
}

func usage() {
	fmt.Fprintln(os.Stderr, `usage: moneytool [-currencies file.yaml] <command> [args]

commands:
  format   <amount> <code>
  allocate <amount> <code> <r1,r2,...>
  convert  <amount> <code> <rate> <target-code>`)
}
