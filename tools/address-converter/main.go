package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/iotaledger/hive.go/logger"
	"github.com/spf13/viper"

	"github.com/tonkit/tonaddr/packages/address"
	"github.com/tonkit/tonaddr/packages/jsonmodels"
)

var log = logger.NewExampleLogger("AddressConverter")

func main() {
	config, err := loadConfig(os.Args[1:])
	if err != nil {
		log.Fatalf("could not load config: %s", err)
	}

	lines, err := run(config)
	if err != nil {
		log.Fatalf("could not convert address: %s", err)
	}

	for _, line := range lines {
		fmt.Println(line)
	}
}

// run converts the configured address and returns the lines to print.
func run(config *viper.Viper) ([]string, error) {
	if config.GetBool(cfgDemo) {
		return demo()
	}

	source := config.GetString(cfgAddress)
	addr, err := address.Parse(source)
	if err != nil {
		return nil, err
	}
	log.Debugw("parsed address", "source", source, "workchain", addr.Workchain())

	if config.GetBool(cfgJSON) {
		model, err := jsonmodels.NewAddress(addr, config.GetBool(cfgTestOnly))
		if err != nil {
			return nil, err
		}

		jsonBytes, err := json.MarshalIndent(model, "", "  ")
		if err != nil {
			return nil, errors.Errorf("failed to marshal JSON model: %w", err)
		}

		return []string{string(jsonBytes)}, nil
	}

	friendly, err := addr.FriendlyString(
		address.WithTestOnly(config.GetBool(cfgTestOnly)),
		address.WithBounceable(config.GetBool(cfgBounceable)),
		address.WithURLSafe(config.GetBool(cfgURLSafe)),
	)
	if err != nil {
		return nil, err
	}

	return []string{addr.RawString(), friendly}, nil
}

// demo renders the demo address as a test-only friendly address and as a bounceable friendly address in the standard
// base64 alphabet.
func demo() ([]string, error) {
	addr, err := address.ParseRaw(demoAddress)
	if err != nil {
		return nil, err
	}

	testOnly, err := addr.FriendlyString(address.WithTestOnly(true))
	if err != nil {
		return nil, err
	}

	standard, err := addr.FriendlyString(address.WithTestOnly(false), address.WithBounceable(true), address.WithURLSafe(false))
	if err != nil {
		return nil, err
	}

	return []string{testOnly, standard}, nil
}
