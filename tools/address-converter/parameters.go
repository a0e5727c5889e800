package main

import (
	"strings"

	"github.com/cockroachdb/errors"
	flag "github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	cfgAddress    = "address"
	cfgTestOnly   = "testOnly"
	cfgBounceable = "bounceable"
	cfgURLSafe    = "urlSafe"
	cfgJSON       = "json"
	cfgDemo       = "demo"

	// envPrefix is prepended to the upper cased parameter names when read from the environment.
	envPrefix = "ADDRESS_CONVERTER"

	demoAddress = "0:2cf55953e92efbeadab7ba725c3f93a0b23f842cbba72d7b8e6f510a70e422e3"
)

// loadConfig parses the given command line arguments and binds them, together with the environment, into a viper
// instance.
func loadConfig(args []string) (*viper.Viper, error) {
	flagSet := flag.NewFlagSet("address-converter", flag.ContinueOnError)
	flagSet.String(cfgAddress, demoAddress, "the address to convert, in raw (workchain:hexhash) or friendly form")
	flagSet.Bool(cfgTestOnly, false, "mark the friendly address as valid on test networks only")
	flagSet.Bool(cfgBounceable, true, "render a bounceable friendly address")
	flagSet.Bool(cfgURLSafe, true, "use the URL-safe base64 alphabet for the friendly address")
	flagSet.Bool(cfgJSON, false, "print all renderings of the address as JSON")
	flagSet.Bool(cfgDemo, false, "print the two reference renderings of the demo address")

	if err := flagSet.Parse(args); err != nil {
		return nil, errors.Errorf("failed to parse flags: %w", err)
	}

	config := viper.New()
	config.SetEnvPrefix(envPrefix)
	config.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	config.AutomaticEnv()

	if err := config.BindPFlags(flagSet); err != nil {
		return nil, errors.Errorf("failed to bind flags: %w", err)
	}

	return config, nil
}
