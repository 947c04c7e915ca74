package main

import (
	"fmt"
	"os"

	"github.com/npillmayer/ragged/nest"
	"github.com/pelletier/go-toml/v2"
	"github.com/thatisuday/commando"
)

// config is read from a TOML file:
//
//	trace     = "Error"
//	policy    = "repeat"
//	max_depth = 100
//	defaults  = "node-defaults.yaml"
//
// Command line flags take precedence.
type config struct {
	Trace    string `toml:"trace"`
	Policy   string `toml:"policy"`
	MaxDepth int    `toml:"max_depth"`
	Defaults string `toml:"defaults"`
}

func loadConfig(path string) (config, error) {
	conf := config{Trace: "Error"}
	if path == "" {
		return conf, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return conf, err
	}
	if err := toml.Unmarshal(data, &conf); err != nil {
		return conf, fmt.Errorf("config file %s: %w", path, err)
	}
	if conf.Trace == "" {
		conf.Trace = "Error"
	}
	return conf, nil
}

// merge overrides configured values with flags given on the command line.
func (conf *config) merge(policy string, maxDepth int, trace string) {
	if policy != "" {
		conf.Policy = policy
	}
	if maxDepth != 0 {
		conf.MaxDepth = maxDepth
	}
	if trace != "" {
		conf.Trace = trace
	}
}

func (conf config) options() (*nest.Options, error) {
	p, err := nest.ParsePadding(conf.Policy)
	if err != nil {
		return nil, err
	}
	return &nest.Options{Padding: p, MaxDepth: conf.MaxDepth}, nil
}

// mustSetup reads the configuration, applies the common flags and starts
// tracing.
func mustSetup(flags map[string]commando.FlagValue) (config, *nest.Options) {
	conf, err := loadConfig(mustFlagString(flags["config"], "config"))
	if err != nil {
		fatalf("%v", err)
	}
	conf.merge(
		mustFlagString(flags["policy"], "policy"),
		mustFlagInt(flags["max-depth"], "max-depth"),
		mustFlagString(flags["trace"], "trace"),
	)
	setupTracing(conf.Trace)
	opt, err := conf.options()
	if err != nil {
		fatalf("%v", err)
	}
	if v, ok := flags["verbose"]; ok && mustFlagBool(v, "verbose") {
		tracer().Infof("policy=%s max-depth=%d", opt.Padding, opt.MaxDepth)
	}
	return conf, opt
}
