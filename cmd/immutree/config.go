package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/npillmayer/schuko"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"gopkg.in/yaml.v3"
)

// Config holds the defaults of the command, read from a YAML file.
type Config struct {
	Balancing string        `yaml:"balancing"`
	Format    string        `yaml:"format"`
	Tracing   TracingConfig `yaml:"tracing"`
}

// TracingConfig selects a tracing adapter and the level of all tracers.
type TracingConfig struct {
	Adapter     string `yaml:"adapter"`
	Level       string `yaml:"level"`
	Destination string `yaml:"destination"`
}

var defaultConfig = Config{
	Balancing: "avl",
	Format:    "tree",
	Tracing: TracingConfig{
		Adapter: "go",
	},
}

// LoadConfig reads a configuration file. Values missing from the file keep their
// defaults. An empty path yields the default configuration.
func LoadConfig(path string) (Config, error) {
	config := defaultConfig
	if path == "" {
		return config, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return config, fmt.Errorf("cannot read configuration: %w", err)
	}
	if err = yaml.Unmarshal(data, &config); err != nil {
		return config, fmt.Errorf("cannot parse configuration %s: %w", path, err)
	}
	return config, nil
}

// --- Tracing ---------------------------------------------------------------

// tracedPackages lists the tracer keys of the library packages.
var tracedPackages = []string{"immutree.bst", "immutree.list"}

// traceConf adapts a TracingConfig to schuko.Configuration, which is what the
// trace2go root tracer is configured from.
type traceConf struct {
	values map[string]string
}

var _ schuko.Configuration = traceConf{}

func newTraceConf(tc TracingConfig) traceConf {
	conf := traceConf{values: make(map[string]string)}
	conf.InitDefaults()
	if tc.Adapter != "" {
		conf.values["tracing.adapter"] = tc.Adapter
	}
	if tc.Destination != "" {
		conf.values["tracing.destination"] = tc.Destination
	}
	if tc.Level != "" {
		conf.values["tracelevel.root"] = tc.Level
		for _, key := range tracedPackages {
			conf.values["tracelevel."+key] = tc.Level
		}
	}
	return conf
}

func (c traceConf) InitDefaults() {
	c.values["tracing.adapter"] = "go"
	c.values["tracelevel.root"] = "Error"
	for _, key := range tracedPackages {
		c.values["tracelevel."+key] = "Error"
	}
}

func (c traceConf) IsSet(key string) bool {
	_, ok := c.values[key]
	return ok
}

func (c traceConf) GetString(key string) string {
	return c.values[key]
}

func (c traceConf) GetInt(key string) int {
	n, _ := strconv.Atoi(c.values[key])
	return n
}

func (c traceConf) GetBool(key string) bool {
	b, _ := strconv.ParseBool(c.values[key])
	return b
}

func (c traceConf) IsInteractive() bool {
	return false
}

// setupTracing installs trace2go as the tracer selector for the library
// packages, logging through the Go standard logger.
func setupTracing(tc TracingConfig) error {
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	if err := trace2go.ConfigureRoot(newTraceConf(tc), "tracelevel", trace2go.ReplaceTracers(true)); err != nil {
		return err
	}
	tracing.SetTraceSelector(trace2go.Selector())
	return nil
}
