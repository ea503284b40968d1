package main

import (
	"strconv"

	"github.com/npillmayer/schuko"
	"github.com/npillmayer/schuko/gconf"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
)

// config is the application configuration of stax. It is made global with
// gconf.Initialize and populated, in order of precedence, from command line
// flags, environment variables and defaults.
//
// Keys:
//
//	stax.show-stack     print the stack after each line entered in the REPL
//	tracing.adapter     trace adapter, "go" for the Go standard logger
//	tracelevel.root     default trace level, overridden by tracelevel.<tracer>
type config map[string]string

var _ schuko.Configuration = config{}

// envKeys maps configuration keys to environment variables.
var envKeys = map[string]string{
	"stax.show-stack": "STAX_SHOW_STACK",
	"tracelevel.root": "STAX_TRACE",
}

// gtraceKeys are the trace level keys of schuko's global tracers.
var gtraceKeys = []string{
	"tracinginterpreter", "tracingcommands", "tracingequations", "tracingsyntax",
	"tracinggraphics", "tracingscripting", "tracingcore", "tracingengine",
}

// newConfig creates a configuration from environment variables, found by
// lookupEnv (usually os.LookupEnv).
func newConfig(lookupEnv func(string) (string, bool)) config {
	c := config{}
	for key, env := range envKeys {
		if v, ok := lookupEnv(env); ok {
			c[key] = v
		}
	}
	return c
}

// InitDefaults is part of interface schuko.Configuration.
// It fills in every key not set yet.
func (c config) InitDefaults() {
	c.setDefault("tracing.adapter", "go")
	c.setDefault("tracelevel.root", "Error")
	c.setDefault("stax.show-stack", "false")
	level := c["tracelevel.root"]
	for _, key := range gtraceKeys {
		c.setDefault(key, level)
	}
	for _, key := range traceKeys {
		c.setDefault("tracelevel."+key, level)
	}
}

func (c config) setDefault(key, value string) {
	if _, ok := c[key]; !ok {
		c[key] = value
	}
}

// Set overrides the config value for key.
func (c config) Set(key string, value string) (oldval string) {
	oldval = c[key]
	c[key] = value
	return
}

// IsSet is part of interface schuko.Configuration.
func (c config) IsSet(key string) bool {
	_, found := c[key]
	return found
}

// GetString is part of interface schuko.Configuration.
func (c config) GetString(key string) string {
	return c[key]
}

// GetInt is part of interface schuko.Configuration.
func (c config) GetInt(key string) int {
	n, _ := strconv.Atoi(c[key])
	return n
}

// GetBool is part of interface schuko.Configuration. Values are parsed with
// strconv.ParseBool, anything else is false.
func (c config) GetBool(key string) bool {
	b, _ := strconv.ParseBool(c[key])
	return b
}

// IsInteractive is part of interface schuko.Configuration.
func (c config) IsInteractive() bool { return false }

// initConfig makes c the global configuration and sets up tracing from it.
// Tracers selected by key are created by trace2go, each one with the level
// configured for tracelevel.<key>.
func initConfig(c config) error {
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	gconf.Initialize(c)
	if err := trace2go.ConfigureRoot(c, "tracelevel", trace2go.ReplaceTracers(true)); err != nil {
		return err
	}
	tracing.SetTraceSelector(trace2go.Selector())
	return nil
}
