/*
Package config collects the tunable settings of minihtml from an
application configuration.

Configuration values are read through the schuko.Configuration interface,
thus any configuration adapter of package schuko may be used. Keys are:

    minihtml.parser.maxdepth      maximum nesting depth of elements
    minihtml.fetch.useragent      User-Agent header for HTTP requests
    minihtml.fetch.timeout        request timeout in seconds
    minihtml.fetch.maxredirects   maximum number of redirects to follow
    minihtml.fetch.maxbody        maximum size of a response body in bytes
    minihtml.writer.pretty        indent HTML output

Unset keys and invalid values select defaults.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package config

import (
	"time"

	"github.com/npillmayer/minihtml/fetch"
	"github.com/npillmayer/minihtml/parser"
	"github.com/npillmayer/schuko"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'minihtml.config'.
func tracer() tracing.Trace {
	return tracing.Select("minihtml.config")
}

// Configuration keys.
const (
	KeyMaxDepth     = "minihtml.parser.maxdepth"
	KeyUserAgent    = "minihtml.fetch.useragent"
	KeyTimeout      = "minihtml.fetch.timeout"
	KeyMaxRedirects = "minihtml.fetch.maxredirects"
	KeyMaxBody      = "minihtml.fetch.maxbody"
	KeyPretty       = "minihtml.writer.pretty"
)

// Options holds the settings for parsing, fetching and writing.
type Options struct {
	MaxDepth     int
	UserAgent    string
	Timeout      time.Duration
	MaxRedirects int
	MaxBodySize  int64
	Pretty       bool
}

// Defaults returns the default options.
func Defaults() Options {
	return Options{
		MaxDepth:     parser.DefaultMaxDepth,
		UserAgent:    fetch.DefaultUserAgent,
		Timeout:      fetch.DefaultTimeout,
		MaxRedirects: fetch.DefaultMaxRedirects,
		MaxBodySize:  fetch.DefaultMaxBodySize,
	}
}

// FromConfiguration reads options from an application configuration.
// conf may be nil, resulting in default options.
func FromConfiguration(conf schuko.Configuration) Options {
	opts := Defaults()
	if conf == nil {
		return opts
	}
	if n, ok := positive(conf, KeyMaxDepth); ok {
		opts.MaxDepth = n
	}
	if conf.IsSet(KeyUserAgent) && conf.GetString(KeyUserAgent) != "" {
		opts.UserAgent = conf.GetString(KeyUserAgent)
	}
	if n, ok := positive(conf, KeyTimeout); ok {
		opts.Timeout = time.Duration(n) * time.Second
	}
	if conf.IsSet(KeyMaxRedirects) {
		if n := conf.GetInt(KeyMaxRedirects); n >= 0 {
			opts.MaxRedirects = n
		}
	}
	if n, ok := positive(conf, KeyMaxBody); ok {
		opts.MaxBodySize = int64(n)
	}
	opts.Pretty = conf.GetBool(KeyPretty)
	tracer().Debugf("options: %+v", opts)
	return opts
}

func positive(conf schuko.Configuration, key string) (int, bool) {
	if !conf.IsSet(key) {
		return 0, false
	}
	n := conf.GetInt(key)
	if n <= 0 {
		tracer().Errorf("configuration key %s: invalid value %q, using default",
			key, conf.GetString(key))
		return 0, false
	}
	return n, true
}

// ParserOptions returns the options for creating a parser.
func (o Options) ParserOptions() []parser.Option {
	return []parser.Option{parser.MaxDepth(o.MaxDepth)}
}

// FetchOptions returns the options for creating a fetch client.
func (o Options) FetchOptions() []fetch.Option {
	return []fetch.Option{
		fetch.WithUserAgent(o.UserAgent),
		fetch.WithTimeout(o.Timeout),
		fetch.WithMaxRedirects(o.MaxRedirects),
		fetch.WithMaxBodySize(o.MaxBodySize),
	}
}
