// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package effect

import (
	"io"

	"gopkg.in/yaml.v3"
)

// RuntimeConfig holds the small set of tunables a caller may want to
// vary between environments. Nothing in this package reads it
// automatically: no environment variable, file path, or process-wide
// default is consulted anywhere in this library. A caller who wants
// configuration loads it explicitly and threads it through their own
// environment R.
type RuntimeConfig struct {
	// PoolSize bounds how many connections a Transact-backed Pool
	// implementation hands out at once. Zero means "adapter default";
	// see adapters/sqlconn, which reads this field.
	PoolSize int `yaml:"pool_size,omitempty"`

	// AcquireTimeoutMS is a wait limit, in milliseconds, for acquiring a
	// free connection. It is decoded but not read by any code in this
	// module: adapters/sqlconn's Acquire waits until the caller's
	// context is done instead.
	AcquireTimeoutMS int `yaml:"acquire_timeout_ms,omitempty"`
}

// LoadRuntimeConfig decodes a RuntimeConfig from r. An empty document
// yields the zero value.
func LoadRuntimeConfig(r io.Reader) (RuntimeConfig, error) {
	var cfg RuntimeConfig
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&cfg); err != nil && err != io.EOF {
		return RuntimeConfig{}, err
	}
	return cfg, nil
}
