package moneytree

import (
	"fmt"
	"os"

	"github.com/jinzhu/configor"
)

type Config struct {
	Moneytree struct {
		// name of the network profile used when none is given on the command line
		Network string `default:"bitcoin" required:"true" env:"MONEYTREE_NETWORK"`
	}

	Log LogConfig

	// extra network profiles, keyed by name
	Networks map[string]NetworkConfig
}

type LogConfig struct {
	Path       string `env:"MONEYTREE_LOG_PATH"` // empty: no log
	MaxSizeMB  int    `default:"10"`
	MaxBackups int    `default:"3"`
	Compress   bool
}

// NetworkConfig describes a network profile with hex-encoded version bytes.
type NetworkConfig struct {
	AddressVersion       string // 1 byte, e.g. "1e"
	P2SHVersion          string // 1 byte
	PrivKeyVersion       string // 1 byte
	Bip32PrivVersion     string // 4 bytes, e.g. "02fac398"
	Bip32PubVersion      string // 4 bytes
	CompressedWIFChars   string
	UncompressedWIFChars string
}

// LoadConfig reads confPath (toml, yaml or json) over the defaults; an empty
// path loads defaults and environment only.
func LoadConfig(confPath string) (Config, error) {
	c := Config{}
	files := []string{}
	if confPath != "" {
		if _, err := os.Stat(confPath); err != nil {
			return c, fmt.Errorf("config file: %w", err)
		}
		files = append(files, confPath)
	}
	err := configor.New(&configor.Config{ENVPrefix: "MONEYTREE"}).Load(&c, files...)
	if err != nil {
		return c, fmt.Errorf("config file %s: %w", confPath, err)
	}
	return c, nil
}
