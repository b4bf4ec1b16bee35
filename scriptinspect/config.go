package main

import (
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

type config struct {
	Network  string `long:"network" description:"Network to derive addresses for" default:"signet" choice:"mainnet" choice:"testnet3" choice:"signet" choice:"regtest"`
	Mnemonic string `long:"mnemonic" description:"BIP39 mnemonic to derive the key from instead of generating a new one"`
	Script   string `long:"script" description:"Hex encoded script to inspect instead of deriving addresses"`
	LogLevel string `long:"loglevel" description:"Logging level (trace, debug, info, warn, error)" default:"info"`

	logLevel zerolog.Level
}

func loadConfig(args []string) (*config, error) {
	cfg := &config{}
	parser := flags.NewParser(cfg, flags.HelpFlag)
	if _, err := parser.ParseArgs(args); err != nil {
		return nil, err
	}
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid --loglevel %q", cfg.LogLevel)
	}
	cfg.logLevel = level
	return cfg, nil
}

func (c *config) netParams() (*chaincfg.Params, error) {
	switch c.Network {
	case "mainnet":
		return &chaincfg.MainNetParams, nil
	case "testnet3":
		return &chaincfg.TestNet3Params, nil
	case "signet":
		return &chaincfg.SigNetParams, nil
	case "regtest":
		return &chaincfg.RegressionNetParams, nil
	}
	return nil, errors.Errorf("unknown network %q", c.Network)
}
