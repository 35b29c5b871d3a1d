// Package global
package global

import (
	"flag"
)

var (
	DebugMode      = flag.Bool("debug", false, "Enable debug mode")
	ConfigFilePath = flag.String("config", "./config.json", "Path to configuration file")
	SeedDemoData   = flag.Bool("seed", false, "Seed the store with demo fleet data on startup")
)

const (
	AppVersion    = "0.4.0"
	ConfigVersion = "0.4.0"

	DefaultFilePermissions     = 0644
	DefaultDirectoryPermission = 0755

	FlightsBlobKey = "flights"

	LedgerNetworkName      = "sepolia"
	LedgerContractAddress  = "0x742d35Cc6634C0532925a3b8D4C9db96590c4C87"
	LedgerBaseBlockNumber  = 18000000
	LedgerBlockNumberRange = 1000000
)
