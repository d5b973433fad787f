/*

A simple CLI app to parse a Rocket League replay passed as a CLI argument
and print its decoded contents as JSON.

*/
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"runtime"

	"github.com/rocketgg/octane/replay"
)

const (
	appName    = "octreplay"
	appVersion = "v0.1.0"
	appHome    = "https://github.com/rocketgg/octane"
)

const (
	ExitCodeMissingArguments         = 1
	ExitCodeFailedToParseReplay      = 2
	ExitCodeFailedToCreateOutputFile = 3
	ExitCodeInvalidCrcPolicy         = 4
	ExitCodeInvalidNetworkPolicy     = 5
)

const (
	validCrcPolicies     = "valid values are 'always', 'never', 'onerror'"
	validNetworkPolicies = "valid values are 'always', 'never', 'ignoreonerror'"
)

var (
	version = flag.Bool("version", false, "print version info and exit")

	crcPolicy     = flag.String("crc", "onerror", "CRC check policy;\n"+validCrcPolicies)
	networkPolicy = flag.String("network", "ignoreonerror", "network stream decode policy;\n"+validNetworkPolicies)
	outFile       = flag.String("outfile", "", "optional output file name")
	indent        = flag.Bool("indent", true, "use indentation when formatting output")
)

func main() {
	flag.Parse()

	if *version {
		printVersion()
		return
	}

	args := flag.Args()
	if len(args) < 1 {
		printUsage()
		os.Exit(ExitCodeMissingArguments)
	}

	opts := replay.NewOptions()

	switch *crcPolicy {
	case "always":
		opts = opts.CrcAlways()
	case "never":
		opts = opts.CrcNever()
	case "onerror":
		opts = opts.CrcOnError()
	default:
		fmt.Printf("Invalid crc policy: %v\n", *crcPolicy)
		fmt.Println(validCrcPolicies)
		os.Exit(ExitCodeInvalidCrcPolicy)
	}

	switch *networkPolicy {
	case "always":
		opts = opts.ParseNetworkAlways()
	case "never":
		opts = opts.ParseNetworkNever()
	case "ignoreonerror":
		opts = opts.ParseNetworkIgnoreOnError()
	default:
		fmt.Printf("Invalid network policy: %v\n", *networkPolicy)
		fmt.Println(validNetworkPolicies)
		os.Exit(ExitCodeInvalidNetworkPolicy)
	}

	r, err := replay.ParseFileConfig(args[0], opts)
	if err != nil {
		fmt.Printf("Failed to parse replay: %v\n", err)
		os.Exit(ExitCodeFailedToParseReplay)
	}

	destination := os.Stdout
	if *outFile != "" {
		foutput, err := os.Create(*outFile)
		if err != nil {
			fmt.Printf("Failed to create output file: %v\n", err)
			os.Exit(ExitCodeFailedToCreateOutputFile)
		}
		defer func() {
			if err := foutput.Close(); err != nil {
				panic(err)
			}
		}()
		destination = foutput
	}

	enc := json.NewEncoder(destination)
	if *indent {
		enc.SetIndent("", "  ")
	}

	if err := enc.Encode(r); err != nil {
		fmt.Printf("Failed to encode output: %v\n", err)
	}
}

func printVersion() {
	fmt.Println(appName, "version:", appVersion)
	fmt.Println("Platform:", runtime.GOOS, runtime.GOARCH)
	fmt.Println("Built with:", runtime.Version())
	fmt.Println("Home page:", appHome)
}

func printUsage() {
	fmt.Println("Usage:")
	name := os.Args[0]
	fmt.Printf("\t%s [FLAGS] replayfile.replay\n", name)
	fmt.Println("\tRun with '-h' to see a list of available flags.")
}
