package main

import (
	"fmt"
	"os"

	"github.com/eisnstein/ccap"
)

func main() {
	args := ccap.FromOS().
		SetName("app").
		SetVersion("0.1.0").
		SetAbout("An example application demonstrating ccap features").
		Arg(ccap.NewArgument("port").SetShort('p').SetLong("port").SetDesc("Port to run the server on").ExpectsValue().Required()).
		Arg(ccap.NewArgument("host").SetLong("host").SetDesc("Interface to bind").ExpectsValue()).
		Arg(ccap.NewArgument("verbose").SetShort('v').SetLong("verbose").SetDesc("Enable verbose output"))

	if err := args.Parse(); err != nil {
		fmt.Fprintln(os.Stderr, "Error parsing arguments:", err)
		os.Exit(1)
	}

	port, _ := args.Get("port")
	host, ok := args.Get("host")
	if !ok {
		host = "localhost"
	}

	fmt.Printf("%s listening on %s:%s (verbose: %t)\n", args.Version(), host, port, args.IsGiven("verbose"))
}
