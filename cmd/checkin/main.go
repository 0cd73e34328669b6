// @title Event Check-in API
// @version 1.0
// @description Event listings, attendee search and attendee check-in.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Shared secret, sent as "Bearer <secret>". Only enforced when AUTH_SECRET is set.
package main

import (
	"fmt"
	"os"

	"eventcheckin/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
