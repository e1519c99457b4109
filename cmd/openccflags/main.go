// Command openccflags prints the CGO_CFLAGS and CGO_LDFLAGS assignments
// needed to build against a non-standard OpenCC installation:
//
//	eval $(go run github.com/npillmayer/opencc/cmd/openccflags)
//	go build ./...
//
// Discovery honors the OPENCC_* environment variables (see package ccflags)
// and falls back to pkg-config. A .env file in the working directory is
// loaded first, so installation paths can be kept out of the shell profile.
package main

import (
	"fmt"
	"log"

	"github.com/joho/godotenv"

	"github.com/npillmayer/opencc/internal/ccflags"
)

func main() {
	_ = godotenv.Load() // pick up OPENCC_* from a local .env, if present

	flags, err := ccflags.Discover()
	if err != nil {
		log.Fatalf("openccflags: %v", err)
	}
	fmt.Printf("CGO_CFLAGS=%q\n", flags.CFlags())
	fmt.Printf("CGO_LDFLAGS=%q\n", flags.LDFlags())
}
