// Command chesscore is the UCI entry point for the core: it wires
// uci.Engine to stdin/stdout and logs a startup banner, matching the
// teacher's cmd/counter/main.go shape minus the evaluation-function and
// -eval flag wiring the teacher needs and this core does not (search
// and evaluation are out of scope per spec.md §1).
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"

	"github.com/lattice-chess/corechess/uci"
)

var version = "dev"

func main() {
	versionFlag := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *versionFlag {
		fmt.Println(bannerLine())
		return
	}

	logger := log.New(os.Stderr, "", log.LstdFlags)
	logger.Println(bannerLine())

	engine := uci.New(os.Stdout)
	if err := engine.RunCLI(os.Stdin); err != nil {
		logger.Fatalf("chesscore: %v", err)
	}
}

func bannerLine() string {
	return fmt.Sprintf("chesscore %s %s %s/%s cpus=%d",
		version, runtime.Version(), runtime.GOOS, runtime.GOARCH, runtime.NumCPU())
}
