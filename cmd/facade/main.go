// Command facade starts a local stand-in for the Pine lint service.
// Usage: go run ./cmd/facade [addr]
// Default addr: :9999
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/kaigouthro/pinelint/internal/facade"
	"github.com/kaigouthro/pinelint/internal/logging"
)

func main() {
	cfg := facade.DefaultConfig()

	// Optional: custom listen address from the command line
	if len(os.Args) > 1 {
		cfg.Addr = os.Args[1]
	}

	fmt.Printf("Facade stub starting on %s\n", cfg.Addr)
	fmt.Printf("Point pinelint at it with: pinelint -endpoint http://localhost%s/pine-facade/translate_light <script>\n", cfg.Addr)

	svc := facade.NewService(cfg, logging.NewStderrLogger("Facade"))
	if err := svc.Start(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
