// Offline inspection of the append-only request log: counts per category and
// the most recent errors.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"peliculas-service/internal/logging"
)

func main() {
	path := flag.String("path", "/tmp/crear_pelicula.logl", "log file to inspect")
	tail := flag.Int("errors", 5, "number of recent ERROR entries to print")
	flag.Parse()

	// Diagnostics about the file itself go to stderr so stdout stays parseable.
	logger := logging.New(os.Stderr, *path)

	entries, err := logger.LoadAll(*path)
	if err != nil {
		log.Fatalf("Failed to load logs: %v", err)
	}

	fmt.Printf("%d entries in %s\n", len(entries), *path)
	for tipo, n := range logging.CountByTipo(entries) {
		fmt.Printf("  %-8s %d\n", tipo, n)
	}

	errs := logging.FilterByTipo(entries, logging.TipoError)
	if *tail > 0 && len(errs) > *tail {
		errs = errs[len(errs)-*tail:]
	}
	for _, e := range errs {
		line, _ := json.Marshal(e.Datos)
		fmt.Printf("  ERROR %s\n", line)
	}
}
