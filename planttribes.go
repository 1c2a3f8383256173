// Package planttribes post-processes de novo transcriptome assemblies into
// validated coding sequences and protein translations, and optionally
// assembles contigs of targeted gene families against orthogroup profile
// scaffolds. The root package wraps the external tools; the pipeline logic
// lives in the subpackages.
package planttribes

import (
	"log"
	"os"
)

var (
	Info  *log.Logger
	Warn  *log.Logger
	Error *log.Logger
)

func init() {
	Info = log.New(os.Stdout, "INFO: ", log.Ldate|log.Ltime)
	Warn = log.New(os.Stdout, "WARN: ", log.Ldate|log.Ltime)
	Error = log.New(os.Stderr, "ERROR: ", log.Ldate|log.Ltime)
}
