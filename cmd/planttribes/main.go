// Command planttribes post-processes de novo transcriptome assemblies:
// coding region prediction cleanup, translation validation, deduplication
// and targeted gene family assembly against orthogroup scaffolds.
package main

import (
	"os"
	"runtime"
	"strconv"

	"gopkg.in/alecthomas/kingpin.v2"
)

func main() {
	app := kingpin.New("planttribes", "Post-process de novo transcriptome assemblies into validated coding sequences and targeted gene family assemblies")
	app.Version("v1.0")

	post := app.Command("postprocess", "Clean and translate assembly contigs")
	transcriptsFlag := post.Flag("transcripts", "assembly contig FASTA").Required().String()
	methodFlag := post.Flag("method", "coding region predictor").Required().Enum("estscan", "transdecoder")
	outFlag := post.Flag("out", "output directory, must not pre-exist").Default("assemblyPostProcessing_dir").String()
	matrixFlag := post.Flag("score-matrix", "ESTScan score matrix file").String()
	strandFlag := post.Flag("strand-specific", "assembly comes from a strand-specific library").Bool()
	minLenFlag := post.Flag("min-length", "minimum CDS length in bp, 0 keeps all").Default("0").Int()
	dedupFlag := post.Flag("dedup", "remove duplicate coding sequences").Bool()
	scaffoldFlag := post.Flag("targeted-scaffold", "orthogroup scaffold directory for targeted gene family assembly").String()
	familiesFlag := post.Flag("gene-families", "file listing orthogroup ids to assemble").String()
	evalueFlag := post.Flag("e-value", "initial profile search E-value cutoff").Default("1e-5").Float64()
	gapFlag := post.Flag("gap-trimming", "alignment trimming gap threshold in [0,1]").Default("0.1").Float64()
	ncpuFlag := post.Flag("ncpu", "thread count passed to external tools").Default(strconv.Itoa(runtime.NumCPU())).Int()
	configFlag := post.Flag("config", "optional config file name").String()

	switch kingpin.MustParse(app.Parse(os.Args[1:])) {
	case post.FullCommand():
		c := config{
			Transcripts: *transcriptsFlag,
			Method:      *methodFlag,
			OutDir:      *outFlag,
			Matrix:      *matrixFlag,
			Stranded:    *strandFlag,
			MinLen:      *minLenFlag,
			Dedup:       *dedupFlag,
			Scaffold:    *scaffoldFlag,
			Families:    *familiesFlag,
			Cutoff:      *evalueFlag,
			GapTrim:     *gapFlag,
			NCPU:        *ncpuFlag,
		}
		if *configFlag != "" {
			c.mergeFile(*configFlag)
		}
		runPostProcess(c)
	}
}
