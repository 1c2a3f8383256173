package main

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"

	"github.com/biogo/biogo/alphabet"
	"gopkg.in/cheggaaa/pb.v1"

	planttribes "github.com/ChunceGuo/PlantTribes"
	"github.com/ChunceGuo/PlantTribes/dedup"
	"github.com/ChunceGuo/PlantTribes/seqs"
	"github.com/ChunceGuo/PlantTribes/strand"
	"github.com/ChunceGuo/PlantTribes/targeted"
	"github.com/ChunceGuo/PlantTribes/translate"
)

// runPostProcess drives the whole pipeline: predict, reconcile strands,
// validate translations, write the cleaned outputs and optionally
// deduplicate and assemble targeted gene families.
func runPostProcess(c config) {
	if _, err := os.Stat(c.Transcripts); err != nil {
		planttribes.Error.Fatalf("transcripts file: %v", err)
	}
	if _, err := os.Stat(c.OutDir); err == nil {
		planttribes.Error.Fatalf("output directory %s already exists, refusing to overwrite", c.OutDir)
	}
	if c.Method == "estscan" && c.Matrix == "" {
		planttribes.Error.Fatalln("estscan needs a score matrix (--score-matrix)")
	}
	if c.GapTrim < 0 || c.GapTrim > 1 {
		planttribes.Error.Fatalf("gap trimming threshold %v outside [0,1]", c.GapTrim)
	}

	wantTargeted := c.Scaffold != "" || c.Families != ""
	var groups []targeted.Orthogroup
	if wantTargeted {
		if c.Scaffold == "" || c.Families == "" {
			planttribes.Error.Fatalln("targeted assembly needs both --targeted-scaffold and --gene-families")
		}
		ids, err := readFamilyIDs(c.Families)
		if err != nil {
			planttribes.Error.Fatalf("gene family list: %v", err)
		}
		if len(ids) == 0 {
			planttribes.Error.Fatalf("gene family list %s holds no orthogroup ids", c.Families)
		}
		groups, err = targeted.Scaffold(c.Scaffold, ids)
		if err != nil {
			planttribes.Error.Fatalf("scaffold: %v", err)
		}
	}

	if err := os.MkdirAll(c.OutDir, 0755); err != nil {
		planttribes.Error.Fatalf("create output directory: %v", err)
	}

	planttribes.Info.Printf("predicting coding regions in %s with %s\n", c.Transcripts, c.Method)
	cdsPath, pepPath, err := predict(c)
	if err != nil {
		planttribes.Error.Fatalf("coding region prediction failed: %v", err)
	}

	cdsRecs, err := seqs.Read(cdsPath, alphabet.DNAredundant)
	if err != nil {
		planttribes.Error.Fatalln(err)
	}
	pepRecs, err := seqs.Read(pepPath, alphabet.Protein)
	if err != nil {
		planttribes.Error.Fatalln(err)
	}

	pairs, err := strand.Reconcile(cdsRecs, pepRecs, c.Stranded)
	if err != nil {
		planttribes.Error.Fatalln(err)
	}
	valid := translate.ValidateAll(pairs)
	if len(valid) == 0 {
		planttribes.Error.Fatalln("no predictions passed translation validation")
	}
	planttribes.Info.Printf("%d transcripts passed translation validation\n", len(valid))

	cdsOut, pepOut := toRecords(valid)
	if c.MinLen > 0 {
		cdsOut, pepOut = filterMinLen(cdsOut, pepOut, c.MinLen)
		planttribes.Info.Printf("%d transcripts at least %d bp long\n", len(cdsOut), c.MinLen)
	}

	base := filepath.Base(c.Transcripts)
	if err := seqs.Write(filepath.Join(c.OutDir, base+".cleaned.cds"), cdsOut); err != nil {
		planttribes.Error.Fatalln(err)
	}
	pepFile := filepath.Join(c.OutDir, base+".cleaned.pep")
	if err := seqs.Write(pepFile, pepOut); err != nil {
		planttribes.Error.Fatalln(err)
	}

	if c.Dedup {
		nrCDS, nrPEP, err := dedup.NonRedundant(cdsOut, pepOut, c.OutDir)
		if err != nil {
			planttribes.Error.Fatalf("deduplication failed: %v", err)
		}
		if err := seqs.Write(filepath.Join(c.OutDir, base+".cleaned.nr.cds"), nrCDS); err != nil {
			planttribes.Error.Fatalln(err)
		}
		pepFile = filepath.Join(c.OutDir, base+".cleaned.nr.pep")
		if err := seqs.Write(pepFile, nrPEP); err != nil {
			planttribes.Error.Fatalln(err)
		}
	}

	if wantTargeted {
		transcripts, err := seqs.Read(c.Transcripts, alphabet.DNAredundant)
		if err != nil {
			planttribes.Error.Fatalln(err)
		}
		tcfg := targeted.Config{
			OutDir:   c.OutDir,
			Scaffold: filepath.Base(c.Scaffold),
			Method:   c.Method,
			Matrix:   c.Matrix,
			Stranded: c.Stranded,
			Dedup:    c.Dedup,
			Cutoff:   c.Cutoff,
			GapTrim:  c.GapTrim,
			NCPU:     c.NCPU,
		}
		contigs := seqs.ByID(transcripts)
		planttribes.Info.Printf("assembling %d targeted gene families\n", len(groups))
		bar := pb.StartNew(len(groups))
		for _, og := range groups {
			if err := targeted.RunOne(tcfg, og, contigs, pepFile); err != nil {
				planttribes.Warn.Printf("orthogroup %s aborted: %v\n", og.ID, err)
			}
			bar.Increment()
		}
		bar.Finish()
	}

	planttribes.Info.Println("assembly post-processing finished")
}

// predict runs the configured coding-region predictor on the input
// transcripts.
func predict(c config) (cds, pep string, err error) {
	if c.Method == "estscan" {
		return planttribes.EstScan(c.Transcripts, c.OutDir, c.Matrix)
	}
	return planttribes.TransDecoder(c.Transcripts, c.OutDir, c.Stranded)
}

// toRecords flattens validated pairs into parallel CDS and PEP record
// slices sorted by canonical id.
func toRecords(pairs map[string]strand.Pair) (cds, pep []seqs.Record) {
	for id, p := range pairs {
		cds = append(cds, seqs.Record{ID: id, Seq: p.CDS})
		pep = append(pep, seqs.Record{ID: id, Seq: p.PEP})
	}
	seqs.SortByID(cds)
	seqs.SortByID(pep)
	return cds, pep
}

// filterMinLen drops pairs whose CDS is shorter than min nucleotides. CDS
// and PEP outputs stay paired, a record never leaves one file without
// leaving the other.
func filterMinLen(cds, pep []seqs.Record, min int) ([]seqs.Record, []seqs.Record) {
	var fc, fp []seqs.Record
	for i := range cds {
		if len(cds[i].Seq) >= min {
			fc = append(fc, cds[i])
			fp = append(fp, pep[i])
		}
	}
	return fc, fp
}

// readFamilyIDs reads one orthogroup id per line, skipping blanks and
// '#'-comments.
func readFamilyIDs(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var ids []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		ids = append(ids, line)
	}
	return ids, scanner.Err()
}
