// Package targeted assembles transcriptome contigs belonging to selected
// gene families against orthogroup profile scaffolds. Each orthogroup is
// processed independently: its contig hits are reassembled, re-translated,
// inserted into the orthogroup reference alignment and scored for coverage
// against the backbone sequences. A failure in one orthogroup never stops
// the others.
package targeted

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/biogo/biogo/alphabet"

	planttribes "github.com/ChunceGuo/PlantTribes"
	"github.com/ChunceGuo/PlantTribes/dedup"
	"github.com/ChunceGuo/PlantTribes/seqs"
	"github.com/ChunceGuo/PlantTribes/strand"
	"github.com/ChunceGuo/PlantTribes/translate"
)

// Fixed reassembly and re-search settings.
const (
	overlapLen  = 40    // cap3 overlap length
	pctIdentity = 90    // cap3 percent identity
	strictEVal  = 1e-20 // re-search cutoff after reassembly
)

// Orthogroup couples a gene family id with its HMM profile and reference
// alignment.
type Orthogroup struct {
	ID          string
	ProfilePath string
	AlignPath   string
}

// Config carries the settings of one targeted assembly run.
type Config struct {
	OutDir   string  // post-processing output directory
	Scaffold string  // scaffold name used in assembly renaming
	Method   string  // estscan or transdecoder
	Matrix   string  // ESTScan score matrix
	Stranded bool    // strand-specific assembly
	Dedup    bool    // collapse identical coding sequences per orthogroup
	Cutoff   float64 // initial profile search E-value cutoff
	GapTrim  float64 // trimal gap threshold
	NCPU     int     // thread hint passed to external tools
}

// External collaborators, variables so tests can substitute them.
var (
	searchFunc   = planttribes.HmmSearch
	assembleFunc = planttribes.Cap3
	alignFunc    = planttribes.MafftAdd
	trimFunc     = planttribes.Trimal
	predictFunc  = predict
)

// Scaffold locates the profile and reference alignment of each requested
// orthogroup under the scaffold directory (hmms/<id>.hmm, alns/<id>.aln).
func Scaffold(dir string, ids []string) ([]Orthogroup, error) {
	var groups []Orthogroup
	for _, id := range ids {
		og := Orthogroup{
			ID:          id,
			ProfilePath: filepath.Join(dir, "hmms", id+".hmm"),
			AlignPath:   filepath.Join(dir, "alns", id+".aln"),
		}
		if _, err := os.Stat(og.ProfilePath); err != nil {
			return nil, fmt.Errorf("orthogroup %s: profile: %v", id, err)
		}
		if _, err := os.Stat(og.AlignPath); err != nil {
			return nil, fmt.Errorf("orthogroup %s: reference alignment: %v", id, err)
		}
		groups = append(groups, og)
	}
	return groups, nil
}

// predict runs the configured coding-region predictor on a FASTA file.
func predict(cfg Config, fasta, workDir string) (cds, pep string, err error) {
	if cfg.Method == "estscan" {
		return planttribes.EstScan(fasta, workDir, cfg.Matrix)
	}
	return planttribes.TransDecoder(fasta, workDir, cfg.Stranded)
}

// RunOne processes a single orthogroup through the search, extract,
// assemble, re-translate, re-search, align and score stages. On success the
// curated outputs are retained under
// <out>/targeted_gene_families/<orthogroup> and scratch files are removed;
// on any error the whole working directory is removed and the error
// describes the aborted stage.
func RunOne(cfg Config, og Orthogroup, contigs map[string]seqs.Record, proteins string) (err error) {
	dir := filepath.Join(cfg.OutDir, "targeted_gene_families", og.ID)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	defer func() {
		if err != nil {
			os.RemoveAll(dir)
		}
	}()
	var scratch []string
	addScratch := func(paths ...string) { scratch = append(scratch, paths...) }

	// Searching.
	hits, err := searchFunc(og.ProfilePath, proteins, cfg.Cutoff, cfg.NCPU)
	if err != nil {
		return err
	}
	if len(hits) == 0 {
		return errors.New("no profile hits")
	}

	// Extracting: original contig sequences for each hit id.
	var hitContigs []seqs.Record
	seen := make(map[string]bool)
	for _, h := range hits {
		if seen[h.TargetID] {
			continue
		}
		seen[h.TargetID] = true
		r, ok := contigs[h.TargetID]
		if !ok {
			planttribes.Warn.Printf("orthogroup %s: hit %s not found in transcript input\n", og.ID, h.TargetID)
			continue
		}
		hitContigs = append(hitContigs, r)
	}
	if len(hitContigs) == 0 {
		return errors.New("no hit contigs in transcript input")
	}
	hitFasta := filepath.Join(dir, og.ID+".hits.fasta")
	if err := seqs.Write(hitFasta, hitContigs); err != nil {
		return err
	}
	addScratch(hitFasta)

	// Assembling.
	contigsF, singletsF, err := assembleFunc(hitFasta, overlapLen, pctIdentity)
	if err != nil {
		return err
	}
	addScratch(contigsF, singletsF, hitFasta+".cap.ace", hitFasta+".cap.info")
	assembly, err := renameAssembly(cfg, og, contigsF, singletsF)
	if err != nil {
		return err
	}
	rawByID := seqs.ByID(assembly)
	asmFasta := filepath.Join(dir, og.ID+".assembly.fasta")
	if err := seqs.Write(asmFasta, assembly); err != nil {
		return err
	}
	addScratch(asmFasta)

	// Reassembling-Translation: re-predict coding regions on the renamed
	// assembly with the outer run's settings.
	cdsPath, pepPath, err := predictFunc(cfg, asmFasta, dir)
	if err != nil {
		return fmt.Errorf("reassembly translation: %v", err)
	}
	addScratch(cdsPath, pepPath)
	cdsRecs, err := seqs.Read(cdsPath, alphabet.DNAredundant)
	if err != nil {
		return err
	}
	pepRecs, err := seqs.Read(pepPath, alphabet.Protein)
	if err != nil {
		return err
	}
	pairs, err := strand.Reconcile(cdsRecs, pepRecs, cfg.Stranded)
	if err != nil {
		return err
	}
	valid := translate.ValidateAll(pairs)
	if len(valid) == 0 {
		return errors.New("no credible coding regions after reassembly")
	}
	cdsSet, pepSet := pairRecords(valid)

	// Deduplicating (optional).
	if cfg.Dedup {
		cdsSet, pepSet, err = dedup.NonRedundant(cdsSet, pepSet, dir)
		if err != nil {
			return err
		}
	}
	pepFasta := filepath.Join(dir, og.ID+".assembly.pep.fasta")
	if err := seqs.Write(pepFasta, pepSet); err != nil {
		return err
	}
	addScratch(pepFasta)

	// Re-searching at the stricter threshold.
	hits2, err := searchFunc(og.ProfilePath, pepFasta, strictEVal, cfg.NCPU)
	if err != nil {
		return err
	}
	if len(hits2) == 0 {
		return fmt.Errorf("no hits at E-value %g after reassembly", strictEVal)
	}
	keep := make(map[string]bool)
	for _, h := range hits2 {
		keep[h.TargetID] = true
	}
	var candPep []seqs.Record
	for _, r := range pepSet {
		if keep[r.ID] {
			candPep = append(candPep, r)
		}
	}
	candFasta := filepath.Join(dir, og.ID+".candidates.fasta")
	if err := seqs.Write(candFasta, candPep); err != nil {
		return err
	}
	addScratch(candFasta)

	// Aligning: insert candidates into the reference alignment, then trim
	// low-occupancy columns.
	combined := filepath.Join(dir, og.ID+".aln.fasta")
	if err := alignFunc(candFasta, og.AlignPath, combined, cfg.NCPU); err != nil {
		return err
	}
	addScratch(combined)
	trimmed := filepath.Join(dir, og.ID+".trim.fasta")
	if err := trimFunc(combined, trimmed, cfg.GapTrim); err != nil {
		return err
	}
	addScratch(trimmed)
	alnRecs, err := seqs.Read(trimmed, alphabet.Protein)
	if err != nil {
		return err
	}

	// Scoring and output.
	records := Score(alnRecs, seqs.IDSet(candPep))
	summary := Stats(records)
	if !summary.Defined {
		planttribes.Warn.Printf("orthogroup %s: no backbone sequences in trimmed alignment, baseline undefined\n", og.ID)
	}
	ranked := Rank(records)
	if err := writeOutputs(dir, og, ranked, summary, seqs.ByID(candPep), seqs.ByID(cdsSet), rawByID); err != nil {
		return err
	}

	// Success: retain curated outputs, drop the scratch files.
	for _, p := range scratch {
		os.Remove(p)
	}
	return nil
}

// pairRecords flattens validated pairs into parallel CDS and PEP record
// slices sorted by id.
func pairRecords(pairs map[string]strand.Pair) (cds, pep []seqs.Record) {
	for id, p := range pairs {
		cds = append(cds, seqs.Record{ID: id, Seq: p.CDS})
		pep = append(pep, seqs.Record{ID: id, Seq: p.PEP})
	}
	seqs.SortByID(cds)
	seqs.SortByID(pep)
	return cds, pep
}
