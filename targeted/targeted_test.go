package targeted

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	planttribes "github.com/ChunceGuo/PlantTribes"
	"github.com/ChunceGuo/PlantTribes/seqs"
)

func TestScorePartitionsBackboneAndCandidates(t *testing.T) {
	aln := []seqs.Record{
		{ID: "backbone1", Seq: "MK*-"},
		{ID: "backbone2", Seq: "MK**"},
		{ID: "cand1", Seq: "-K*-"},
	}
	records := Score(aln, map[string]bool{"cand1": true})
	if len(records) != 3 {
		t.Fatalf("got %d records, want 3", len(records))
	}
	if !records[0].Backbone || !records[1].Backbone || records[2].Backbone {
		t.Error("backbone/candidate partition wrong")
	}
	if records[0].Coverage != 0.75 || records[0].Length != 3 {
		t.Errorf("backbone1: cov=%v len=%d, want 0.75/3", records[0].Coverage, records[0].Length)
	}
	if records[2].Coverage != 0.5 || records[2].Length != 2 {
		t.Errorf("cand1: cov=%v len=%d, want 0.5/2", records[2].Coverage, records[2].Length)
	}
}

func TestStatsBackboneOnly(t *testing.T) {
	records := []CoverageRecord{
		{ID: "b1", Coverage: 0.8, Length: 100, Backbone: true},
		{ID: "b2", Coverage: 1.0, Length: 120, Backbone: true},
		{ID: "c1", Coverage: 0.1, Length: 5},
	}
	sum := Stats(records)
	if !sum.Defined {
		t.Fatal("baseline undefined with backbone present")
	}
	if sum.AvgCov != 0.9 || sum.SdCov != 0.1 {
		t.Errorf("coverage baseline %v/%v, want 0.9/0.1", sum.AvgCov, sum.SdCov)
	}
	if sum.AvgLen != 110 || sum.SdLen != 10 {
		t.Errorf("length baseline %d/%d, want 110/10", sum.AvgLen, sum.SdLen)
	}
}

func TestStatsEmptyBackbone(t *testing.T) {
	records := []CoverageRecord{
		{ID: "c1", Coverage: 0.5, Length: 10},
	}
	if sum := Stats(records); sum.Defined {
		t.Error("baseline defined with no backbone sequences")
	}
}

func TestRankDescendingStable(t *testing.T) {
	records := []CoverageRecord{
		{ID: "b1", Coverage: 1.0, Backbone: true},
		{ID: "c1", Coverage: 0.5},
		{ID: "c2", Coverage: 0.9},
		{ID: "c3", Coverage: 0.5},
	}
	ranked := Rank(records)
	want := []string{"c2", "c1", "c3"}
	if len(ranked) != len(want) {
		t.Fatalf("got %d candidates, want %d", len(ranked), len(want))
	}
	for i, id := range want {
		if ranked[i].ID != id {
			t.Errorf("rank %d: got %s, want %s", i, ranked[i].ID, id)
		}
	}
}

func TestRenameAssembly(t *testing.T) {
	dir := t.TempDir()
	contigsF := filepath.Join(dir, "asm.cap.contigs")
	singletsF := filepath.Join(dir, "asm.cap.singlets")
	if err := seqs.Write(contigsF, []seqs.Record{
		{ID: "Contig1", Seq: "ATGAAA"},
		{ID: "Contig2", Seq: "ATGCCC"},
	}); err != nil {
		t.Fatal(err)
	}
	if err := seqs.Write(singletsF, []seqs.Record{
		{ID: "orig7", Seq: "ATGGGG"},
	}); err != nil {
		t.Fatal(err)
	}

	cfg := Config{Scaffold: "22Gv1.1", Method: "transdecoder"}
	og := Orthogroup{ID: "1234"}
	renamed, err := renameAssembly(cfg, og, contigsF, singletsF)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{
		"22Gv1.1_transdecoder_1234_1",
		"22Gv1.1_transdecoder_1234_2",
		"22Gv1.1_transdecoder_1234_3",
	}
	if len(renamed) != len(want) {
		t.Fatalf("got %d sequences, want %d", len(renamed), len(want))
	}
	for i, id := range want {
		if renamed[i].ID != id {
			t.Errorf("sequence %d: id %q, want %q", i, renamed[i].ID, id)
		}
	}
	// Contigs before singletons.
	if renamed[2].Seq != "ATGGGG" {
		t.Error("singleton not numbered after contigs")
	}
}

func TestRunOneNoHitsRemovesWorkdir(t *testing.T) {
	old := searchFunc
	searchFunc = func(profile, proteins string, cutoff float64, ncpu int) ([]planttribes.Hit, error) {
		return nil, nil
	}
	defer func() { searchFunc = old }()

	cfg := Config{OutDir: t.TempDir(), Scaffold: "scaf", Method: "transdecoder", Cutoff: 1e-5, GapTrim: 0.1, NCPU: 1}
	og := Orthogroup{ID: "99"}
	err := RunOne(cfg, og, map[string]seqs.Record{}, "proteins.fasta")
	if err == nil {
		t.Fatal("expected abort on zero hits")
	}
	dir := filepath.Join(cfg.OutDir, "targeted_gene_families", "99")
	if _, statErr := os.Stat(dir); !os.IsNotExist(statErr) {
		t.Errorf("working directory %s still present after abort", dir)
	}
}

func TestRunOneFullWalk(t *testing.T) {
	oldSearch, oldAssemble, oldAlign, oldTrim, oldPredict := searchFunc, assembleFunc, alignFunc, trimFunc, predictFunc
	defer func() {
		searchFunc, assembleFunc, alignFunc, trimFunc, predictFunc = oldSearch, oldAssemble, oldAlign, oldTrim, oldPredict
	}()

	const candID = "scaf_transdecoder_1234_1"

	searchFunc = func(profile, proteins string, cutoff float64, ncpu int) ([]planttribes.Hit, error) {
		if cutoff == strictEVal {
			return []planttribes.Hit{{TargetID: candID, QueryID: "1234", EValue: 1e-30, Score: 100}}, nil
		}
		return []planttribes.Hit{{TargetID: "c1", QueryID: "1234", EValue: 1e-10, Score: 50}}, nil
	}
	assembleFunc = func(fasta string, overlap, identity int) (string, string, error) {
		contigsF := fasta + ".cap.contigs"
		singletsF := fasta + ".cap.singlets"
		if err := seqs.Write(contigsF, []seqs.Record{{ID: "Contig1", Seq: "ATGAAATAA"}}); err != nil {
			return "", "", err
		}
		if err := os.WriteFile(singletsF, nil, 0644); err != nil {
			return "", "", err
		}
		return contigsF, singletsF, nil
	}
	predictFunc = func(cfg Config, fasta, workDir string) (string, string, error) {
		cds := filepath.Join(workDir, "pred.cds")
		pep := filepath.Join(workDir, "pred.pep")
		if err := seqs.Write(cds, []seqs.Record{{ID: candID + "|m.1", Desc: "(+)", Seq: "ATGAAATAA"}}); err != nil {
			return "", "", err
		}
		if err := seqs.Write(pep, []seqs.Record{{ID: candID + "|m.1", Desc: "(+)", Seq: "MK*"}}); err != nil {
			return "", "", err
		}
		return cds, pep, nil
	}
	alignFunc = func(newSeqs, refAln, out string, ncpu int) error {
		return seqs.Write(out, []seqs.Record{
			{ID: "backbone1", Seq: "MKX-"},
			{ID: "backbone2", Seq: "MKXX"},
			{ID: candID, Seq: "MK*-"},
		})
	}
	trimFunc = func(in, out string, gap float64) error {
		data, err := os.ReadFile(in)
		if err != nil {
			return err
		}
		return os.WriteFile(out, data, 0644)
	}

	cfg := Config{OutDir: t.TempDir(), Scaffold: "scaf", Method: "transdecoder", Cutoff: 1e-5, GapTrim: 0.1, NCPU: 1}
	og := Orthogroup{ID: "1234"}
	contigs := map[string]seqs.Record{"c1": {ID: "c1", Seq: "ATGAAATAAGGG"}}

	if err := RunOne(cfg, og, contigs, "proteins.fasta"); err != nil {
		t.Fatalf("RunOne: %v", err)
	}

	dir := filepath.Join(cfg.OutDir, "targeted_gene_families", "1234")
	for _, name := range []string{"1234.pep.fasta", "1234.cds.fasta", "1234.contigs.fasta", "1234.contigs.fasta.stats"} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("curated output %s missing: %v", name, err)
		}
	}
	// Scratch files are gone on success.
	if _, err := os.Stat(filepath.Join(dir, "1234.hits.fasta")); !os.IsNotExist(err) {
		t.Error("scratch file 1234.hits.fasta retained")
	}

	stats, err := os.ReadFile(filepath.Join(dir, "1234.contigs.fasta.stats"))
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(string(stats)), "\n")
	if len(lines) != 3 {
		t.Fatalf("stats file has %d lines, want 2 comments + 1 candidate", len(lines))
	}
	fields := strings.Split(lines[2], "\t")
	if fields[0] != candID {
		t.Errorf("stats candidate id %q, want %q", fields[0], candID)
	}
	// cov 3/4, backbone avg of 0.75 and 1.00, sd 0.13 (rounded mean 0.88).
	want := []string{candID, "0.75", "0.88", "0.13", "3", "4", "1"}
	for i, w := range want {
		if fields[i] != w {
			t.Errorf("stats column %d = %q, want %q", i, fields[i], w)
		}
	}
}
