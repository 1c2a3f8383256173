package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ChunceGuo/PlantTribes/seqs"
	"github.com/ChunceGuo/PlantTribes/strand"
)

func TestFilterMinLenKeepsPairsTogether(t *testing.T) {
	cds := []seqs.Record{
		{ID: "short", Seq: strings.Repeat("A", 150)},
		{ID: "long", Seq: strings.Repeat("A", 250)},
	}
	pep := []seqs.Record{
		{ID: "short", Seq: strings.Repeat("K", 50)},
		{ID: "long", Seq: strings.Repeat("K", 83)},
	}
	fc, fp := filterMinLen(cds, pep, 200)
	if len(fc) != 1 || len(fp) != 1 {
		t.Fatalf("got %d CDS / %d PEP, want 1 / 1", len(fc), len(fp))
	}
	if fc[0].ID != "long" || fp[0].ID != "long" {
		t.Errorf("kept %s/%s, want long/long", fc[0].ID, fp[0].ID)
	}
}

func TestToRecordsSorted(t *testing.T) {
	pairs := map[string]strand.Pair{
		"b": {CDS: "ATGTAA", PEP: "M*"},
		"a": {CDS: "ATGTGA", PEP: "M*"},
	}
	cds, pep := toRecords(pairs)
	if cds[0].ID != "a" || cds[1].ID != "b" {
		t.Errorf("CDS order %s,%s, want a,b", cds[0].ID, cds[1].ID)
	}
	if pep[0].ID != "a" || pep[1].ID != "b" {
		t.Errorf("PEP order %s,%s, want a,b", pep[0].ID, pep[1].ID)
	}
}

func TestReadFamilyIDs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "families.txt")
	content := "# targeted orthogroups\n1234\n\n  5678  \n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	ids, err := readFamilyIDs(path)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"1234", "5678"}
	if len(ids) != len(want) {
		t.Fatalf("got %d ids, want %d", len(ids), len(want))
	}
	for i, id := range want {
		if ids[i] != id {
			t.Errorf("id %d = %q, want %q", i, ids[i], id)
		}
	}
}
