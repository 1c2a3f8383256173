// Package seqs holds the FASTA record model shared by the pipeline stages
// and its file I/O. Reading and writing go through biogo; output sequences
// are wrapped at 80 columns.
package seqs

import (
	"fmt"
	"os"
	"sort"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/io/seqio"
	"github.com/biogo/biogo/io/seqio/fasta"
	"github.com/biogo/biogo/seq/linear"
)

// Width of wrapped FASTA output lines.
const Width = 80

// Record is a single FASTA record. Desc is the header text after the first
// whitespace, without the leading '>'.
type Record struct {
	ID   string
	Desc string
	Seq  string
}

// Read parses all records from a FASTA file using the given alphabet,
// preserving file order. Sequence whitespace is absorbed by the reader.
func Read(path string, alpha alphabet.Alphabet) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var records []Record
	sc := seqio.NewScanner(fasta.NewReader(f, linear.NewSeq("", nil, alpha)))
	for sc.Next() {
		s := sc.Seq().(*linear.Seq)
		records = append(records, Record{ID: s.ID, Desc: s.Desc, Seq: s.Seq.String()})
	}
	if err := sc.Error(); err != nil {
		return nil, fmt.Errorf("read %s: %v", path, err)
	}
	return records, nil
}

// Write writes records to path as FASTA wrapped at Width columns, in slice
// order.
func Write(path string, records []Record) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := fasta.NewWriter(f, Width)
	for _, r := range records {
		s := linear.NewSeq(r.ID, alphabet.BytesToLetters([]byte(r.Seq)), alphabet.Protein)
		s.Desc = r.Desc
		if _, err := w.Write(s); err != nil {
			return fmt.Errorf("write %s: %v", path, err)
		}
	}
	return nil
}

// SortByID orders records by id, lexicographic ascending.
func SortByID(records []Record) {
	sort.Slice(records, func(i, j int) bool { return records[i].ID < records[j].ID })
}

// ByID indexes records by id. The first record wins on duplicate ids.
func ByID(records []Record) map[string]Record {
	m := make(map[string]Record)
	for _, r := range records {
		if _, ok := m[r.ID]; !ok {
			m[r.ID] = r
		}
	}
	return m
}

// IDSet returns the set of record ids.
func IDSet(records []Record) map[string]bool {
	s := make(map[string]bool)
	for _, r := range records {
		s[r.ID] = true
	}
	return s
}

// Ungapped counts the non-gap residues of an aligned sequence.
func Ungapped(s string) int {
	n := 0
	for i := 0; i < len(s); i++ {
		if s[i] != '-' && s[i] != '.' {
			n++
		}
	}
	return n
}
