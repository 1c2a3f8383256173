package planttribes

import (
	"bufio"
	"os"
	"os/exec"
	"strconv"
	"strings"
)

// Cmd running hmmsearch of an orthogroup profile against a protein FASTA.
// Hits are returned in the order hmmsearch ranks them. An empty hit list is
// a legitimate outcome, not an error.
func HmmSearch(profile, proteins string, cutoff float64, ncpu int) ([]Hit, error) {
	temp, err := os.CreateTemp(os.TempDir(), "hmmsearch")
	if err != nil {
		return nil, err
	}
	temp.Close()
	defer os.Remove(temp.Name())

	cmd := exec.Command("hmmsearch",
		"--noali",
		"-E", strconv.FormatFloat(cutoff, 'g', -1, 64),
		"--cpu", strconv.Itoa(ncpu),
		"--tblout", temp.Name(),
		profile, proteins)
	run(cmd)

	f, err := os.Open(temp.Name())
	if err != nil {
		return nil, err
	}
	defer f.Close()

	hits := []Hit{}
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 6 {
			continue
		}
		hits = append(hits, parseHit(fields))
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return hits, nil
}
