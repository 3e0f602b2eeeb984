package util

import (
	"bufio"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"
)

// LoadBranchMap reads an optional "identifier<whitespace>display text"
// mapping file. A missing file is not an error, the report just omits the
// metadata. Blank lines, comment lines (leading '#') and malformed lines
// are skipped.
func LoadBranchMap(path string) map[string]string {
	f, err := os.Open(path)
	if err != nil {
		log.Debugf("no branch map: %s", err)
		return nil
	}
	defer f.Close()

	branchMap := make(map[string]string)
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			log.Debugf("skip malformed branch map line: %q", line)
			continue
		}
		branchMap[fields[0]] = strings.Join(fields[1:], " ")
	}
	if err := scanner.Err(); err != nil {
		log.Warnf("fail to read branch map %s: %s", path, err)
	}
	if len(branchMap) == 0 {
		return nil
	}
	return branchMap
}
