package util

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// tsCatalog builds a well-formed .ts catalog with one message per status.
// An empty status means a finished translation.
func tsCatalog(statuses ...string) string {
	var b strings.Builder
	b.WriteString("<?xml version=\"1.0\" encoding=\"utf-8\"?>\n")
	b.WriteString("<!DOCTYPE TS>\n")
	b.WriteString("<TS version=\"2.1\" language=\"de\">\n")
	b.WriteString("<context>\n    <name>QObject</name>\n")
	for i, status := range statuses {
		b.WriteString("    <message>\n")
		fmt.Fprintf(&b, "        <source>string %d</source>\n", i)
		if status == "" {
			b.WriteString("        <translation>ok</translation>\n")
		} else {
			fmt.Fprintf(&b, "        <translation type=\"%s\"></translation>\n", status)
		}
		b.WriteString("    </message>\n")
	}
	b.WriteString("</context>\n</TS>\n")
	return b.String()
}

func TestParseTsStats(t *testing.T) {
	catalog := tsCatalog("", "unfinished", "obsolete", "vanished", "")
	stats, err := ParseTsStats([]byte(catalog))
	if err != nil {
		t.Fatalf("ParseTsStats failed: %v", err)
	}
	if stats.Translated != 2 {
		t.Errorf("translated: want 2, got %d", stats.Translated)
	}
	if stats.Total != 3 {
		t.Errorf("total: want 3, got %d", stats.Total)
	}
}

func TestObsoleteAndVanishedExcluded(t *testing.T) {
	// 5 units: 2 obsolete, 3 finished. The obsolete units contribute to
	// neither count, so the catalog is fully translated.
	catalog := tsCatalog("", "", "", "obsolete", "obsolete")
	stats, err := ParseTsStats([]byte(catalog))
	if err != nil {
		t.Fatalf("ParseTsStats failed: %v", err)
	}
	if stats.Total != 3 || stats.Translated != 3 {
		t.Errorf("want 3/3, got %d/%d", stats.Translated, stats.Total)
	}
	if stats.Percentage() != 100 {
		t.Errorf("percentage: want 100, got %d", stats.Percentage())
	}
}

func TestScanMatchesParse(t *testing.T) {
	for _, statuses := range [][]string{
		{},
		{""},
		{"unfinished"},
		{"obsolete"},
		{"vanished"},
		{"", "unfinished"},
		{"", "unfinished", "obsolete", "vanished", ""},
		{"obsolete", "vanished"},
	} {
		data := []byte(tsCatalog(statuses...))
		parsed, err := ParseTsStats(data)
		if err != nil {
			t.Fatalf("ParseTsStats failed for %v: %v", statuses, err)
		}
		scanned := ScanTsStats(data)
		if parsed != scanned {
			t.Errorf("parser mismatch for %v: parse %+v, scan %+v",
				statuses, parsed, scanned)
		}
	}
}

func TestScanMatchesParseSingleQuotedAttr(t *testing.T) {
	catalog := `<TS version="2.1">
<context>
    <message>
        <source>a</source>
        <translation type='unfinished'/>
    </message>
    <message>
        <source>b</source>
        <translation>b!</translation>
    </message>
</context>
</TS>
`
	parsed, err := ParseTsStats([]byte(catalog))
	if err != nil {
		t.Fatalf("ParseTsStats failed: %v", err)
	}
	scanned := ScanTsStats([]byte(catalog))
	if parsed != scanned {
		t.Errorf("parser mismatch: parse %+v, scan %+v", parsed, scanned)
	}
	if parsed.Translated != 1 || parsed.Total != 2 {
		t.Errorf("want 1/2, got %d/%d", parsed.Translated, parsed.Total)
	}
}

func TestCountTsStatsMissingFile(t *testing.T) {
	stats := CountTsStats(filepath.Join(t.TempDir(), "missing.ts"))
	if stats != (TsStats{}) {
		t.Errorf("missing file: want zero stats, got %+v", stats)
	}
	if stats.Percentage() != NotApplicable {
		t.Errorf("missing file: want n/a, got %d", stats.Percentage())
	}
}

func TestCountTsStatsMalformedXML(t *testing.T) {
	// Unclosed TS element: the XML parser fails, the text scanner still
	// recognizes the message blocks.
	catalog := `<TS version="2.1"><context>
<message><source>a</source><translation type="unfinished"></translation></message>
<message><source>b</source><translation>b!</translation></message>
</context>
`
	tmpDir := t.TempDir()
	tsFile := filepath.Join(tmpDir, "broken.ts")
	if err := os.WriteFile(tsFile, []byte(catalog), 0644); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}

	stats := CountTsStats(tsFile)
	if stats.Translated != 1 || stats.Total != 2 {
		t.Errorf("want 1/2, got %d/%d", stats.Translated, stats.Total)
	}
}
