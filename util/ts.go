// Package util provides catalog parsing, aggregation and report rendering.
package util

import (
	"encoding/xml"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"
)

// tsDocument models the subset of the Qt Linguist catalog format needed for
// counting: TS > context > message > translation[@type].
type tsDocument struct {
	XMLName  xml.Name    `xml:"TS"`
	Contexts []tsContext `xml:"context"`
}

type tsContext struct {
	Messages []tsMessage `xml:"message"`
}

type tsMessage struct {
	Translation tsTranslation `xml:"translation"`
}

type tsTranslation struct {
	Type string `xml:"type,attr"`
}

// CountTsStats reads a .ts catalog and returns its unit counts. A missing or
// unreadable file counts as an empty catalog, so one broken catalog never
// aborts a whole report run. When the file is not well-formed XML, the
// tolerant text scanner is used instead.
func CountTsStats(tsFile string) TsStats {
	data, err := os.ReadFile(tsFile)
	if err != nil {
		log.Debugf("cannot read %s: %s", tsFile, err)
		return TsStats{}
	}
	stats, err := ParseTsStats(data)
	if err != nil {
		log.Warnf("fall back to text scan for %s: %s", tsFile, err)
		return ScanTsStats(data)
	}
	return stats
}

// ParseTsStats counts translation units using the XML parser. Units marked
// obsolete or vanished are excluded from both counts; an unfinished unit
// counts toward total only.
func ParseTsStats(data []byte) (TsStats, error) {
	var (
		doc   tsDocument
		stats TsStats
	)
	if err := xml.Unmarshal(data, &doc); err != nil {
		return TsStats{}, err
	}
	for _, context := range doc.Contexts {
		for _, message := range context.Messages {
			countUnit(&stats, message.Translation.Type)
		}
	}
	return stats, nil
}

// ScanTsStats counts translation units treating the catalog as opaque text.
// Message blocks are delimited by "<message" and "</message>"; the status is
// taken from the type attribute of the translation tag inside the block.
// For a well-formed catalog the result is identical to ParseTsStats.
func ScanTsStats(data []byte) TsStats {
	var stats TsStats
	text := string(data)
	for {
		start := strings.Index(text, "<message")
		if start < 0 {
			break
		}
		text = text[start:]
		end := strings.Index(text, "</message>")
		if end < 0 {
			break
		}
		countUnit(&stats, translationType(text[:end]))
		text = text[end+len("</message>"):]
	}
	return stats
}

// countUnit applies the shared counting rules for one unit status.
func countUnit(stats *TsStats, status string) {
	switch status {
	case "obsolete", "vanished":
		// Excluded from both numerator and denominator.
	case "unfinished":
		stats.Total++
	default:
		stats.Total++
		stats.Translated++
	}
}

// translationType extracts the type attribute of the translation tag in a
// message block. An absent attribute means the unit is finished.
func translationType(block string) string {
	idx := strings.Index(block, "<translation")
	if idx < 0 {
		return ""
	}
	tag := block[idx:]
	if end := strings.Index(tag, ">"); end >= 0 {
		tag = tag[:end]
	}
	for _, status := range []string{"unfinished", "obsolete", "vanished"} {
		if strings.Contains(tag, `type="`+status+`"`) ||
			strings.Contains(tag, `type='`+status+`'`) {
			return status
		}
	}
	return ""
}
