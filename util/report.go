package util

import (
	"fmt"
	"path/filepath"
	"time"

	log "github.com/sirupsen/logrus"
)

// EntitySummary is the per-entity header information of a report.
type EntitySummary struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	Version          string `json:"version"`
	Product          string `json:"product"`
	State            string `json:"state"`
	StateDescription string `json:"stateDescription"`
}

// Report is the complete in-memory result of one pipeline run. Both the
// JSON document and the HTML page are rendered from this one value, so the
// two outputs can never drift apart.
type Report struct {
	Generated time.Time

	// Versions lists entity summaries in input order.
	Versions []EntitySummary

	// Data maps entityId -> language -> module -> percentage or NotApplicable.
	Data map[string]map[string]map[string]int

	// Files mirrors Data with catalog paths; filled when WithFiles is set.
	Files map[string]map[string]map[string]string

	// Templates maps entityId -> module -> template catalog path.
	Templates map[string]map[string]string

	// BranchMap holds optional informational metadata, nil when absent.
	BranchMap map[string]string
}

// ReportOptions controls one report run.
type ReportOptions struct {
	RootDir       string
	BranchMapFile string
	WithFiles     bool
}

// BuildReport runs the aggregation pipeline over the entities, strictly in
// input order. An unknown product prefix is fatal and aborts the whole run
// before any directory is touched; an unreadable catalog or directory only
// yields n/a scores for the affected entries.
func BuildReport(entities []Entity, options ReportOptions) (*Report, error) {
	// Resolve all strategies up front so a bad entity late in the list
	// cannot waste a half-built report.
	strategies := make([]*ProductStrategy, len(entities))
	for i, entity := range entities {
		strategy, err := MatchProduct(entity.CollectionID)
		if err != nil {
			return nil, err
		}
		strategies[i] = strategy
	}

	report := &Report{
		Generated: time.Now().UTC(),
		Data:      make(map[string]map[string]map[string]int),
		Templates: make(map[string]map[string]string),
	}
	if options.WithFiles {
		report.Files = make(map[string]map[string]map[string]string)
	}

	for i, entity := range entities {
		strategy := strategies[i]
		report.Versions = append(report.Versions, EntitySummary{
			ID:               entity.CollectionID,
			Name:             fmt.Sprintf("%s %s", strategy.Product, entity.Version),
			Version:          entity.Version,
			Product:          strategy.Product,
			State:            entity.State,
			StateDescription: entity.StateDescription(),
		})

		dir := filepath.Join(options.RootDir, entity.CollectionID, strategy.Subdir)
		files, err := ScanCatalogs(dir, strategy.Modules)
		if err != nil {
			log.Warnf("cannot scan %s: %s", dir, err)
		}

		scores := make(map[string]map[string]int)
		paths := make(map[string]map[string]string)
		for _, file := range files {
			stats := CountTsStats(file.Path)
			if scores[file.Lang] == nil {
				scores[file.Lang] = make(map[string]int)
				paths[file.Lang] = make(map[string]string)
			}
			scores[file.Lang][file.Module] = stats.Percentage()
			paths[file.Lang][file.Module] = file.Path
		}
		report.Data[entity.CollectionID] = scores
		report.Templates[entity.CollectionID] = TemplateCatalogs(dir, strategy.Modules)
		if options.WithFiles {
			report.Files[entity.CollectionID] = paths
		}
	}

	if options.BranchMapFile != "" {
		report.BranchMap = LoadBranchMap(options.BranchMapFile)
	}
	return report, nil
}
