package util

import (
	"fmt"
	"os"

	"github.com/tidwall/gjson"
)

// ScoreChange is one per-module score difference between two reports.
type ScoreChange struct {
	Entity string
	Lang   string
	Module string
	Old    int
	New    int
}

// String formats a change as "entity lang/module: old -> new".
func (v ScoreChange) String() string {
	return fmt.Sprintf("%s %s/%s: %s -> %s",
		v.Entity, v.Lang, v.Module, FormatScore(v.Old), FormatScore(v.New))
}

// CompareReportFiles diffs the data sections of two report JSON files.
func CompareReportFiles(oldFile, newFile string) ([]ScoreChange, error) {
	oldData, err := os.ReadFile(oldFile)
	if err != nil {
		return nil, fmt.Errorf("fail to read %s: %w", oldFile, err)
	}
	newData, err := os.ReadFile(newFile)
	if err != nil {
		return nil, fmt.Errorf("fail to read %s: %w", newFile, err)
	}
	return CompareReportData(oldData, newData), nil
}

// CompareReportData diffs the data sections of two report JSON documents.
// gjson tolerates hand-edited or partially damaged documents; a score
// missing on either side is treated as NotApplicable. Order follows the
// documents, which the JSON renderer keeps sorted.
func CompareReportData(oldData, newData []byte) []ScoreChange {
	var changes []ScoreChange
	seen := make(map[string]bool)

	walkReportData(newData, func(entity, lang, module string, score int) {
		path := entity + "." + lang + "." + module
		seen[path] = true
		old := NotApplicable
		if result := gjson.GetBytes(oldData, "data."+path); result.Exists() {
			old = int(result.Int())
		}
		if old != score {
			changes = append(changes, ScoreChange{
				Entity: entity, Lang: lang, Module: module, Old: old, New: score,
			})
		}
	})

	// Scores dropped from the new report.
	walkReportData(oldData, func(entity, lang, module string, score int) {
		path := entity + "." + lang + "." + module
		if seen[path] || score == NotApplicable {
			return
		}
		changes = append(changes, ScoreChange{
			Entity: entity, Lang: lang, Module: module, Old: score, New: NotApplicable,
		})
	})

	return changes
}

func walkReportData(data []byte, fn func(entity, lang, module string, score int)) {
	gjson.GetBytes(data, "data").ForEach(func(entity, langs gjson.Result) bool {
		langs.ForEach(func(lang, modules gjson.Result) bool {
			modules.ForEach(func(module, score gjson.Result) bool {
				fn(entity.String(), lang.String(), module.String(), int(score.Int()))
				return true
			})
			return true
		})
		return true
	})
}
