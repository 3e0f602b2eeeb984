package util

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestBuildReport(t *testing.T) {
	rootDir := t.TempDir()
	dir := filepath.Join(rootDir, "qt-current", "translations")
	writeTestFile(t, filepath.Join(dir, "qtbase_de.ts"), tsCatalog("", "unfinished"))
	writeTestFile(t, filepath.Join(dir, "qtbase_fr.ts"), tsCatalog("obsolete", "vanished"))
	writeTestFile(t, filepath.Join(dir, "qtbase_untranslated.ts"), tsCatalog("unfinished", "unfinished"))

	entities, err := ParseEntities([]string{"qt-current:6.9:dev"})
	if err != nil {
		t.Fatalf("ParseEntities failed: %v", err)
	}
	report, err := BuildReport(entities, ReportOptions{RootDir: rootDir})
	if err != nil {
		t.Fatalf("BuildReport failed: %v", err)
	}

	if len(report.Versions) != 1 {
		t.Fatalf("want 1 entity summary, got %d", len(report.Versions))
	}
	summary := report.Versions[0]
	if summary.ID != "qt-current" || summary.Version != "6.9" || summary.Product != "Qt" {
		t.Errorf("unexpected summary: %+v", summary)
	}
	if summary.StateDescription != "In development, strings still change" {
		t.Errorf("state description: got %q", summary.StateDescription)
	}

	scores := report.Data["qt-current"]
	if got := scores["de"]["qtbase"]; got != 50 {
		t.Errorf("de/qtbase: want 50, got %d", got)
	}
	if got := scores["fr"]["qtbase"]; got != NotApplicable {
		t.Errorf("fr/qtbase: want n/a, got %d", got)
	}
	if _, ok := scores[TemplateLang]; ok {
		t.Errorf("template catalog leaked into the score table: %v", scores)
	}

	templates := report.Templates["qt-current"]
	if filepath.Base(templates["qtbase"]) != "qtbase_untranslated.ts" {
		t.Errorf("qtbase template: got %q", templates["qtbase"])
	}

	if report.Files != nil {
		t.Errorf("file table filled without WithFiles")
	}
	if report.Generated.IsZero() {
		t.Errorf("generated timestamp not set")
	}
}

func TestBuildReportKeepsInputOrder(t *testing.T) {
	entities, err := ParseEntities([]string{
		"qtifw-master:4.8:maint",
		"qt-current:6.9:dev",
		"qtcreator-current:17.0:soft",
	})
	if err != nil {
		t.Fatalf("ParseEntities failed: %v", err)
	}
	// Collection directories do not exist: scores stay empty, order must
	// still follow the input.
	report, err := BuildReport(entities, ReportOptions{RootDir: t.TempDir()})
	if err != nil {
		t.Fatalf("BuildReport failed: %v", err)
	}

	want := []string{"qtifw-master", "qt-current", "qtcreator-current"}
	for i, id := range want {
		if report.Versions[i].ID != id {
			t.Errorf("versions[%d]: want %s, got %s", i, id, report.Versions[i].ID)
		}
		if _, ok := report.Data[id]; !ok {
			t.Errorf("no data entry for %s", id)
		}
	}
}

func TestBuildReportUnknownProduct(t *testing.T) {
	entities := []Entity{
		{CollectionID: "qt-current", Version: "6.9", State: "dev"},
		{CollectionID: "calligra-master", Version: "1.0", State: "dev"},
	}
	report, err := BuildReport(entities, ReportOptions{RootDir: t.TempDir()})
	if err == nil {
		t.Fatalf("want error for unknown product, got report %+v", report)
	}
	if !strings.Contains(err.Error(), "calligra-master") {
		t.Errorf("error does not name the collection: %v", err)
	}
}

func TestBuildReportWithFiles(t *testing.T) {
	rootDir := t.TempDir()
	dir := filepath.Join(rootDir, "qtcreator-current", "share", "qtcreator", "translations")
	writeTestFile(t, filepath.Join(dir, "qtcreator_de.ts"), tsCatalog("", ""))

	entities, _ := ParseEntities([]string{"qtcreator-current:17.0:soft"})
	report, err := BuildReport(entities, ReportOptions{RootDir: rootDir, WithFiles: true})
	if err != nil {
		t.Fatalf("BuildReport failed: %v", err)
	}
	path := report.Files["qtcreator-current"]["de"]["qtcreator"]
	if filepath.Base(path) != "qtcreator_de.ts" {
		t.Errorf("file table: got %q", path)
	}
	if got := report.Data["qtcreator-current"]["de"]["qtcreator"]; got != 100 {
		t.Errorf("de/qtcreator: want 100, got %d", got)
	}
}

func TestBuildReportBranchMap(t *testing.T) {
	rootDir := t.TempDir()
	branchMap := filepath.Join(rootDir, "branch-map.txt")
	writeTestFile(t, branchMap, "qt-current Qt dev branch\n")

	entities, _ := ParseEntities([]string{"qt-current:6.9:dev"})
	report, err := BuildReport(entities, ReportOptions{
		RootDir:       rootDir,
		BranchMapFile: branchMap,
	})
	if err != nil {
		t.Fatalf("BuildReport failed: %v", err)
	}
	if report.BranchMap["qt-current"] != "Qt dev branch" {
		t.Errorf("branch map: got %v", report.BranchMap)
	}

	// A missing branch map file is not an error, the metadata is omitted.
	report, err = BuildReport(entities, ReportOptions{
		RootDir:       rootDir,
		BranchMapFile: filepath.Join(rootDir, "missing.txt"),
	})
	if err != nil {
		t.Fatalf("BuildReport failed: %v", err)
	}
	if report.BranchMap != nil {
		t.Errorf("want nil branch map, got %v", report.BranchMap)
	}
}
