package util

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// TemplateLang is the reserved language token of untranslated template
// catalogs. Files carrying it are reported as templates, never as a
// language entry in the score table.
const TemplateLang = "untranslated"

// CatalogFile is one discovered catalog with its attribution.
type CatalogFile struct {
	Module string
	Lang   string
	Path   string
}

var langRegex = regexp.MustCompile(`^[a-z]{2}(_[A-Z]{2})?$`)

// ScanCatalogs enumerates the .ts catalogs under dir that belong to one of
// the given modules, attributing each file to (module, language). Modules
// are tried in their declared order, first matching prefix wins. Files
// whose language token is not a two-letter code (optionally with _RR
// region) are skipped, as are template catalogs. Results follow directory
// order, which os.ReadDir keeps sorted by filename.
func ScanCatalogs(dir string, modules []string) ([]CatalogFile, error) {
	dirEntries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var files []CatalogFile
	for _, de := range dirEntries {
		if de.IsDir() || !strings.HasSuffix(de.Name(), ".ts") {
			continue
		}
		base := strings.TrimSuffix(de.Name(), ".ts")
		module, lang, ok := splitCatalogName(base, modules)
		if !ok || lang == TemplateLang || !langRegex.MatchString(lang) {
			continue
		}
		files = append(files, CatalogFile{
			Module: module,
			Lang:   lang,
			Path:   filepath.Join(dir, de.Name()),
		})
	}
	return files, nil
}

// TemplateCatalogs returns the per-module template catalog paths that exist
// under dir, e.g. qtbase_untranslated.ts for module qtbase.
func TemplateCatalogs(dir string, modules []string) map[string]string {
	templates := make(map[string]string)
	for _, module := range modules {
		path := filepath.Join(dir, module+"_"+TemplateLang+".ts")
		if IsFile(path) {
			templates[module] = path
		}
	}
	return templates
}

// splitCatalogName attributes a catalog basename to the first module whose
// prefix matches, returning the module and the remaining language token.
func splitCatalogName(base string, modules []string) (module, lang string, ok bool) {
	for _, m := range modules {
		if strings.HasPrefix(base, m+"_") {
			return m, strings.TrimPrefix(base, m+"_"), true
		}
	}
	return "", "", false
}
