package util

import (
	"fmt"
	"strings"
)

// ProductStrategy describes the fixed catalog layout of one product family.
// Strategies are data, not behavior: an ordered module list plus naming and
// layout conventions consumed by the scanner and the report builder.
type ProductStrategy struct {
	// Product is the display name used in entity summaries.
	Product string

	// CollectionPrefix selects this strategy by entity collectionId prefix.
	CollectionPrefix string

	// Subdir is the path of the catalog directory below the collection root.
	Subdir string

	// Modules are the catalog filename prefixes, tried in declared order
	// when attributing a file to a module; the first match wins. More
	// specific names must come before shorter ones sharing a prefix, e.g.
	// qt_help before the aggregate qt catalog.
	Modules []string
}

// qtModules is the module list of the umbrella Qt product.
var qtModules = []string{
	"qtbase",
	"qtconnectivity",
	"qtdeclarative",
	"qtlocation",
	"qtmultimedia",
	"qtserialport",
	"qtwebengine",
	"qtwebsockets",
	"designer",
	"linguist",
	"assistant",
	"qt_help",
	"qt",
}

// productStrategies is the closed set of known products. Order matters for
// strategy selection too: qtcreator- and qtifw- share the qt prefix and must
// be tried before the bare qt- entry.
var productStrategies = []ProductStrategy{
	{
		Product:          "Qt Creator",
		CollectionPrefix: "qtcreator-",
		Subdir:           "share/qtcreator/translations",
		Modules:          []string{"qtcreator"},
	},
	{
		Product:          "Qt Installer Framework",
		CollectionPrefix: "qtifw-",
		Subdir:           "src/sdk/translations",
		Modules:          []string{"ifw"},
	},
	{
		Product:          "Qt",
		CollectionPrefix: "qt-",
		Subdir:           "translations",
		Modules:          qtModules,
	},
}

// MatchProduct returns the strategy for a collectionId. An unmatched
// collection is a fatal input error, never silently skipped.
func MatchProduct(collectionID string) (*ProductStrategy, error) {
	for i := range productStrategies {
		if strings.HasPrefix(collectionID, productStrategies[i].CollectionPrefix) {
			return &productStrategies[i], nil
		}
	}
	return nil, fmt.Errorf("collection %q matches no known product", collectionID)
}
