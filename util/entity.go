package util

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
)

// Entity describes one product+branch collection to report on, parsed from
// a "collectionId:version:state" descriptor.
type Entity struct {
	CollectionID string
	Version      string
	State        string
}

var entityRegex = regexp.MustCompile(`^([\w-]+):([\w.]+):([\w-]+)$`)

// lifecycleStates maps a branch lifecycle state to its display description.
// The keys are the only states accepted in entity descriptors.
var lifecycleStates = map[string]string{
	"dev":   "In development, strings still change",
	"soft":  "Soft string freeze, only urgent string changes",
	"hard":  "Hard string freeze, translate now",
	"maint": "Maintained, translation updates accepted",
	"lts":   "Long-term support, critical fixes only",
	"old":   "Unsupported, translations closed",
}

// ParseEntity parses one entity descriptor of the form
// "collectionId:version:state". The state must be a known lifecycle state.
func ParseEntity(token string) (Entity, error) {
	m := entityRegex.FindStringSubmatch(token)
	if m == nil {
		return Entity{}, fmt.Errorf(
			"malformed entity descriptor %q, want <collectionId>:<version>:<state>",
			token)
	}
	entity := Entity{CollectionID: m[1], Version: m[2], State: m[3]}
	if _, ok := lifecycleStates[entity.State]; !ok {
		return Entity{}, fmt.Errorf(
			"unknown lifecycle state %q in entity %q, want one of: %s",
			entity.State, token, strings.Join(knownStates(), ", "))
	}
	return entity, nil
}

// ParseEntities parses descriptors in order, failing on the first bad token.
func ParseEntities(tokens []string) ([]Entity, error) {
	entities := make([]Entity, 0, len(tokens))
	for _, token := range tokens {
		entity, err := ParseEntity(token)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}

// StateDescription returns the display description of the lifecycle state.
func (v Entity) StateDescription() string {
	return lifecycleStates[v.State]
}

func knownStates() []string {
	states := make([]string, 0, len(lifecycleStates))
	for state := range lifecycleStates {
		states = append(states, state)
	}
	sort.Strings(states)
	return states
}
