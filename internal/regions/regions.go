// Package regions holds the canonical region table for the 25 Ukrainian
// oblasts and the reconciliation rule that maps file-local region ids
// (the provinceID the source embeds in downloaded filenames) to canonical
// ids. All tables are fixed at startup and read-only.
package regions

import "sort"

// Region is one entry of the canonical region table.
type Region struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// names maps canonical region ids to display names, keyed by the official
// regional code order.
var names = map[int]string{
	1: "Вінницька", 2: "Волинська", 3: "Дніпропетровська", 4: "Донецька", 5: "Житомирська",
	6: "Закарпатська", 7: "Запорізька", 8: "Івано-Франківська", 9: "Київська", 10: "Кіровоградська",
	11: "Луганська", 12: "Львівська", 13: "Миколаївська", 14: "Одеська", 15: "Полтавська",
	16: "Рівненська", 17: "Сумська", 18: "Тернопільська", 19: "Харківська", 20: "Херсонська",
	21: "Хмельницька", 22: "Черкаська", 23: "Чернівецька", 24: "Чернігівська", 25: "Республіка Крим",
}

// idsByName is the reverse of names, built once at init.
var idsByName = func() map[string]int {
	m := make(map[string]int, len(names))
	for id, name := range names {
		m[name] = id
	}
	return m
}()

// localToCanonical maps file-local region ids to canonical ids. The source
// enumerates regions in download order, which diverges from the official
// code order; this table is empirical and preserved verbatim from the
// upstream numbering (locals up to 27 exist, and two locals share a
// canonical target). Locals absent from the table map to themselves.
var localToCanonical = map[int]int{
	1: 22, 2: 24, 3: 23, 4: 25, 5: 3, 6: 4, 7: 8, 8: 19, 9: 20, 10: 21,
	11: 9, 13: 10, 14: 11, 15: 12, 16: 13, 17: 14, 18: 15, 19: 16, 21: 17,
	22: 18, 23: 6, 24: 1, 25: 2, 26: 6, 27: 5,
}

// excluded lists canonical ids dropped entirely from the dataset
// (known-bad or duplicate sources).
var excluded = map[int]bool{12: true, 20: true}

// Canonical maps a file-local region id to its canonical id. Locals with
// no remap entry pass through unchanged.
func Canonical(localID int) int {
	if canonical, ok := localToCanonical[localID]; ok {
		return canonical
	}
	return localID
}

// Excluded reports whether a canonical id is dropped from the dataset.
func Excluded(canonicalID int) bool {
	return excluded[canonicalID]
}

// Name returns the display name for a canonical id, or "" when unknown.
func Name(canonicalID int) string {
	return names[canonicalID]
}

// IDByName resolves a display name to its canonical id. The second return
// is false when the name is unknown.
func IDByName(name string) (int, bool) {
	id, ok := idsByName[name]
	return id, ok
}

// List returns the full canonical region table ordered by id, for the
// dashboard's region selector.
func List() []Region {
	regions := make([]Region, 0, len(names))
	for id, name := range names {
		regions = append(regions, Region{ID: id, Name: name})
	}
	sort.Slice(regions, func(i, j int) bool {
		return regions[i].ID < regions[j].ID
	})
	return regions
}
