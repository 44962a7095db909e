package utils

import "encoding/json"

// Older clients sent capitalized food fields (Name, Calories, ...) while the
// current UI sends lowercase. The alias table keeps that duck-typing in one
// place so the rest of the API stays strongly typed.
var foodFieldAliases = map[string][]string{
	"name":     {"name", "Name"},
	"calories": {"calories", "Calories", "cal"},
	"protein":  {"protein", "Protein"},
	"fat":      {"fat", "Fat"},
	"carbs":    {"carbs", "Carbs"},
	"tags":     {"tags", "Tags"},
}

// NormalizeFoodPayload folds legacy field-name variants onto canonical
// lowercase keys. The first alias present in the payload wins.
func NormalizeFoodPayload(raw map[string]json.RawMessage) map[string]json.RawMessage {
	out := make(map[string]json.RawMessage, len(foodFieldAliases))
	for canonical, aliases := range foodFieldAliases {
		for _, a := range aliases {
			if v, ok := raw[a]; ok {
				out[canonical] = v
				break
			}
		}
	}
	return out
}
