package suggestions

import (
	"log"
	"net/http"
	"sort"
	"strings"

	"nivaas/rdx"
	"nivaas/utils"

	"github.com/julienschmidt/httprouter"
)

const (
	citySetKey     = "suggest:cities"
	maxSuggestions = 10
)

// SuggestCities returns city names matching the ?q= prefix. The candidate set
// is maintained by the indexing worker as listings are created.
func SuggestCities(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	query := strings.ToLower(strings.TrimSpace(r.URL.Query().Get("q")))

	cities, err := rdx.RdxSMembers(citySetKey)
	if err != nil {
		log.Println("City suggestion lookup failed:", err)
		utils.RespondWithJSON(w, http.StatusOK, map[string]any{
			"success": true,
			"data":    []string{},
		})
		return
	}

	matches := make([]string, 0, maxSuggestions)
	for _, city := range cities {
		if query == "" || strings.HasPrefix(strings.ToLower(city), query) {
			matches = append(matches, city)
		}
	}
	sort.Strings(matches)
	if len(matches) > maxSuggestions {
		matches = matches[:maxSuggestions]
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"data":    matches,
	})
}
