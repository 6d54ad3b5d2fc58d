package handlers

import (
	"fmt"
	"greencommute-server/internals"
	"log"
	"net/http"

	"github.com/google/uuid"
)

func HandleReport(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case "GET":
		getReport(w, r)
	default:
		log.Println("HandleReport received an unsupported method")
		http.Error(w, "Method not supported", http.StatusMethodNotAllowed)
	}
}

// getReport streams the full challenge result set as a CSV download. Each
// generation gets an id so a downloaded file can be matched to the server log.
func getReport(w http.ResponseWriter, r *http.Request) {
	reportID := uuid.New()

	engine, err := newResultsEngine()
	if err != nil {
		log.Println("Error while interacting with the database: ", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	records, err := engine.UserResults()
	if err != nil {
		log.Printf("Error computing report %s: %v", reportID, err)
		http.Error(w, "Error computing report", http.StatusInternalServerError)
		return
	}

	community := r.URL.Query().Get("community")
	if community != "" {
		records, err = engine.FilterByCommunity(community)
		if err != nil {
			log.Printf("Error computing report %s: %v", reportID, err)
			http.Error(w, "Error computing report", http.StatusInternalServerError)
			return
		}
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="commute_report_%s.csv"`, reportID))

	err = internals.WriteCSV(w, records)
	if err != nil {
		// headers are already sent, nothing to do but log
		log.Printf("Error writing report %s: %v", reportID, err)
		return
	}

	log.Printf("Generated report %s with %d rows", reportID, len(records))
}
