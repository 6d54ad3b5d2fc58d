package handlers

import (
	"encoding/json"
	"greencommute-server/db"
	"greencommute-server/internals"
	"greencommute-server/model"
	"log"
	"net/http"
	"strconv"
)

// newResultsEngine builds a fresh statistics engine for one request. The
// engine memoizes aggregates for its own lifetime only, so every request sees
// the current trip and baseline data.
func newResultsEngine() (*internals.Results, error) {
	modeDAO := db.NewModeDAO(db.GetDB())
	modes, err := modeDAO.GetAllModes()
	if err != nil {
		return nil, err
	}

	userDAO := db.NewUserDAO(db.GetDB())
	return internals.NewResults(userDAO, modes), nil
}

func HandleLeaderboard(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case "GET":
		getLeaderboard(w, r)
	default:
		log.Println("HandleLeaderboard received an unsupported method")
		http.Error(w, "Method not supported", http.StatusMethodNotAllowed)
	}
}

func getLeaderboard(w http.ResponseWriter, r *http.Request) {
	view := r.URL.Query().Get("view")
	if view == "" {
		view = "mileage"
	}
	community := r.URL.Query().Get("community")
	mode := r.URL.Query().Get("mode")
	destination := r.URL.Query().Get("destination")

	engine, err := newResultsEngine()
	if err != nil {
		log.Println("Error while interacting with the database: ", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	var payload interface{}
	switch view {
	case "mileage":
		payload, err = engine.UsersByMileage(internals.Filter{Mode: mode, Community: community})
	case "green_trips":
		if community != "" {
			payload, err = engine.GreenTripsFor(community)
		} else {
			payload, err = engine.UsersByGreenTrips()
		}
	case "shopping":
		if community != "" {
			payload, err = engine.GreenShoppingTripsFor(community)
		} else {
			payload, err = engine.GreenShoppingTrips()
		}
	case "greenest":
		if community != "" {
			payload, err = engine.GreenestTravelFor(community)
		} else {
			payload, err = engine.GreenestTravel()
		}
	case "improved":
		if community != "" {
			payload, err = engine.MostImprovedOverBaselineFor(community)
		} else {
			payload, err = engine.MostImprovedOverBaseline()
		}
	case "largest_groups":
		if community != "" {
			payload, err = engine.LargestGroupsFor(community)
		} else {
			payload, err = engine.LargestGroups()
		}
	case "greenest_groups":
		if destination == "" {
			log.Println("Missing destination for greenest_groups view")
			http.Error(w, "A destination is required for this view", http.StatusBadRequest)
			return
		}
		payload, err = engine.GreenestGroupsOfType(destination)
	default:
		log.Println("Unknown leaderboard view: ", view)
		http.Error(w, "Unknown leaderboard view", http.StatusBadRequest)
		return
	}
	if err != nil {
		log.Println("Error computing leaderboard: ", err)
		http.Error(w, "Error computing leaderboard", http.StatusInternalServerError)
		return
	}

	switch records := payload.(type) {
	case []model.UserStats:
		payload = paginateUsers(records, r)
	case []model.GroupStats:
		payload = paginateGroups(records, r)
	}

	w.Header().Set("Content-Type", "application/json")
	err = json.NewEncoder(w).Encode(payload)
	if err != nil {
		log.Println("Error encoding JSON: ", err)
		http.Error(w, "Error encoding response", http.StatusInternalServerError)
	}
}

func paginateUsers(records []model.UserStats, r *http.Request) []model.UserStats {
	offset, limit := pageParams(r, len(records))
	return records[offset : offset+limit]
}

func paginateGroups(records []model.GroupStats, r *http.Request) []model.GroupStats {
	offset, limit := pageParams(r, len(records))
	return records[offset : offset+limit]
}

// pageParams clamps the optional offset/limit query parameters to the result
// size, so slicing is always valid.
func pageParams(r *http.Request, size int) (int, int) {
	offset, err := strconv.Atoi(r.URL.Query().Get("offset"))
	if err != nil || offset < 0 {
		offset = 0
	}
	if offset > size {
		offset = size
	}

	limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil || limit <= 0 {
		limit = size
	}
	if offset+limit > size {
		limit = size - offset
	}

	return offset, limit
}
