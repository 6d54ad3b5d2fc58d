package handlers

import (
	"encoding/json"
	"greencommute-server/db"
	"greencommute-server/model"
	"log"
	"net/http"
	"strconv"
	"time"
)

type tripRequest struct {
	Mode        string  `json:"mode"`
	Destination string  `json:"destination"`
	Distance    float64 `json:"distance"`
	Date        string  `json:"date"`
}

func HandleTrips(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case "GET":
		getTripsByUser(w, r)
	case "POST":
		addTrip(w, r)
	default:
		log.Println("HandleTrips received an unsupported method")
		http.Error(w, "Method not supported", http.StatusMethodNotAllowed)
	}
}

func getTripsByUser(w http.ResponseWriter, r *http.Request) {
	userIDStr := r.URL.Query().Get("user_id")
	userID, err := strconv.Atoi(userIDStr)
	if err != nil || userID <= 0 {
		log.Println("User id is not valid")
		http.Error(w, "The provided user id is not valid", http.StatusBadRequest)
		return
	}

	tripDAO := db.NewTripDAO(db.GetDB())
	trips, err := tripDAO.GetTripsByUserId(userID)
	if err != nil {
		log.Println("Error while interacting with the database: ", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	err = json.NewEncoder(w).Encode(trips)
	if err != nil {
		log.Println("Error encoding JSON: ", err)
		http.Error(w, "Error encoding response", http.StatusInternalServerError)
	}
}

func addTrip(w http.ResponseWriter, r *http.Request) {
	// only the owner can log trips
	userID, err := verifyToken(r)
	if err != nil {
		log.Println("Invalid token: ", err)
		http.Error(w, "Invalid token", http.StatusUnauthorized)
		return
	}

	var request tripRequest
	err = json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		log.Println("Error while decoding JSON: ", err)
		http.Error(w, "Wrong data provided", http.StatusBadRequest)
		return
	}
	defer func() {
		err = r.Body.Close()
		if err != nil {
			log.Println("Error closing request body:", err)
		}
	}()

	// check distance
	if request.Distance < 0 {
		log.Println("Negative trip distance")
		http.Error(w, "Distance cannot be negative", http.StatusBadRequest)
		return
	}
	// check date format
	date, err := time.Parse("2006-01-02", request.Date)
	if err != nil {
		log.Println("Invalid date: ", err)
		http.Error(w, "Invalid date format", http.StatusBadRequest)
		return
	}
	// check mode and destination against reference data
	modeDAO := db.NewModeDAO(db.GetDB())
	mode, err := modeDAO.GetModeByName(request.Mode)
	if err != nil {
		log.Println("Unknown mode: ", err)
		http.Error(w, "Unknown mode", http.StatusBadRequest)
		return
	}
	destination, err := modeDAO.GetDestinationByName(request.Destination)
	if err != nil {
		log.Println("Unknown destination: ", err)
		http.Error(w, "Unknown destination", http.StatusBadRequest)
		return
	}

	trip := model.Trip{
		UserID:        userID,
		ModeID:        mode.ModeID,
		DestinationID: destination.DestinationID,
		Distance:      request.Distance,
		Date:          date,
	}

	tripDAO := db.NewTripDAO(db.GetDB())
	err = tripDAO.CreateTrip(&trip)
	if err != nil {
		log.Println("Error while interacting with the database: ", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	err = json.NewEncoder(w).Encode(trip)
	if err != nil {
		log.Println("Error encoding JSON: ", err)
		http.Error(w, "Error encoding response", http.StatusInternalServerError)
	}
}
