package handlers

import (
	"encoding/json"
	"greencommute-server/db"
	"greencommute-server/model"
	"log"
	"net/http"
)

func HandleBaselines(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case "PUT":
		updateBaseline(w, r)
	default:
		log.Println("HandleBaselines received an unsupported method")
		http.Error(w, "Method not supported", http.StatusMethodNotAllowed)
	}
}

func updateBaseline(w http.ResponseWriter, r *http.Request) {
	// only the owner can update their baseline survey
	userID, err := verifyToken(r)
	if err != nil {
		log.Println("Invalid token: ", err)
		http.Error(w, "Invalid token", http.StatusUnauthorized)
		return
	}

	var updated model.Baseline
	err = json.NewDecoder(r.Body).Decode(&updated)
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

	// check survey values
	if updated.WorkGreen < 0 || updated.WorkAlone < 0 ||
		updated.SchoolGreen < 0 || updated.SchoolAlone < 0 ||
		updated.ErrandsGreen < 0 || updated.ErrandsAlone < 0 {
		log.Println("Negative baseline mileage")
		http.Error(w, "Baseline mileages cannot be negative", http.StatusBadRequest)
		return
	}

	baselineDAO := db.NewBaselineDAO(db.GetDB())
	baseline, err := baselineDAO.GetBaselineByUserId(userID)
	if err != nil {
		log.Println("Baseline not found: ", err)
		http.Error(w, "Baseline could not be found", http.StatusNotFound)
		return
	}

	baseline.WorkGreen = updated.WorkGreen
	baseline.WorkAlone = updated.WorkAlone
	baseline.SchoolGreen = updated.SchoolGreen
	baseline.SchoolAlone = updated.SchoolAlone
	baseline.ErrandsGreen = updated.ErrandsGreen
	baseline.ErrandsAlone = updated.ErrandsAlone

	err = baselineDAO.UpdateBaseline(&baseline)
	if err != nil {
		log.Println("Error while interacting with the database: ", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	err = json.NewEncoder(w).Encode(baseline)
	if err != nil {
		log.Println("Error encoding JSON: ", err)
		http.Error(w, "Error encoding response", http.StatusInternalServerError)
	}
}
