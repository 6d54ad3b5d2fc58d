package handlers

import (
	"encoding/json"
	"greencommute-server/db"
	"greencommute-server/model"
	"log"
	"net/http"
	"strconv"
)

func HandleUsers(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case "GET":
		getUserById(w, r)
	case "POST":
		addUser(w, r)
	default:
		log.Println("HandleUsers received an unsupported method")
		http.Error(w, "Method not supported", http.StatusMethodNotAllowed)
	}
}

func getUserById(w http.ResponseWriter, r *http.Request) {
	idStr := r.URL.Query().Get("id")

	// check id present
	if idStr == "" {
		log.Println("User id is missing")
		http.Error(w, "User id is required", http.StatusBadRequest)
		return
	}
	// check id format
	id, err := strconv.Atoi(idStr)
	if err != nil || id <= 0 {
		log.Println("User id is not valid")
		http.Error(w, "The provided id is not valid", http.StatusBadRequest)
		return
	}

	userDAO := db.NewUserDAO(db.GetDB())

	user, err := userDAO.GetUserById(id)
	if err != nil {
		log.Println("User not found: ", err)
		http.Error(w, "User could not be found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	err = json.NewEncoder(w).Encode(user)
	if err != nil {
		log.Println(err)
		http.Error(w, "Error encoding", http.StatusInternalServerError)
		return
	}
}

func addUser(w http.ResponseWriter, r *http.Request) {
	var user model.User
	err := json.NewDecoder(r.Body).Decode(&user)
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

	// check non-empty strings
	if user.FirstName == "" ||
		user.LastName == "" ||
		user.Email == "" {
		log.Println("Missing required fields")
		http.Error(w, "Missing required fields", http.StatusBadRequest)
		return
	}
	// check community
	if user.CommunityID <= 0 {
		log.Println("Missing community")
		http.Error(w, "A community is required", http.StatusBadRequest)
		return
	}
	// check baseline survey values
	if user.Baseline != nil {
		if user.Baseline.WorkGreen < 0 || user.Baseline.WorkAlone < 0 ||
			user.Baseline.SchoolGreen < 0 || user.Baseline.SchoolAlone < 0 ||
			user.Baseline.ErrandsGreen < 0 || user.Baseline.ErrandsAlone < 0 {
			log.Println("Negative baseline mileage")
			http.Error(w, "Baseline mileages cannot be negative", http.StatusBadRequest)
			return
		}
	}

	// insert user
	userDAO := db.NewUserDAO(db.GetDB())
	err = userDAO.AddUser(&user)
	if err != nil {
		log.Println("Error while interacting with the database: ", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	// send response
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	err = json.NewEncoder(w).Encode(user)
	if err != nil {
		log.Println("Error encoding JSON: ", err)
		http.Error(w, "Error encoding response", http.StatusInternalServerError)
	}
}
