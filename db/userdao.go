package db

import (
	"gorm.io/gorm"
	"greencommute-server/model"
)

type UserDAO struct {
	db *gorm.DB
}

func NewUserDAO(db *gorm.DB) *UserDAO {
	return &UserDAO{db: db}
}

func (userDAO *UserDAO) GetUserById(id int) (model.User, error) {
	var user model.User
	result := userDAO.db.
		Preload("Community").
		Preload("Group").
		Preload("Baseline").
		First(&user, id)
	return user, result.Error
}

func (userDAO *UserDAO) GetUserByEmail(email string) (model.User, error) {
	var user model.User
	result := userDAO.db.
		Preload("Community").
		Preload("Group").
		Preload("Baseline").
		Where("email = ?", email).
		First(&user)
	return user, result.Error
}

func (userDAO *UserDAO) AddUser(user *model.User) error {
	// create transaction, user and baseline must be created together
	transaction := userDAO.db.Begin()
	if transaction.Error != nil {
		return transaction.Error
	}

	defer func() {
		if r := recover(); r != nil {
			transaction.Rollback()
			panic(r)
		} else if transaction.Error != nil {
			transaction.Rollback()
		}
	}()

	baseline := user.Baseline
	user.Baseline = nil
	result := transaction.Create(user)
	if result.Error != nil {
		return result.Error
	}

	if baseline != nil {
		baseline.UserID = user.UserID
		result = transaction.Create(baseline)
		if result.Error != nil {
			return result.Error
		}
		user.Baseline = baseline
	}

	result = transaction.Commit()
	return result.Error
}

// AllUsers loads every user with the associations the statistics engine
// needs: trips in logged order with mode and destination, baseline, community
// and group. It implements internals.UserSource.
func (userDAO *UserDAO) AllUsers() ([]model.User, error) {
	var users []model.User
	result := userDAO.db.
		Preload("Community").
		Preload("Group").
		Preload("Baseline").
		Preload("Trips", func(db *gorm.DB) *gorm.DB {
			return db.Order("id_trip ASC")
		}).
		Preload("Trips.Mode").
		Preload("Trips.Destination").
		Order("id_user ASC").
		Find(&users)
	return users, result.Error
}
