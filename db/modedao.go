package db

import (
	"gorm.io/gorm"
	"greencommute-server/model"
)

type ModeDAO struct {
	db *gorm.DB
}

func NewModeDAO(db *gorm.DB) *ModeDAO {
	return &ModeDAO{db: db}
}

func (modeDAO *ModeDAO) GetAllModes() ([]model.Mode, error) {
	var modes []model.Mode
	result := modeDAO.db.Order("id_mode ASC").Find(&modes)
	return modes, result.Error
}

func (modeDAO *ModeDAO) GetModeByName(name string) (model.Mode, error) {
	var mode model.Mode
	result := modeDAO.db.Where("name = ?", name).First(&mode)
	return mode, result.Error
}

func (modeDAO *ModeDAO) GetDestinationByName(name string) (model.Destination, error) {
	var destination model.Destination
	result := modeDAO.db.Where("name = ?", name).First(&destination)
	return destination, result.Error
}
