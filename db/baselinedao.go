package db

import (
	"gorm.io/gorm"
	"greencommute-server/model"
)

type BaselineDAO struct {
	db *gorm.DB
}

func NewBaselineDAO(db *gorm.DB) *BaselineDAO {
	return &BaselineDAO{db: db}
}

func (baselineDAO *BaselineDAO) GetBaselineByUserId(userID int) (model.Baseline, error) {
	var baseline model.Baseline
	result := baselineDAO.db.Where("id_user = ?", userID).First(&baseline)
	return baseline, result.Error
}

func (baselineDAO *BaselineDAO) UpdateBaseline(baseline *model.Baseline) error {
	result := baselineDAO.db.Save(baseline)
	return result.Error
}
