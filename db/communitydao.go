package db

import (
	"gorm.io/gorm"
	"greencommute-server/model"
)

type CommunityDAO struct {
	db *gorm.DB
}

func NewCommunityDAO(db *gorm.DB) *CommunityDAO {
	return &CommunityDAO{db: db}
}

func (communityDAO *CommunityDAO) GetAllCommunities() ([]model.Community, error) {
	var communities []model.Community
	result := communityDAO.db.Order("id_community ASC").Find(&communities)
	return communities, result.Error
}

func (communityDAO *CommunityDAO) GetCommunityByName(name string) (model.Community, error) {
	var community model.Community
	result := communityDAO.db.Where("name = ?", name).First(&community)
	return community, result.Error
}

func (communityDAO *CommunityDAO) GetGroupsByCommunityId(communityID int) ([]model.Group, error) {
	var groups []model.Group
	result := communityDAO.db.Where("id_community = ?", communityID).Order("id_group ASC").Find(&groups)
	return groups, result.Error
}
