package model

type Community struct {
	CommunityID int    `gorm:"column:id_community;primaryKey;autoIncrement" json:"community_id"`
	Name        string `gorm:"column:name;type:text;not null;unique" json:"name"`
}

func (Community) TableName() string {
	return "community"
}
