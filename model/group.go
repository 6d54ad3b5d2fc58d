package model

// Group is a sub-affiliation within a community, e.g. a company or school team.
type Group struct {
	GroupID     int    `gorm:"column:id_group;primaryKey;autoIncrement" json:"group_id"`
	Name        string `gorm:"column:name;type:text;not null" json:"name"`
	CommunityID int    `gorm:"column:id_community;type:integer;not null;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"community_id"`
}

func (Group) TableName() string {
	return "challenge_group"
}
