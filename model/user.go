package model

type User struct {
	UserID      int       `gorm:"column:id_user;primaryKey;autoIncrement" json:"user_id"`
	FirstName   string    `gorm:"column:first_name;type:text;not null" json:"first_name"`
	LastName    string    `gorm:"column:last_name;type:text;not null" json:"last_name"`
	Email       string    `gorm:"column:email;type:text;not null;unique" json:"email"`
	CommunityID int       `gorm:"column:id_community;type:integer;not null" json:"community_id"`
	Community   Community `gorm:"foreignKey:CommunityID;references:CommunityID" json:"community"`
	GroupID     int       `gorm:"column:id_group;type:integer" json:"group_id"`
	Group       Group     `gorm:"foreignKey:GroupID;references:GroupID" json:"group"`
	Baseline    *Baseline `gorm:"foreignKey:UserID;references:UserID" json:"baseline,omitempty"`
	Trips       []Trip    `gorm:"foreignKey:UserID;references:UserID" json:"trips,omitempty"`
}

func (User) TableName() string {
	return "user"
}
