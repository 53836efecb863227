package models

import "fmt"

// GroupUser links a group to a user.
type GroupUser struct {
	// ID is nil until the row was inserted.
	ID *int64 `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	// GroupID references an external group.
	GroupID *int64 `gorm:"column:group_id" json:"groupId"`
	// UserID references an external user.
	UserID *int64 `gorm:"column:user_id" json:"userId"`
}

// TableName specifies the database table name for the GroupUser model.
func (GroupUser) TableName() string {
	return "group_user"
}

// GetID returns the assigned id or nil.
func (g *GroupUser) GetID() *int64 {
	return g.ID
}

// SetID sets the id.
func (g *GroupUser) SetID(id *int64) {
	g.ID = id
}

// Merge copies the non-nil foreign keys of patch into g.
func (g *GroupUser) Merge(patch *GroupUser) {
	if patch.GroupID != nil {
		g.GroupID = patch.GroupID
	}

	if patch.UserID != nil {
		g.UserID = patch.UserID
	}
}

// Equal reports whether both link rows have the same assigned id.
// A row always equals itself, even before it is saved.
func (g *GroupUser) Equal(o *GroupUser) bool {
	if g == o {
		return true
	}

	return sameID(g.ID, o.ID)
}

func (g *GroupUser) String() string {
	return fmt.Sprintf("GroupUser{id=%s, groupId=%s, userId=%s}", fmtID(g.ID), fmtID(g.GroupID), fmtID(g.UserID))
}
