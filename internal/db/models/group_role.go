package models

import "fmt"

// GroupRole links a group to a role.
type GroupRole struct {
	// ID is nil until the row was inserted.
	ID *int64 `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	// GroupID references an external group.
	GroupID *int64 `gorm:"column:group_id" json:"groupId"`
	// RoleID references an external role.
	RoleID *int64 `gorm:"column:role_id" json:"roleId"`
}

// TableName specifies the database table name for the GroupRole model.
func (GroupRole) TableName() string {
	return "group_role"
}

// GetID returns the assigned id or nil.
func (g *GroupRole) GetID() *int64 {
	return g.ID
}

// SetID sets the id.
func (g *GroupRole) SetID(id *int64) {
	g.ID = id
}

// Merge copies the non-nil foreign keys of patch into g.
func (g *GroupRole) Merge(patch *GroupRole) {
	if patch.GroupID != nil {
		g.GroupID = patch.GroupID
	}

	if patch.RoleID != nil {
		g.RoleID = patch.RoleID
	}
}

// Equal reports whether both link rows have the same assigned id.
// A row always equals itself, even before it is saved.
func (g *GroupRole) Equal(o *GroupRole) bool {
	if g == o {
		return true
	}

	return sameID(g.ID, o.ID)
}

func (g *GroupRole) String() string {
	return fmt.Sprintf("GroupRole{id=%s, groupId=%s, roleId=%s}", fmtID(g.ID), fmtID(g.GroupID), fmtID(g.RoleID))
}
