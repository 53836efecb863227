// Package models contains the gorm models of the association tables.
//
// Both models carry a surrogate id assigned by the database on insert and two
// foreign key values that are stored and returned as is. The referenced groups,
// roles and users live outside this service and are never looked up.
package models
