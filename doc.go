// Package main provides the entry point for the cpm group association service.
// It runs a JSON REST API built on Fiber that manages the links between groups
// and roles (group-roles) and between groups and users (group-users). Each link
// is a row in its own table, persisted with gorm on MySQL, PostgreSQL or SQLite.
package main
