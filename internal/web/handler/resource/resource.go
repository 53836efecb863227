// Package resource implements the REST endpoints shared by all association
// entities. An entity package only describes its path, name and sortable
// columns and hands a store to New.
package resource

import (
	"errors"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/sevenup/cpm/internal/db/store"
	"github.com/sevenup/cpm/internal/web/handler"
	"github.com/sevenup/cpm/internal/web/problem"
)

// Descriptor describes one entity's REST resource.
type Descriptor struct {
	// EntityName is the camel case name used in errors, e.g. "groupRole".
	EntityName string
	// Path is the collection path, e.g. "/api/group-roles".
	Path string
	// Columns maps the sortable JSON property names to their columns.
	Columns map[string]string
}

// Resource serves create, read, update, partial update, list and delete for one entity.
type Resource[T any, P store.Model[T]] struct {
	desc      Descriptor
	store     *store.Store[T, P]
	validator *validator.Validate
}

// New returns a Resource for desc backed by s.
func New[T any, P store.Model[T]](desc Descriptor, s *store.Store[T, P]) *Resource[T, P] {
	return &Resource[T, P]{
		desc:      desc,
		store:     s,
		validator: validator.New(),
	}
}

// Register adds the resource routes to router.
func (r *Resource[T, P]) Register(router fiber.Router) {
	item := r.desc.Path + "/:" + handler.ParamID

	router.Post(r.desc.Path, r.Create)
	router.Get(r.desc.Path, r.List)
	router.Get(item, r.Get)
	router.Put(item, r.Update)
	router.Patch(item, r.PartialUpdate)
	router.Delete(item, r.Delete)
}

// Create persists a new entity. The body must not carry an id.
func (r *Resource[T, P]) Create(c *fiber.Ctx) error {
	e, err := r.body(c)
	if err != nil {
		return err
	}

	log.Debug().Str("entity", r.desc.EntityName).Interface("body", e).Msg("REST request to save")

	if e.GetID() != nil {
		return problem.InvalidRequest("A new "+r.desc.EntityName+" cannot already have an ID", r.desc.EntityName, problem.KeyIDExists)
	}

	saved, err := r.store.Save(c.UserContext(), e)
	if err != nil {
		return err
	}

	c.Location(r.desc.Path + "/" + strconv.FormatInt(*saved.GetID(), 10))

	return c.Status(fiber.StatusCreated).JSON(saved)
}

// Update replaces an existing entity with the body.
func (r *Resource[T, P]) Update(c *fiber.Ctx) error {
	id, e, err := r.identified(c)
	if err != nil {
		return err
	}

	log.Debug().Str("entity", r.desc.EntityName).Int64("id", id).Interface("body", e).Msg("REST request to update")

	exists, err := r.store.ExistsByID(c.UserContext(), id)
	if err != nil {
		return err
	}

	if !exists {
		return r.idNotFound()
	}

	saved, err := r.store.Save(c.UserContext(), e)
	if err != nil {
		return err
	}

	return c.JSON(saved)
}

// PartialUpdate merges the non-null fields of the body into an existing entity.
func (r *Resource[T, P]) PartialUpdate(c *fiber.Ctx) error {
	id, e, err := r.identified(c)
	if err != nil {
		return err
	}

	log.Debug().Str("entity", r.desc.EntityName).Int64("id", id).Interface("body", e).Msg("REST request to partial update")

	merged, err := r.store.Patch(c.UserContext(), e)
	if errors.Is(err, store.ErrNotFound) {
		return r.idNotFound()
	}

	if err != nil {
		return err
	}

	return c.JSON(merged)
}

// List returns all entities, sorted by the sort query parameters. It never fails on a bad sort.
func (r *Resource[T, P]) List(c *fiber.Ctx) error {
	orders := r.sortOrders(c)

	log.Debug().Str("entity", r.desc.EntityName).Msg("REST request to get all")

	rows, err := r.store.FindAll(c.UserContext(), orders...)
	if err != nil {
		return err
	}

	return c.JSON(rows)
}

// Get returns one entity or 404.
func (r *Resource[T, P]) Get(c *fiber.Ctx) error {
	id, err := r.pathID(c)
	if err != nil {
		return err
	}

	log.Debug().Str("entity", r.desc.EntityName).Int64("id", id).Msg("REST request to get")

	e, err := r.store.FindByID(c.UserContext(), id)
	if errors.Is(err, store.ErrNotFound) {
		return problem.NotFound(r.desc.EntityName)
	}

	if err != nil {
		return err
	}

	return c.JSON(e)
}

// Delete removes an entity. Missing ids are not reported.
func (r *Resource[T, P]) Delete(c *fiber.Ctx) error {
	id, err := r.pathID(c)
	if err != nil {
		return err
	}

	log.Debug().Str("entity", r.desc.EntityName).Int64("id", id).Msg("REST request to delete")

	if err := r.store.DeleteByID(c.UserContext(), id); err != nil {
		return err
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// identified parses path id and body for update and partial update and checks they agree.
func (r *Resource[T, P]) identified(c *fiber.Ctx) (int64, P, error) {
	id, err := r.pathID(c)
	if err != nil {
		return 0, nil, err
	}

	e, err := r.body(c)
	if err != nil {
		return 0, nil, err
	}

	if e.GetID() == nil {
		return 0, nil, problem.InvalidRequest("Invalid id", r.desc.EntityName, problem.KeyIDNull)
	}

	if *e.GetID() != id {
		return 0, nil, problem.InvalidRequest("Invalid ID", r.desc.EntityName, problem.KeyIDInvalid)
	}

	return id, e, nil
}

func (r *Resource[T, P]) idNotFound() error {
	return problem.InvalidRequest("Entity not found", r.desc.EntityName, problem.KeyIDNotFound)
}

func (r *Resource[T, P]) pathID(c *fiber.Ctx) (int64, error) {
	id, err := strconv.ParseInt(c.Params(handler.ParamID), 10, 64)
	if err != nil {
		return 0, problem.InvalidRequest("Invalid id", r.desc.EntityName, problem.KeyBadID)
	}

	return id, nil
}

// body decodes the request body regardless of the json media type variant.
func (r *Resource[T, P]) body(c *fiber.Ctx) (P, error) {
	e := P(new(T))

	if err := c.App().Config().JSONDecoder(c.Body(), e); err != nil {
		log.Debug().Err(err).Str("entity", r.desc.EntityName).Msg("undecodable body")

		return nil, problem.InvalidRequest("Invalid body", r.desc.EntityName, problem.KeyBadBody)
	}

	return e, nil
}
