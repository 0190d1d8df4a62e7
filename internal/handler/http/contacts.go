// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-contacts-book/internal/utils"
	"github.com/MKhiriev/go-contacts-book/models"
)

func (h *Handler) listContacts(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUserID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	contacts, err := h.services.ContactService.ListContacts(r.Context(), userID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeContacts(w, contacts)
}

func (h *Handler) findContact(w http.ResponseWriter, r *http.Request) {
	userID, contactID, err := userAndContactID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	contact, err := h.services.ContactService.GetContact(r.Context(), userID, contactID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, contact, http.StatusOK)
}

func (h *Handler) createContact(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUserID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var contact models.Contact
	if err = json.NewDecoder(r.Body).Decode(&contact); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidJSON, err))
		return
	}

	created, err := h.services.ContactService.CreateContact(r.Context(), userID, contact)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) updateContact(w http.ResponseWriter, r *http.Request) {
	userID, contactID, err := userAndContactID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var update models.ContactUpdate
	if err = json.NewDecoder(r.Body).Decode(&update); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidJSON, err))
		return
	}

	updated, err := h.services.ContactService.UpdateContact(r.Context(), userID, contactID, update)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, updated, http.StatusOK)
}

func (h *Handler) deleteContact(w http.ResponseWriter, r *http.Request) {
	userID, contactID, err := userAndContactID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err = h.services.ContactService.DeleteContact(r.Context(), userID, contactID); err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: "Contact deleted"}, http.StatusOK)
}

// searchContacts accepts "surname" as an alias of "surename".
func (h *Handler) searchContacts(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUserID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	query := r.URL.Query()
	filter := models.ContactFilter{
		Name:     query.Get("name"),
		Surename: query.Get("surename"),
		Email:    query.Get("email"),
	}
	if filter.Surename == "" {
		filter.Surename = query.Get("surname")
	}

	contacts, err := h.services.ContactService.SearchContacts(r.Context(), userID, filter)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeContacts(w, contacts)
}

func (h *Handler) upcomingBirthdays(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUserID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	contacts, err := h.services.ContactService.UpcomingBirthdays(r.Context(), userID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeContacts(w, contacts)
}

func userAndContactID(r *http.Request) (int64, int64, error) {
	userID, err := currentUserID(r)
	if err != nil {
		return 0, 0, err
	}

	contactID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || contactID <= 0 {
		return 0, 0, ErrInvalidContactID
	}

	return userID, contactID, nil
}

// writeContacts renders an empty result as [] rather than null.
func writeContacts(w http.ResponseWriter, contacts []models.Contact) {
	if contacts == nil {
		contacts = []models.Contact{}
	}
	utils.WriteJSON(w, contacts, http.StatusOK)
}
