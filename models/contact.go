// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "encoding/json"

// Contact is an address-book entry owned by exactly one user.
type Contact struct {
	// ID is the unique identifier of the contact, assigned by storage.
	ID int64 `json:"id"`

	Name        string `json:"name"`
	Surename    string `json:"surename"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phone_number"`

	// DateOfBirth is a calendar date serialized as YYYY-MM-DD.
	DateOfBirth Date `json:"date_of_birth"`

	// Description is optional free text; nil is stored and serialized as null.
	Description *string `json:"description"`

	// UserID is the owner. It is set from the authenticated user on creation
	// and never changes afterwards.
	UserID int64 `json:"user_id"`
}

// TableName returns the name of the database table
// associated with the Contact model.
func (c Contact) TableName() string {
	return "contacts"
}

// UnmarshalJSON accepts "surname" as an alias of "surename". When both keys
// are present "surename" wins.
func (c *Contact) UnmarshalJSON(b []byte) error {
	type plain Contact
	aux := struct {
		*plain
		Surname *string `json:"surname"`
	}{plain: (*plain)(c)}

	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}
	if aux.Surname != nil && !hasKey(b, "surename") {
		c.Surename = *aux.Surname
	}
	return nil
}

// hasKey reports whether the JSON object b has the top-level key.
func hasKey(b []byte, key string) bool {
	var keys map[string]json.RawMessage
	if err := json.Unmarshal(b, &keys); err != nil {
		return false
	}
	_, ok := keys[key]
	return ok
}
