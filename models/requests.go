package models

import "encoding/json"

// ContactUpdate is the body of a partial contact update. Absent fields are
// left untouched, present fields are set. Only Description may be null,
// which clears it.
type ContactUpdate struct {
	Name        Optional[string] `json:"name,omitzero"`
	Surename    Optional[string] `json:"surename,omitzero"`
	Email       Optional[string] `json:"email,omitzero"`
	PhoneNumber Optional[string] `json:"phone_number,omitzero"`
	DateOfBirth Optional[Date]   `json:"date_of_birth,omitzero"`
	Description Optional[string] `json:"description,omitzero"`
}

// UnmarshalJSON accepts "surname" as an alias of "surename". When both keys
// are present "surename" wins.
func (u *ContactUpdate) UnmarshalJSON(b []byte) error {
	type plain ContactUpdate
	aux := struct {
		*plain
		Surname Optional[string] `json:"surname"`
	}{plain: (*plain)(u)}

	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}
	if aux.Surname.IsSet() && !u.Surename.IsSet() {
		u.Surename = aux.Surname
	}
	return nil
}

// IsEmpty reports whether the update does not touch any field.
func (u ContactUpdate) IsEmpty() bool {
	return !u.Name.IsSet() &&
		!u.Surename.IsSet() &&
		!u.Email.IsSet() &&
		!u.PhoneNumber.IsSet() &&
		!u.DateOfBirth.IsSet() &&
		!u.Description.IsSet()
}

// Apply returns c with the present fields of u applied.
func (u ContactUpdate) Apply(c Contact) Contact {
	if v, ok := u.Name.Get(); ok {
		c.Name = v
	}
	if v, ok := u.Surename.Get(); ok {
		c.Surename = v
	}
	if v, ok := u.Email.Get(); ok {
		c.Email = v
	}
	if v, ok := u.PhoneNumber.Get(); ok {
		c.PhoneNumber = v
	}
	if v, ok := u.DateOfBirth.Get(); ok {
		c.DateOfBirth = v
	}
	if u.Description.IsNull() {
		c.Description = nil
	} else if v, ok := u.Description.Get(); ok {
		c.Description = &v
	}
	return c
}

// ContactFilter holds exact-match search criteria. Empty fields are not
// applied; supplied fields are combined with AND.
type ContactFilter struct {
	Name     string `json:"name,omitempty"`
	Surename string `json:"surename,omitempty"`
	Email    string `json:"email,omitempty"`
}

// IsEmpty reports whether no criterion is set.
func (f ContactFilter) IsEmpty() bool {
	return f.Name == "" && f.Surename == "" && f.Email == ""
}

// RefreshRequest is the body of a token refresh request.
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}
