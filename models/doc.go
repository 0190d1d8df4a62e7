// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package models holds the domain and wire types shared by the server, the
// store, and the API client: users, contacts, partial updates, search
// filters and authentication tokens.
package models
