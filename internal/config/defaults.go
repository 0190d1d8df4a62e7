// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

const (
	defaultHTTPAddress          = "0.0.0.0:8000"
	defaultTokenIssuer          = "go-contacts-book"
	defaultAccessTokenDuration  = 15 * time.Minute
	defaultRefreshTokenDuration = 7 * 24 * time.Hour
	defaultBirthdayWindowDays   = 7
	defaultRequestTimeout       = 30 * time.Second
	defaultShutdownTimeout      = 10 * time.Second
	defaultMaxOpenConns         = 10
	defaultLogLevel             = "debug"
	defaultVersion              = "dev"
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:          defaultTokenIssuer,
			AccessTokenDuration:  defaultAccessTokenDuration,
			RefreshTokenDuration: defaultRefreshTokenDuration,
			PasswordHashCost:     bcrypt.DefaultCost,
			BirthdayWindowDays:   defaultBirthdayWindowDays,
			Version:              defaultVersion,
			LogLevel:             defaultLogLevel,
		},
		Storage: Storage{
			DB: DB{
				MaxOpenConns: defaultMaxOpenConns,
			},
		},
		Server: Server{
			HTTPAddress:     defaultHTTPAddress,
			RequestTimeout:  defaultRequestTimeout,
			ShutdownTimeout: defaultShutdownTimeout,
		},
	}
}
