// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides password hashing and bearer token utilities.

# Passwords

Passwords are stored as bcrypt hashes in the user table:

	hash, err := auth.HashPassword("secret")
	err = auth.ComparePassword(hash, "secret") // nil or ErrInvalidPassword

Users are provisioned out-of-band with cmd/adduser; the API never writes
password hashes.

# Tokens

TokenManager issues HS256 tokens whose subject is the username:

	tm, err := auth.NewTokenManager(secret, 24*time.Hour)
	token, err := tm.Issue("alice")
	username, err := tm.Verify(token)

A zero TTL issues tokens with no exp claim; they stay valid until the
secret is rotated. Verify rejects every algorithm except HS256.

# Headers

BearerToken pulls the token out of an Authorization header. Only the part
after the first space is used; the scheme word is not checked:

	token := auth.BearerToken(r.Header.Get("Authorization"))

The middleware stores the verified username in the request context, read
back with UsernameFromContext.
*/
package auth
