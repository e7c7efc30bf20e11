// Package client talks to the learning platform over HTTP.
//
// # Overview
//
// The package provides:
//  1. Authenticator, which exchanges an identifier and password for a
//     bearer token via the Basic-auth sign-in endpoint.
//  2. GraphQLClient, which posts query documents with bearer auth and
//     normalizes transport and protocol failures.
//  3. Local persistence bootstrap (InitDatabase, RunMigrations) wiring an
//     SQLite database and applying embedded goose migrations.
//
// # Error Handling
//
// Failures are typed (AuthenticationFailedError, TransportError, QueryError)
// and each matches its sentinel from the common package with errors.Is.
//
// All operations accept context.Context and honor cancellation.
package client
