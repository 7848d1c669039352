// Package api contains the REST gateway for the reComenzar backend.
//
// # Overview
//
// The package provides:
//  1. Gateway, the authenticated transport. Every outbound request is
//     stamped with the current bearer token and a request id. A 401
//     response triggers exactly one token refresh (shared across all
//     concurrent callers via the session's single-flight refresh) and a
//     single replay of the original request with the new token.
//  2. AuthClient, the raw /auth endpoints (login, register, refresh,
//     logout). These never enter the refresh path.
//  3. Thin endpoint clients (reports, schedules, challenges, users,
//     admin) mapping the documented REST contract onto model types.
//
// # Error Handling
//
// Failures are exposed as sentinel errors matched with errors.Is:
// common.ErrUnauthorized, common.ErrUnavailable, common.ErrNotFound.
// Endpoints whose contract treats 404 as "does not exist yet" convert it
// to an empty result instead.
package api
