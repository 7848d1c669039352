// Package session owns the authenticated session: the access/refresh
// token pair and the cached user profile, mirrored to the persisted
// preference store so a restart resumes the session.
//
// The store guarantees that at most one token refresh is in flight at any
// time. Concurrent callers that need a refresh share the in-flight
// operation and all receive its result: one new token for everybody, or
// one error for everybody plus a cleared session. This is what keeps N
// simultaneous 401 responses from issuing N refresh calls.
//
// Invariant maintained at every mutation point: the session is
// authenticated iff both the access token and the user profile are
// present. No partially-valid session is ever observable.
package session
