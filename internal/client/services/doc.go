// Package services contains the application services of the reComenzar
// client. Each service sits between the CLI and an endpoint client:
// it enforces the client-side business rules (date stamping, draft
// filtering, challenge limits) and triggers the notification
// reconciliations that follow a successful mutation.
package services
