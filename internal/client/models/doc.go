// Package models defines the data types exchanged with the reComenzar
// backend: users, daily reports, daily schedules, challenges, and the
// auth/admin request and response payloads. JSON field names follow the
// backend contract.
package models
