// Package acl is the anti-corruption layer between upstream HTTP services
// and the domain. Upstream payloads are decoded into unexported shapes,
// validated, and translated into domain types; upstream failures are mapped
// onto domain errors so callers never see transport details:
//
//   - 404 becomes [domain.ErrNotFound]
//   - 400 and 422 become [domain.ErrValidation]
//   - 401 becomes [domain.ErrUnauthorized], 403 [domain.ErrForbidden]
//   - 5xx, 429, transport and breaker failures become [domain.ErrUnavailable]
//
// [CatalogClient] is the adapter for a remote catalog publisher.
package acl
