// Package domain contains the entities shared across the referral service.
// Types here carry no storage or transport concerns so the HTTP layer,
// the service layer and the storage backends can all depend on them.
package domain
