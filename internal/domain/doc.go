// Package domain contains the core domain model for PanelApp.
//
// The domain is transport- and persistence-agnostic: it does not depend on git,
// the filesystem, or any rendering layer. Infra/adapters map into/from these types.
package domain
