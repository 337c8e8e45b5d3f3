// Package model defines the database models for the snapshot store.
//
// This package contains GORM models that map to the snapshot schema: a
// local PostgreSQL mirror of the provider's directory, refreshed by
// the snapshot syncer.
//
// # Core Models
//
//   - User: provider users
//   - Group: provider groups
//   - GroupMembership: user/group edges
//   - ManagedPolicy: standalone policies with their default document
//   - InlinePolicy: policies embedded in a user or group
//   - PolicyAttachment: managed policy to principal edges
//   - SyncRun: bookkeeping for completed snapshot pulls
package model
