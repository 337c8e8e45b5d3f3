// Package codec maps between vendor-neutral permission rules and the
// provider's native JSON policy document encoding.
package codec
