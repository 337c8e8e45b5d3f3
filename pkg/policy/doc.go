// Package policy defines the vendor-neutral permission model: rules,
// policies, scopes, and principal references. The provider-native encoding
// of this model lives in the codec subpackage.
package policy
