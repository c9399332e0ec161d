// Package identifier canonicalizes raw scanner input into a comparable key.
//
// Barcode readers append control characters and operators type with stray
// whitespace, so every scanned value passes through Normalize before it is
// matched against the register.
//
// # Usage
//
//	key, err := identifier.Normalize(" abc12345\r")
//	// key == "ABC12345"
package identifier
