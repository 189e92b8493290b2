// Package domain contains shared domain types used across entity sub-packages.
// Clinical documentation types live in domain/clinical. This root package
// holds sentinel errors, the field-level ValidationError that every layer
// uses to signal bad input, and ModelInfo for provider model listings.
package domain
