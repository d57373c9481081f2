// Package auth provides token issuance and verification for the API, plus
// password hashing. Tokens are HMAC-SHA256 signed JWTs carrying the username
// as subject along with issuer, audience, and a one-hour expiry.
package auth
