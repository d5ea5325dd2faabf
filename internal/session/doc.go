// Package session keeps the browser's authenticated identity between
// requests and carries one-shot notices across redirects.
//
// Two Store backends exist. The cookie backend stores a signed JWT whose
// subject is the username; nothing is kept server-side. The redis backend
// stores an opaque signed session id in the cookie and maps it to the
// username in Redis with a TTL, so sessions can be revoked server-side.
package session
