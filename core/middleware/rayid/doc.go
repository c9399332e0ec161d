// Package rayid tags each HTTP request with a ray id, stored in the fiber
// locals under "ray_id" and echoed in the X-Ray-ID response header.
// Register it before any other middleware so every log line carries it.
package rayid
