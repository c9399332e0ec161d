// Package history serves the sessions kept in the session store.
//
//   - GET    /history     : summaries, newest first
//   - GET    /history/:id : one session with totals (?format=xlsx to download)
//   - DELETE /history/:id : remove a session
package history
