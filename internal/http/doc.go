// Package http provides HTTP handlers and middleware for the coworking hub
// API.
//
// The router exposes the following endpoints:
//   - GET /session, POST /session/member, POST /session/admin,
//     POST /session/demote, DELETE /session: the session state machine. Member
//     login takes {"password"} and matches by password lookup; admin login
//     takes the operator secret and elevates the current session.
//   - GET /wiki, POST /wiki, DELETE /wiki/{id}: knowledge-base entries. The
//     listing accepts ?search= and ?category= filters.
//   - GET /announcements, POST /announcements, DELETE /announcements/{id},
//     DELETE /announcements/expired: the announcement feed. POST upserts.
//     Clearing expired entries reports the would-be removal count until the
//     caller confirms.
//   - GET /branches, GET /spaces, POST /spaces, DELETE /spaces/{id}: branch
//     reference data and bookable spaces. The listing accepts ?branch=.
//   - GET /partners, POST /partners, DELETE /partners/{id}: the business
//     partner directory. POST upserts.
//   - GET /offices, PUT /offices/{id}, DELETE /offices/{id}: leasable office
//     categories. Titles are immutable and updates never insert.
//   - GET /members, PUT /members, GET /members/petty-cash: roster management
//     and the balance readout.
//   - GET /backup/export, POST /backup/preview, POST /backup/restore: the
//     snapshot codec. Export responds with a JSON attachment; restore is
//     confirmation gated.
//   - POST /assistant/chat: the AI assistant. Always responds 200 with a
//     renderable message.
//   - GET /foodmap, GET /rules: static reference data.
//
// Destructive endpoints take ?confirm=true (or a "confirm" body field) and
// respond 409 with a CONFIRMATION_REQUIRED code until it is supplied.
package http
