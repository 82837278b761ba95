// Package normalize provides the pure normalization functions applied to
// event and booking records before they are allowed to persist.
//
// All functions are idempotent - applying them to an already-canonical value
// produces the same value. Functions either return the canonical form or a
// typed error; none of them touch the database.
//
// Canonical forms:
//   - Slugs: lowercase letters, digits and single hyphens only, no leading or
//     trailing hyphen - "Dev's   Meetup!!" becomes "devs-meetup"
//   - Dates: YYYY-MM-DD computed from the UTC calendar fields
//   - Times: zero-padded 24-hour HH:MM
//   - Emails: trimmed and lowercased
//   - Slices: trimmed elements, empty elements dropped
package normalize
