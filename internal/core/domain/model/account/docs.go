// Package account provides the identity side of the domain: users, the
// client and driver role profiles wrapping them, vehicles as driver
// reference data, and the Actor value that carries the caller's resolved
// role through a request.
//
// A user holds credentials; a role profile attaches dispatch-relevant data
// (contact, identity document, optionally a vehicle) to exactly one user.
// Role resolution probes client first, then driver, then the admin flag;
// the profile found first wins when a user somehow holds both.
package account
