// Package core provides the foundational domain types of the actorkit
// kernel. It defines the core abstractions for:
//
//   - Messages (the closed, recursively nestable value vocabulary)
//   - Events (one target actor paired with one message)
//   - Actors (stable identities owning a replaceable Behavior)
//   - Behaviors (the reaction strategy installed on an actor)
//   - Effects (staged, uncommitted bundles of creations and sends)
//   - Structured reaction errors with failure classification
//
// The package intentionally keeps execution concerns (queueing, dispatch,
// commit) out of scope; those live in the scheduler package, which consumes
// only the small interfaces and value types exported here.
package core
