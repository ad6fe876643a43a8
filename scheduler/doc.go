// Package scheduler implements the kernel's dispatch-and-commit state
// machine. A Scheduler owns the actor registry and the global FIFO event
// queue, drains events one at a time within caller-bounded quanta, invokes
// the target actor's current behavior and atomically commits or discards the
// staged effect.
//
// Execution is strictly cooperative, run-to-completion and single-threaded:
// exactly one reaction executes at a time, the registry and queue are only
// mutated between reactions, and the scheduler never runs unbounded on its
// own. A Scheduler is not safe for concurrent use; hosts wanting parallelism
// must run independent schedulers over disjoint actor sets.
package scheduler
