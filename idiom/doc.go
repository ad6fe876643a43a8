// Package idiom provides reusable Behavior implementations for common
// messaging patterns: absorbers, proxies, decorators, one-shot forwarders,
// fork/join and race request fan-out, and environment chains.
//
// Every idiom is an ordinary client of the core Behavior/Effect contract;
// the kernel has no knowledge of any of them. They serve both as building
// blocks for hosts and as executable documentation of the contract.
package idiom
