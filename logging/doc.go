// Package logging provides a tiny abstraction over slog so the kernel can
// depend on a minimal interface (Logger) while allowing hosts to plug any
// structured logger. It also offers a richer KernelLogger with contextual
// helpers (component, scheduler identifiers) and domain specific logging
// helpers for dispatch cycles and reaction failures.
package logging
