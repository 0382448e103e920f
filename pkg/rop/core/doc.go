// Package core contains the ambient plumbing shared by the rop packages:
// the leveled logger sink and the options that carry it, either explicitly
// (Options) or through a context.Context. It does not define business logic.
package core
