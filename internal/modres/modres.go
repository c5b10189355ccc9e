// Package modres resolves runtime modules by name: can the host runtime's
// import mechanism locate this library? Resolution never executes module code
// and never spawns a subprocess.
package modres

import "go/build"

// Resolver locates a module/library by name for one target runtime.
type Resolver interface {
	// Resolve reports whether name can be located. A non-nil error means the
	// lookup itself failed; callers treat any failure as "not usably present".
	Resolve(name string) (bool, error)
}

// GoResolver resolves import paths against the host Go build context, covering
// the standard library (GOROOT) and GOPATH packages. FindOnly restricts the
// lookup to locating the package directory, so no source is parsed and no
// package code runs.
type GoResolver struct {
	ctx build.Context
}

// NewGoResolver returns a resolver backed by the default build context.
func NewGoResolver() *GoResolver {
	return &GoResolver{ctx: build.Default}
}

func (r *GoResolver) Resolve(name string) (bool, error) {
	pkg, err := r.ctx.Import(name, "", build.FindOnly)
	if err != nil {
		return false, err
	}
	return pkg.Dir != "", nil
}
