// Package demo provides named example layouts that exercise the builder
// end to end.
//
// Each [Scene] builds a small element tree under a root whose size is set
// by [Run]; Run then solves the tree with the reference solver:
//
//	sc, err := demo.Lookup("spacing")
//	if err != nil {
//	    return err
//	}
//	res, err := demo.Run(ctx, sc, demo.Options{Size: layout.Size{Width: 375, Height: 667}})
//
// The CLI's demo, graph and browse commands are thin wrappers around this
// package.
package demo
