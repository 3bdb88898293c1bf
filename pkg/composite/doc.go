// Package composite implements the Composite pattern: part-whole trees where
// clients treat a single object and a whole subtree uniformly.
//
// The subject is a file-system-like tree. File is the leaf, Dir the
// composite, and both satisfy Node, so Size works the same whether called on
// one file or the root of a deep hierarchy - the classic recursive traversal
// this pattern exists for. Find performs a depth-first search in insertion
// order, and Walk visits every node with io/fs-style SkipDir control.
//
// The Node interface is sealed (it has an unexported method), so the
// invariants the tree maintains - a node has at most one parent, no node is
// its own ancestor - cannot be broken by outside implementations.
//
// # Usage
//
//	root := composite.NewDir("assets")
//	img := composite.NewDir("img")
//	root.MustAdd(img)
//	img.MustAdd(composite.NewFile("logo.png", 34_021))
//	root.MustAdd(composite.NewFile("index.html", 1_204))
//
//	total := root.Size()                  // 35_225
//	n, ok := root.Find("logo.png")        // depth-first, insertion order
//
//	root.Walk(func(path string, n composite.Node) error {
//	    if n.Name() == "node_modules" {
//	        return composite.SkipDir
//	    }
//	    fmt.Println(path)
//	    return nil
//	})
package composite
