package composite

import (
	"errors"
	"fmt"
	"path"
)

var (
	// ErrSelfAttach is returned when adding a directory to itself.
	ErrSelfAttach = errors.New("composite: cannot attach a node to itself")

	// ErrCycle is returned when adding an ancestor into its own subtree.
	ErrCycle = errors.New("composite: attachment would create a cycle")

	// ErrNilNode is returned when adding a nil node.
	ErrNilNode = errors.New("composite: nil node")

	// SkipDir signals Walk to skip the directory it was returned for.
	// Mirrors fs.SkipDir semantics.
	SkipDir = errors.New("composite: skip this directory")
)

// AlreadyAttachedError is returned when adding a node that already has a
// parent. Detach it from its current parent first.
type AlreadyAttachedError struct {
	Name string
}

func (e *AlreadyAttachedError) Error() string {
	return fmt.Sprintf("composite: node %q is already attached", e.Name)
}

func IsAlreadyAttachedError(err error) bool {
	var e *AlreadyAttachedError
	return errors.As(err, &e)
}

// Node is the uniform interface over files and directories. It is sealed:
// only types in this package implement it, which is what lets the tree
// guarantee its structural invariants.
type Node interface {
	Name() string
	// Size returns the total size in bytes: the file's own size for a leaf,
	// the recursive sum for a directory.
	Size() int64

	// setParent seals the interface and maintains the single-parent invariant.
	setParent(p *Dir) error
}

// WalkFunc is called by Walk for every visited node with its slash-joined
// path from the walk root.
type WalkFunc func(path string, n Node) error

// File is the leaf node: a name and a size.
type File struct {
	name   string
	size   int64
	parent *Dir
}

// NewFile creates a file node. Negative sizes are clamped to zero.
func NewFile(name string, size int64) *File {
	if size < 0 {
		size = 0
	}
	return &File{name: name, size: size}
}

func (f *File) Name() string { return f.name }

func (f *File) Size() int64 { return f.size }

func (f *File) setParent(p *Dir) error {
	if p != nil && f.parent != nil {
		return &AlreadyAttachedError{Name: f.name}
	}
	f.parent = p
	return nil
}

// Dir is the composite node: a named, ordered collection of children.
type Dir struct {
	name     string
	parent   *Dir
	children []Node
}

// NewDir creates an empty directory node.
func NewDir(name string) *Dir {
	return &Dir{name: name}
}

func (d *Dir) Name() string { return d.name }

// Size returns the recursive sum of all leaf sizes under this directory.
// An empty directory has size zero.
func (d *Dir) Size() int64 {
	var total int64
	for _, child := range d.children {
		total += child.Size()
	}
	return total
}

func (d *Dir) setParent(p *Dir) error {
	if p != nil && d.parent != nil {
		return &AlreadyAttachedError{Name: d.name}
	}
	d.parent = p
	return nil
}

// Add attaches a child node. It rejects nil nodes, self-attachment, nodes
// that already have a parent, and attachments that would make a node its own
// ancestor.
func (d *Dir) Add(child Node) error {
	if child == nil {
		return ErrNilNode
	}
	if child == Node(d) {
		return ErrSelfAttach
	}
	if sub, ok := child.(*Dir); ok && sub.isAncestorOf(d) {
		return ErrCycle
	}
	if err := child.setParent(d); err != nil {
		return err
	}
	d.children = append(d.children, child)
	return nil
}

// MustAdd works like Add but panics on failure. For static tree construction
// where a structural mistake is a programming error.
func (d *Dir) MustAdd(child Node) *Dir {
	if err := d.Add(child); err != nil {
		panic(fmt.Sprintf("composite: add to %q: %v", d.name, err))
	}
	return d
}

// Remove detaches the first child with the given name and reports whether
// anything was removed.
func (d *Dir) Remove(name string) bool {
	for i, child := range d.children {
		if child.Name() == name {
			_ = child.setParent(nil)
			d.children = append(d.children[:i], d.children[i+1:]...)
			return true
		}
	}
	return false
}

// Children returns a copy of the child list in insertion order.
func (d *Dir) Children() []Node {
	out := make([]Node, len(d.children))
	copy(out, d.children)
	return out
}

// Len returns the number of direct children.
func (d *Dir) Len() int { return len(d.children) }

// Find returns the first node with the given name, searching depth-first in
// insertion order. The receiver itself is not a candidate.
func (d *Dir) Find(name string) (Node, bool) {
	for _, child := range d.children {
		if child.Name() == name {
			return child, true
		}
		if sub, ok := child.(*Dir); ok {
			if found, ok := sub.Find(name); ok {
				return found, true
			}
		}
	}
	return nil, false
}

// Walk visits the directory and every descendant depth-first in insertion
// order. Returning SkipDir from fn for a directory skips its contents; any
// other error aborts the walk and is returned.
func (d *Dir) Walk(fn WalkFunc) error {
	return d.walk(d.name, fn)
}

func (d *Dir) walk(prefix string, fn WalkFunc) error {
	if err := fn(prefix, d); err != nil {
		if errors.Is(err, SkipDir) {
			return nil
		}
		return err
	}
	for _, child := range d.children {
		childPath := path.Join(prefix, child.Name())
		if sub, ok := child.(*Dir); ok {
			if err := sub.walk(childPath, fn); err != nil {
				return err
			}
			continue
		}
		if err := fn(childPath, child); err != nil {
			if errors.Is(err, SkipDir) {
				// SkipDir on a file skips the remaining siblings, same as fs.WalkDir.
				return nil
			}
			return err
		}
	}
	return nil
}

// isAncestorOf reports whether d is an ancestor of other (or is other).
func (d *Dir) isAncestorOf(other *Dir) bool {
	for cur := other; cur != nil; cur = cur.parent {
		if cur == d {
			return true
		}
	}
	return false
}
