package composite_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/patternkit/pkg/composite"
)

// buildTree constructs:
//
//	root/
//	  index.html (1000)
//	  img/
//	    logo.png (300)
//	    icons/
//	      ok.svg (20)
//	  docs/
//	    readme.md (150)
func buildTree(t *testing.T) *composite.Dir {
	t.Helper()

	icons := composite.NewDir("icons").MustAdd(composite.NewFile("ok.svg", 20))
	img := composite.NewDir("img").
		MustAdd(composite.NewFile("logo.png", 300)).
		MustAdd(icons)
	docs := composite.NewDir("docs").MustAdd(composite.NewFile("readme.md", 150))

	return composite.NewDir("root").
		MustAdd(composite.NewFile("index.html", 1000)).
		MustAdd(img).
		MustAdd(docs)
}

func TestSize(t *testing.T) {
	t.Run("file reports its own size", func(t *testing.T) {
		assert.Equal(t, int64(42), composite.NewFile("a.txt", 42).Size())
	})

	t.Run("negative file size clamped", func(t *testing.T) {
		assert.Equal(t, int64(0), composite.NewFile("a.txt", -5).Size())
	})

	t.Run("dir sums recursively", func(t *testing.T) {
		root := buildTree(t)
		assert.Equal(t, int64(1470), root.Size())
	})

	t.Run("empty dir is zero", func(t *testing.T) {
		assert.Equal(t, int64(0), composite.NewDir("empty").Size())
	})

	t.Run("uniform treatment of leaf and subtree", func(t *testing.T) {
		root := buildTree(t)
		var nodes []composite.Node
		for _, child := range root.Children() {
			nodes = append(nodes, child)
		}

		// The caller does not care which are files and which are dirs.
		var total int64
		for _, n := range nodes {
			total += n.Size()
		}
		assert.Equal(t, root.Size(), total)
	})
}

func TestFind(t *testing.T) {
	t.Run("finds nested node depth-first", func(t *testing.T) {
		root := buildTree(t)

		n, ok := root.Find("ok.svg")
		require.True(t, ok)
		assert.Equal(t, int64(20), n.Size())

		n, ok = root.Find("docs")
		require.True(t, ok)
		assert.IsType(t, &composite.Dir{}, n)
	})

	t.Run("missing name", func(t *testing.T) {
		root := buildTree(t)
		_, ok := root.Find("missing.txt")
		assert.False(t, ok)
	})

	t.Run("duplicate names resolve to first in insertion order", func(t *testing.T) {
		sub := composite.NewDir("sub").MustAdd(composite.NewFile("dup.txt", 2))
		root := composite.NewDir("root").
			MustAdd(composite.NewFile("dup.txt", 1)).
			MustAdd(sub)

		n, ok := root.Find("dup.txt")
		require.True(t, ok)
		assert.Equal(t, int64(1), n.Size())

		// Depth beats later siblings: the nested dup is reached first when it
		// comes earlier in insertion order.
		root2 := composite.NewDir("root").
			MustAdd(composite.NewDir("sub").MustAdd(composite.NewFile("dup.txt", 2))).
			MustAdd(composite.NewFile("dup.txt", 1))

		n, ok = root2.Find("dup.txt")
		require.True(t, ok)
		assert.Equal(t, int64(2), n.Size())
	})
}

func TestWalk(t *testing.T) {
	t.Run("visits every node with paths", func(t *testing.T) {
		root := buildTree(t)

		var paths []string
		err := root.Walk(func(p string, n composite.Node) error {
			paths = append(paths, p)
			return nil
		})
		require.NoError(t, err)

		assert.Equal(t, []string{
			"root",
			"root/index.html",
			"root/img",
			"root/img/logo.png",
			"root/img/icons",
			"root/img/icons/ok.svg",
			"root/docs",
			"root/docs/readme.md",
		}, paths)
	})

	t.Run("skip dir prunes its subtree", func(t *testing.T) {
		root := buildTree(t)

		var paths []string
		err := root.Walk(func(p string, n composite.Node) error {
			if n.Name() == "img" {
				return composite.SkipDir
			}
			paths = append(paths, p)
			return nil
		})
		require.NoError(t, err)

		assert.NotContains(t, paths, "root/img/logo.png")
		assert.Contains(t, paths, "root/docs/readme.md")
	})

	t.Run("error aborts the walk", func(t *testing.T) {
		root := buildTree(t)
		boom := errors.New("stop")

		count := 0
		err := root.Walk(func(p string, n composite.Node) error {
			count++
			if count == 3 {
				return boom
			}
			return nil
		})
		assert.ErrorIs(t, err, boom)
		assert.Equal(t, 3, count)
	})
}

func TestAdd_Invariants(t *testing.T) {
	t.Run("nil node", func(t *testing.T) {
		assert.ErrorIs(t, composite.NewDir("d").Add(nil), composite.ErrNilNode)
	})

	t.Run("self attachment", func(t *testing.T) {
		d := composite.NewDir("d")
		assert.ErrorIs(t, d.Add(d), composite.ErrSelfAttach)
	})

	t.Run("cycle via ancestor", func(t *testing.T) {
		grandparent := composite.NewDir("a")
		parent := composite.NewDir("b")
		child := composite.NewDir("c")
		require.NoError(t, grandparent.Add(parent))
		require.NoError(t, parent.Add(child))

		assert.ErrorIs(t, child.Add(grandparent), composite.ErrCycle)
	})

	t.Run("double attachment", func(t *testing.T) {
		f := composite.NewFile("shared.txt", 1)
		a := composite.NewDir("a")
		b := composite.NewDir("b")
		require.NoError(t, a.Add(f))

		err := b.Add(f)
		require.Error(t, err)
		assert.True(t, composite.IsAlreadyAttachedError(err))

		var aae *composite.AlreadyAttachedError
		require.ErrorAs(t, err, &aae)
		assert.Equal(t, "shared.txt", aae.Name)
	})

	t.Run("remove allows re-attachment", func(t *testing.T) {
		f := composite.NewFile("mv.txt", 1)
		a := composite.NewDir("a")
		b := composite.NewDir("b")
		require.NoError(t, a.Add(f))

		assert.True(t, a.Remove("mv.txt"))
		assert.False(t, a.Remove("mv.txt"))
		assert.NoError(t, b.Add(f))
		assert.Equal(t, 1, b.Len())
	})
}
