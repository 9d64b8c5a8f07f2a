package conditions

import (
	"fmt"
	"strings"

	"github.com/bindle-build/bindle/pkg/types"
)

// Condition is one node of a condition tree. Evaluation is pure and total:
// the result depends only on the node and the fact, so a built tree may be
// shared across any number of concurrent evaluations.
type Condition interface {
	// Matches reports whether the candidate satisfies this node.
	Matches(fact types.ResourceFact) bool

	// Describe returns a compact human-readable rendering of the node,
	// used for logs and CLI output, never for evaluation.
	Describe() string

	// sealed keeps the set of node types closed to this package.
	sealed()
}

type allNode struct {
	children []Condition
}

type anyNode struct {
	children []Condition
}

type notNode struct {
	child Condition
}

type pathEqualsNode struct {
	path string
}

type pathEndsWithNode struct {
	suffix string
}

type pathWithinDirNode struct {
	dir string
}

type referenceKindNode struct {
	kind types.ReferenceKind
}

// All matches when every child matches. An empty All is vacuously true.
func All(children ...Condition) Condition {
	return allNode{children: children}
}

// Any matches when at least one child matches. An empty Any is vacuously false.
func Any(children ...Condition) Condition {
	return anyNode{children: children}
}

// Not inverts its child
func Not(child Condition) Condition {
	return notNode{child: child}
}

// PathEquals matches a candidate whose path is byte-equal to path
func PathEquals(path string) Condition {
	return pathEqualsNode{path: path}
}

// PathEndsWith matches a candidate whose path ends with suffix. The match
// is case-sensitive and purely textual; no filesystem lookup happens.
func PathEndsWith(suffix string) Condition {
	return pathEndsWithNode{suffix: suffix}
}

// PathWithinDirectory matches a candidate whose path is dir itself or
// nested anywhere beneath it.
func PathWithinDirectory(dir string) Condition {
	return pathWithinDirNode{dir: strings.TrimSuffix(dir, "/")}
}

// ReferenceKindIs matches a candidate reached through the given reference kind
func ReferenceKindIs(kind types.ReferenceKind) Condition {
	return referenceKindNode{kind: kind}
}

func (n allNode) Matches(fact types.ResourceFact) bool {
	for _, child := range n.children {
		if !child.Matches(fact) {
			return false
		}
	}
	return true
}

func (n anyNode) Matches(fact types.ResourceFact) bool {
	for _, child := range n.children {
		if child.Matches(fact) {
			return true
		}
	}
	return false
}

func (n notNode) Matches(fact types.ResourceFact) bool {
	return !n.child.Matches(fact)
}

func (n pathEqualsNode) Matches(fact types.ResourceFact) bool {
	return fact.Path == n.path
}

func (n pathEndsWithNode) Matches(fact types.ResourceFact) bool {
	return strings.HasSuffix(fact.Path, n.suffix)
}

func (n pathWithinDirNode) Matches(fact types.ResourceFact) bool {
	if fact.Path == n.dir {
		return true
	}
	return strings.HasPrefix(fact.Path, n.dir+"/")
}

func (n referenceKindNode) Matches(fact types.ResourceFact) bool {
	return fact.Reference == n.kind
}

func (n allNode) Describe() string {
	return describeList("all", n.children)
}

func (n anyNode) Describe() string {
	return describeList("any", n.children)
}

func (n notNode) Describe() string {
	return fmt.Sprintf("not(%s)", n.child.Describe())
}

func (n pathEqualsNode) Describe() string {
	return fmt.Sprintf("path == %q", n.path)
}

func (n pathEndsWithNode) Describe() string {
	return fmt.Sprintf("path ends with %q", n.suffix)
}

func (n pathWithinDirNode) Describe() string {
	return fmt.Sprintf("path within %q", n.dir)
}

func (n referenceKindNode) Describe() string {
	return fmt.Sprintf("reference is %q", string(n.kind))
}

func describeList(op string, children []Condition) string {
	parts := make([]string, len(children))
	for i, child := range children {
		parts[i] = child.Describe()
	}
	return fmt.Sprintf("%s(%s)", op, strings.Join(parts, ", "))
}

func (allNode) sealed()           {}
func (anyNode) sealed()           {}
func (notNode) sealed()           {}
func (pathEqualsNode) sealed()    {}
func (pathEndsWithNode) sealed()  {}
func (pathWithinDirNode) sealed() {}
func (referenceKindNode) sealed() {}
