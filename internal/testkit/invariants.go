// Package testkit holds structural checks shared by pipeline tests.
package testkit

import (
	"fmt"

	"fortio.org/safecast"

	"pseudo/internal/ast"
	"pseudo/internal/ir"
	"pseudo/internal/source"
)

// CheckSpanInvariants runs a minimal set of span invariants over a parsed
// tree:
// 1) every node span with a file id points at the parsed file
// 2) no span is inverted or reaches beyond the file content
func CheckSpanInvariants(root *ast.Node, sf *source.File) error {
	if root == nil || sf == nil {
		return fmt.Errorf("nil tree or file")
	}
	lenContent, err := safecast.Conv[uint32](len(sf.Content))
	if err != nil {
		return fmt.Errorf("len content overflow: %w", err)
	}
	return walkAST(root, func(n *ast.Node) error {
		sp := n.Span
		if sp.Empty() {
			// synthesized and placeholder nodes carry no span
			return nil
		}
		if sp.File != sf.ID {
			return fmt.Errorf("%s span points to different file id: got=%d want=%d", n.Kind, sp.File, sf.ID)
		}
		if sp.End < sp.Start {
			return fmt.Errorf("%s span is inverted: %v", n.Kind, sp)
		}
		if sp.End > lenContent {
			return fmt.Errorf("%s span end beyond content: %d > %d", n.Kind, sp.End, lenContent)
		}
		return nil
	})
}

func walkAST(n *ast.Node, visit func(*ast.Node) error) error {
	if n == nil {
		return nil
	}
	if err := visit(n); err != nil {
		return err
	}
	for _, c := range n.Children {
		if err := walkAST(c, visit); err != nil {
			return err
		}
	}
	return nil
}

// CheckRoleInvariants verifies the block structure the generator relies on:
// 1) continuation nodes appear only as direct children of a matching opener
// 2) the root is a program node and programs never nest
func CheckRoleInvariants(root *ir.Node) error {
	if root == nil {
		return fmt.Errorf("nil tree")
	}
	if root.Kind != ir.KindProgram {
		return fmt.Errorf("root is %s, want program", root.Kind)
	}
	return checkRoles(root, true)
}

func checkRoles(n *ir.Node, isRoot bool) error {
	if n.Kind == ir.KindProgram && !isRoot {
		return fmt.Errorf("nested program node")
	}
	for _, c := range n.Children {
		if ir.RoleOf(c.Kind) == ir.RoleContinuation && !continuationFits(n.Kind, c.Kind) {
			return fmt.Errorf("%s may not contain %s", n.Kind, c.Kind)
		}
		if err := checkRoles(c, false); err != nil {
			return err
		}
	}
	return nil
}

func continuationFits(parent, child ir.Kind) bool {
	switch child {
	case ir.KindElse:
		return parent == ir.KindIf
	case ir.KindCaseBranch, ir.KindOtherwise:
		return parent == ir.KindCase
	}
	return false
}
