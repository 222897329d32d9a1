package mcs

import (
	"context"
	"testing"

	"faulttree/pkg/expression"
	"faulttree/pkg/model"
	"faulttree/pkg/validate"
)

func sealTree(t *testing.T, build func(b *model.Builder)) (*model.FaultTree, *Index) {
	t.Helper()
	b := model.NewFaultTree("t")
	build(b)
	tree, _, err := validate.Seal(b, validate.Options{})
	if err != nil {
		t.Fatalf("Seal: %v", err)
	}
	return tree, BuildIndex(tree)
}

func TestGenerateAND(t *testing.T) {
	tree, idx := sealTree(t, func(b *model.Builder) {
		_ = b.AddBasicEvent("A", expression.NewConst(0.1))
		_ = b.AddBasicEvent("B", expression.NewConst(0.2))
		_ = b.AddGate("TOP", model.GateAND, []string{"A", "B"}, 0)
	})

	candidates, pruned, err := Generate(context.Background(), tree, idx, Options{})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if pruned != 0 {
		t.Errorf("no pruning expected, got %d", pruned)
	}
	if len(candidates) != 1 || len(candidates[0]) != 2 {
		t.Fatalf("AND of 2 basic events should produce exactly one cut set of size 2, got %v", candidates)
	}
}

func TestGenerateOR(t *testing.T) {
	tree, idx := sealTree(t, func(b *model.Builder) {
		_ = b.AddBasicEvent("A", expression.NewConst(0.1))
		_ = b.AddBasicEvent("B", expression.NewConst(0.2))
		_ = b.AddGate("TOP", model.GateOR, []string{"A", "B"}, 0)
	})

	candidates, _, err := Generate(context.Background(), tree, idx, Options{})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(candidates) != 2 {
		t.Fatalf("OR of 2 basic events should produce 2 singleton cut sets, got %v", candidates)
	}
	for _, cs := range candidates {
		if len(cs) != 1 {
			t.Errorf("expected singleton cut set, got %v", cs)
		}
	}
}

func TestGenerateATLEAST(t *testing.T) {
	tree, idx := sealTree(t, func(b *model.Builder) {
		_ = b.AddBasicEvent("A", expression.NewConst(0.1))
		_ = b.AddBasicEvent("B", expression.NewConst(0.2))
		_ = b.AddBasicEvent("C", expression.NewConst(0.3))
		_ = b.AddGate("TOP", model.GateATLEAST, []string{"A", "B", "C"}, 2)
	})

	candidates, _, err := Generate(context.Background(), tree, idx, Options{})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	minimal := Minimize(candidates)
	if len(minimal) != 3 {
		t.Fatalf("2-of-3 should produce 3 minimal cut sets of size 2, got %d: %v", len(minimal), minimal)
	}
	for _, cs := range minimal {
		if len(cs) != 2 {
			t.Errorf("expected size-2 cut set, got %v", cs)
		}
	}
}

func TestGenerateNOTOnBasicEventProducesNegativeLiteral(t *testing.T) {
	tree, idx := sealTree(t, func(b *model.Builder) {
		_ = b.AddBasicEvent("A", expression.NewConst(0.1))
		_ = b.AddGate("TOP", model.GateNOT, []string{"A"}, 0)
	})

	candidates, _, err := Generate(context.Background(), tree, idx, Options{})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(candidates) != 1 || len(candidates[0]) != 1 || candidates[0][0] >= 0 {
		t.Fatalf("NOT(A) should yield a single negative-literal cut set, got %v", candidates)
	}
}

func TestGenerateNANDAppliesDeMorgan(t *testing.T) {
	tree, idx := sealTree(t, func(b *model.Builder) {
		_ = b.AddBasicEvent("A", expression.NewConst(0.1))
		_ = b.AddBasicEvent("B", expression.NewConst(0.2))
		_ = b.AddGate("TOP", model.GateNAND, []string{"A", "B"}, 0)
	})

	candidates, _, err := Generate(context.Background(), tree, idx, Options{})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	// NAND(A,B) = NOT(AND(A,B)) = OR(NOT A, NOT B): two singleton
	// negative-literal cut sets.
	if len(candidates) != 2 {
		t.Fatalf("NAND should De Morgan into 2 branches, got %v", candidates)
	}
	for _, cs := range candidates {
		if len(cs) != 1 || cs[0] >= 0 {
			t.Errorf("expected a singleton negative literal, got %v", cs)
		}
	}
}

func TestGenerateHouseEventResolvesAwayTerm(t *testing.T) {
	tree, idx := sealTree(t, func(b *model.Builder) {
		_ = b.AddBasicEvent("A", expression.NewConst(0.1))
		_ = b.AddHouseEvent("H", true)
		_ = b.AddGate("TOP", model.GateAND, []string{"A", "H"}, 0)
	})

	candidates, _, err := Generate(context.Background(), tree, idx, Options{})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(candidates) != 1 || len(candidates[0]) != 1 {
		t.Fatalf("a true house event should disappear from the AND, leaving only A, got %v", candidates)
	}
}

func TestGenerateHouseEventKillsBranch(t *testing.T) {
	tree, idx := sealTree(t, func(b *model.Builder) {
		_ = b.AddBasicEvent("A", expression.NewConst(0.1))
		_ = b.AddHouseEvent("H", false)
		_ = b.AddGate("TOP", model.GateAND, []string{"A", "H"}, 0)
	})

	candidates, _, err := Generate(context.Background(), tree, idx, Options{})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(candidates) != 0 {
		t.Fatalf("AND with a permanently-false house event can never occur, got %v", candidates)
	}
}

func TestGenerateLimitOrderPrunes(t *testing.T) {
	tree, idx := sealTree(t, func(b *model.Builder) {
		_ = b.AddBasicEvent("A", expression.NewConst(0.1))
		_ = b.AddBasicEvent("B", expression.NewConst(0.2))
		_ = b.AddBasicEvent("C", expression.NewConst(0.3))
		_ = b.AddGate("TOP", model.GateAND, []string{"A", "B", "C"}, 0)
	})

	_, pruned, err := Generate(context.Background(), tree, idx, Options{LimitOrder: 2})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if pruned == 0 {
		t.Error("a 3-way AND with LimitOrder=2 should prune at least one superset")
	}
}

func TestGenerateRespectsCancellation(t *testing.T) {
	tree, idx := sealTree(t, func(b *model.Builder) {
		_ = b.AddBasicEvent("A", expression.NewConst(0.1))
		_ = b.AddGate("TOP", model.GateAND, []string{"A"}, 0)
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, _, err := Generate(ctx, tree, idx, Options{}); err == nil {
		t.Error("Generate should report cancellation when ctx is already done")
	}
}
