package diet

import (
	"strings"
	"testing"

	"github.com/eupern/ai-cancer-chatbot/labs"
)

func flagOf(kind labs.FlagKind) labs.RiskFlag {
	v := 1.0
	return labs.RiskFlag{Kind: kind, Severity: labs.SeverityMild, SupportingValue: &v}
}

func TestZeroFlagsFallsBackToGenericGuidance(t *testing.T) {
	a := Advise(nil)
	if len(a.TriggeredFlags) != 0 {
		t.Errorf("triggered flags = %+v, want none", a.TriggeredFlags)
	}
	if len(a.GuidanceBlocks) != 2 {
		t.Fatalf("guidance blocks = %d, want generic baseline + caution", len(a.GuidanceBlocks))
	}
	if !strings.Contains(a.GuidanceBlocks[0], "General nutrition") {
		t.Errorf("first block is not the generic baseline: %q", a.GuidanceBlocks[0])
	}
	if !strings.Contains(a.GuidanceBlocks[len(a.GuidanceBlocks)-1], "Caution") {
		t.Error("advisory must end with the caution block")
	}
}

// The menu is part of the invariant output shape: present for every input,
// always breakfast/lunch/dinner/snacks.
func TestSampleMenuAlwaysPresent(t *testing.T) {
	for _, flags := range [][]labs.RiskFlag{
		nil,
		{flagOf(labs.Neutropenia)},
		{flagOf(labs.Anemia), flagOf(labs.Hyperglycemia)},
	} {
		a := Advise(flags)
		if len(a.SampleMenu) != 4 {
			t.Fatalf("sample menu has %d entries, want 4", len(a.SampleMenu))
		}
		for i, meal := range []string{"Breakfast", "Lunch", "Dinner", "Snacks"} {
			if !strings.HasPrefix(a.SampleMenu[i], meal) {
				t.Errorf("menu[%d] = %q, want %s entry", i, a.SampleMenu[i], meal)
			}
		}
	}
}

func TestGuidanceBlockPerFlagInFixedOrder(t *testing.T) {
	// Deliberately shuffled input order; output must follow the fixed kind order.
	flags := []labs.RiskFlag{
		flagOf(labs.Hyperglycemia),
		flagOf(labs.Neutropenia),
		flagOf(labs.Anemia),
	}
	a := Advise(flags)

	if len(a.GuidanceBlocks) != 4 { // 3 flags + caution
		t.Fatalf("guidance blocks = %d, want 4", len(a.GuidanceBlocks))
	}
	if !strings.Contains(a.GuidanceBlocks[0], "food safety") {
		t.Errorf("block 0 should be neutropenia guidance: %q", a.GuidanceBlocks[0])
	}
	if !strings.Contains(a.GuidanceBlocks[1], "iron") {
		t.Errorf("block 1 should be anemia guidance: %q", a.GuidanceBlocks[1])
	}
	if !strings.Contains(a.GuidanceBlocks[2], "refined sugar") {
		t.Errorf("block 2 should be hyperglycemia guidance: %q", a.GuidanceBlocks[2])
	}

	kinds := []labs.FlagKind{a.TriggeredFlags[0].Kind, a.TriggeredFlags[1].Kind, a.TriggeredFlags[2].Kind}
	want := []labs.FlagKind{labs.Neutropenia, labs.Anemia, labs.Hyperglycemia}
	for i := range want {
		if kinds[i] != want[i] {
			t.Errorf("triggered flag %d = %s, want %s", i, kinds[i], want[i])
		}
	}
}

func TestDuplicateKindsEmitOneBlock(t *testing.T) {
	a := Advise([]labs.RiskFlag{flagOf(labs.Anemia), flagOf(labs.Anemia)})
	if len(a.TriggeredFlags) != 1 {
		t.Errorf("triggered flags = %d, want deduplicated 1", len(a.TriggeredFlags))
	}
	if len(a.GuidanceBlocks) != 2 { // anemia + caution
		t.Errorf("guidance blocks = %d, want 2", len(a.GuidanceBlocks))
	}
}

func TestEveryKindHasGuidance(t *testing.T) {
	for _, kind := range kindOrder {
		a := Advise([]labs.RiskFlag{flagOf(kind)})
		if len(a.GuidanceBlocks) != 2 {
			t.Errorf("%s: blocks = %d, want flag guidance + caution", kind, len(a.GuidanceBlocks))
		}
		if a.GuidanceBlocks[0] == "" {
			t.Errorf("%s: empty guidance block", kind)
		}
	}
}
