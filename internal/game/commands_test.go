package game

import (
	"strings"
	"testing"
)

func TestExecuteCommandHelp(t *testing.T) {
	lab := NewLab(testLabConfig(), nil, nil)

	result := lab.ExecuteCommand("help")
	if !result.Handled || !strings.Contains(result.Message, "status") {
		t.Fatalf("help result = %+v", result)
	}
	if result := lab.ExecuteCommand("commands"); !result.Handled {
		t.Fatal("commands alias not handled")
	}
}

func TestExecuteCommandUnknown(t *testing.T) {
	lab := NewLab(testLabConfig(), nil, nil)

	if result := lab.ExecuteCommand("frobnicate"); result.Handled {
		t.Fatal("unknown verb must not be handled")
	}
	if result := lab.ExecuteCommand(""); result.Handled {
		t.Fatal("empty input must not be handled")
	}
}

func TestExecuteCommandStatus(t *testing.T) {
	lab := NewLab(testLabConfig(), nil, nil)

	result := lab.ExecuteCommand("status")
	if !result.Handled || !strings.Contains(result.Message, "Money: $50") {
		t.Fatalf("status result = %+v", result)
	}
}

func TestExecuteCommandSubjects(t *testing.T) {
	lab := NewLab(testLabConfig(), nil, nil)

	result := lab.ExecuteCommand("subjects")
	if !result.Handled {
		t.Fatal("subjects not handled")
	}
	if got := len(strings.Split(result.Message, "\n")); got != 3 {
		t.Fatalf("subject listing has %d lines, want 3", got)
	}
}

func TestExecuteCommandOrders(t *testing.T) {
	lab := NewLab(testLabConfig(), nil, nil)

	if result := lab.ExecuteCommand("orders"); !strings.Contains(result.Message, "No active orders") {
		t.Fatalf("orders result = %+v", result)
	}
	if result := lab.ExecuteCommand("orders bogus"); !strings.Contains(result.Message, "Usage") {
		t.Fatalf("bad filter result = %+v", result)
	}
	if result := lab.ExecuteCommand("accept 1"); !strings.Contains(result.Message, "Usage") {
		t.Fatalf("accept without orders = %+v", result)
	}
}

func TestExecuteCommandResearchRejection(t *testing.T) {
	lab := NewLab(testLabConfig(), nil, nil)

	// Starting money cannot cover the research cost.
	result := lab.ExecuteCommand("research animal")
	if !result.Handled || !strings.Contains(result.Message, "rejected") {
		t.Fatalf("research result = %+v", result)
	}
	if result := lab.ExecuteCommand("research alien"); !strings.Contains(result.Message, "Unknown category") {
		t.Fatalf("bad category result = %+v", result)
	}
}

func TestExecuteCommandTick(t *testing.T) {
	lab := NewLab(testLabConfig(), nil, nil)

	result := lab.ExecuteCommand("tick 5")
	if !result.Handled || !strings.Contains(result.Message, "Advanced 5s") {
		t.Fatalf("tick result = %+v", result)
	}
	if result := lab.ExecuteCommand("tick nope"); !strings.Contains(result.Message, "Usage") {
		t.Fatalf("bad tick result = %+v", result)
	}

	// Enough ticks and an order arrives.
	lab.ExecuteCommand("tick 30")
	if result := lab.ExecuteCommand("orders"); strings.Contains(result.Message, "No active orders") {
		t.Fatalf("an order should have spawned: %+v", result)
	}
}

func TestExecuteCommandBuy(t *testing.T) {
	lab := NewLab(testLabConfig(), nil, richSave())

	result := lab.ExecuteCommand("buy mutationchamber")
	if !result.Handled || !strings.Contains(result.Message, "level 3") {
		t.Fatalf("buy result = %+v", result)
	}
	if result := lab.ExecuteCommand("buy warpdrive"); !strings.Contains(result.Message, "Unknown upgrade") {
		t.Fatalf("unknown upgrade result = %+v", result)
	}
}
