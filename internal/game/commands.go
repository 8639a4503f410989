package game

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"
)

// CommandResult is the console-facing outcome of one text command.
type CommandResult struct {
	Handled bool
	Message string
}

const commandHelp = "Commands: status, orders [active|accepted|completed], accept <order#>, " +
	"submit <order#> <slot#> <player#>, subjects, refresh, dna, research <category>, " +
	"mutate <subject#> <dna-id> <dna-id> [dna-id], mutations, players, release <player#>, " +
	"upgrades, buy <upgrade>, save, tick <seconds>, help."

// ExecuteCommand drives the lab from a text console. Entity references are
// 1-based indexes into the current snapshots, which the console prints
// alongside each listing.
func (l *Lab) ExecuteCommand(raw string) CommandResult {
	fields := strings.Fields(strings.TrimSpace(strings.ToLower(raw)))
	if len(fields) == 0 {
		return CommandResult{}
	}

	switch fields[0] {
	case "help", "commands":
		return CommandResult{Handled: true, Message: commandHelp}
	case "status":
		return l.commandStatus()
	case "orders":
		return l.commandOrders(fields[1:])
	case "accept":
		return l.commandAccept(fields[1:])
	case "submit":
		return l.commandSubmit(fields[1:])
	case "subjects":
		return l.commandSubjects()
	case "refresh":
		if !l.RefreshSubjects() {
			return CommandResult{Handled: true, Message: "Not enough money to refresh subjects."}
		}
		return l.commandSubjects()
	case "dna":
		return l.commandDNA()
	case "research":
		return l.commandResearch(fields[1:])
	case "mutate":
		return l.commandMutate(fields[1:])
	case "mutations":
		return l.commandMutations()
	case "players":
		return l.commandPlayers()
	case "release":
		return l.commandRelease(fields[1:])
	case "upgrades":
		return l.commandUpgrades()
	case "buy":
		return l.commandBuy(fields[1:])
	case "save":
		if err := l.Save(); err != nil {
			return CommandResult{Handled: true, Message: "Save failed: " + err.Error()}
		}
		return CommandResult{Handled: true, Message: "Game saved."}
	case "tick":
		return l.commandTick(fields[1:])
	default:
		return CommandResult{}
	}
}

func (l *Lab) commandStatus() CommandResult {
	snap := l.Snapshot()
	return CommandResult{Handled: true, Message: fmt.Sprintf(
		"Money: $%.0f | Orders: %d active, %d accepted, %d completed | Mutations: %d | Players: %d | Next order in %.0fs",
		snap.Money, len(snap.ActiveOrders), len(snap.AcceptedOrders), len(snap.CompletedOrders),
		len(snap.ActiveMutations), len(snap.Players), snap.NextOrderIn)}
}

func (l *Lab) commandOrders(args []string) CommandResult {
	list := l.ActiveOrders()
	label := "active"
	if len(args) > 0 {
		switch args[0] {
		case "accepted":
			list, label = l.AcceptedOrders(), "accepted"
		case "completed":
			list, label = l.CompletedOrders(), "completed"
		case "active":
		default:
			return CommandResult{Handled: true, Message: "Usage: orders [active|accepted|completed]"}
		}
	}
	if len(list) == 0 {
		return CommandResult{Handled: true, Message: "No " + label + " orders."}
	}

	var b strings.Builder
	for i, order := range list {
		fmt.Fprintf(&b, "%d. %s ($%d", i+1, order.Team, order.BasePayout)
		if label == "active" {
			fmt.Fprintf(&b, ", %.0fs left", order.TimeRemaining.Seconds())
		}
		b.WriteString(")\n")
		for j, req := range order.Requirements {
			mark := " "
			if req.Fulfilled {
				mark = "x"
			}
			fmt.Fprintf(&b, "   [%s] slot %d %s:", mark, j+1, req.Position)
			for _, name := range StatNames {
				if sr, ok := req.Stats[name]; ok {
					fmt.Fprintf(&b, " %s %d/%d", name, sr.Min, sr.Optimal)
				}
			}
			b.WriteString("\n")
		}
	}
	return CommandResult{Handled: true, Message: strings.TrimRight(b.String(), "\n")}
}

func (l *Lab) commandAccept(args []string) CommandResult {
	order, ok := pickIndexed(l.ActiveOrders(), args, 0)
	if !ok {
		return CommandResult{Handled: true, Message: "Usage: accept <order#> (see orders)"}
	}
	if !l.AcceptOrder(order.ID) {
		return CommandResult{Handled: true, Message: "Order can no longer be accepted."}
	}
	return CommandResult{Handled: true, Message: "Accepted order from " + order.Team + "."}
}

func (l *Lab) commandSubmit(args []string) CommandResult {
	if len(args) < 3 {
		return CommandResult{Handled: true, Message: "Usage: submit <order#> <slot#> <player#>"}
	}
	order, okOrder := pickIndexed(l.AcceptedOrders(), args, 0)
	slot, errSlot := strconv.Atoi(args[1])
	player, okPlayer := pickIndexed(l.AvailablePlayers(), args, 2)
	if !okOrder || errSlot != nil || !okPlayer {
		return CommandResult{Handled: true, Message: "Usage: submit <order#> <slot#> <player#>"}
	}
	if !l.SubmitPlayer(order.ID, slot-1, player.ID) {
		return CommandResult{Handled: true, Message: "Submission rejected (slot already fulfilled, or player unavailable)."}
	}
	return CommandResult{Handled: true, Message: fmt.Sprintf("Submitted %s to %s slot %d.", player.Name, order.Team, slot)}
}

func (l *Lab) commandSubjects() CommandResult {
	var b strings.Builder
	for i, s := range l.Subjects() {
		fmt.Fprintf(&b, "%d. %s (overall %d, %s)\n", i+1, s.Name, s.BaseStats.Overall(), strings.Join(s.NaturalTraits, ", "))
	}
	return CommandResult{Handled: true, Message: strings.TrimRight(b.String(), "\n")}
}

func (l *Lab) commandDNA() CommandResult {
	items := l.UnlockedDNA()
	if len(items) == 0 {
		return CommandResult{Handled: true, Message: "No DNA unlocked yet."}
	}
	var b strings.Builder
	for _, item := range items {
		fmt.Fprintf(&b, "%s  %s [%s/%s] %s\n", item.ID, item.Name, item.Category, item.Rarity, item.Description)
	}
	return CommandResult{Handled: true, Message: strings.TrimRight(b.String(), "\n")}
}

func (l *Lab) commandResearch(args []string) CommandResult {
	if len(args) == 0 {
		tasks := l.ResearchTasks()
		if len(tasks) == 0 {
			return CommandResult{Handled: true, Message: "No research running. Usage: research <animal|legendaryplayer|environment|mechanical>"}
		}
		var b strings.Builder
		for _, task := range tasks {
			fmt.Fprintf(&b, "%s: %.0f%%\n", task.Category, task.Progress()*100)
		}
		return CommandResult{Handled: true, Message: strings.TrimRight(b.String(), "\n")}
	}

	category, ok := matchCategory(args[0])
	if !ok {
		return CommandResult{Handled: true, Message: "Unknown category. Use animal, legendaryplayer, environment or mechanical."}
	}
	if !l.StartResearch(category) {
		return CommandResult{Handled: true, Message: "Research rejected (already running, or not enough money)."}
	}
	return CommandResult{Handled: true, Message: fmt.Sprintf("Researching %s DNA.", category)}
}

func (l *Lab) commandMutate(args []string) CommandResult {
	if len(args) < 3 {
		return CommandResult{Handled: true, Message: "Usage: mutate <subject#> <dna-id> <dna-id> [dna-id]"}
	}
	subject, ok := pickIndexed(l.Subjects(), args, 0)
	if !ok {
		return CommandResult{Handled: true, Message: "Usage: mutate <subject#> <dna-id> <dna-id> [dna-id]"}
	}
	if _, ok := l.StartMutation(subject.ID, args[1:]); !ok {
		return CommandResult{Handled: true, Message: "Mutation rejected (chamber full, bad DNA count, or locked DNA)."}
	}
	return CommandResult{Handled: true, Message: "Mutation started for " + subject.Name + "."}
}

func (l *Lab) commandMutations() CommandResult {
	attempts := l.ActiveMutations()
	if len(attempts) == 0 {
		return CommandResult{Handled: true, Message: "No mutations in progress."}
	}
	var b strings.Builder
	for _, a := range attempts {
		fmt.Fprintf(&b, "%s: %.0f%% (%.0fs left)\n", a.Subject.Name, a.Progress()*100, a.Remaining().Seconds())
	}
	return CommandResult{Handled: true, Message: strings.TrimRight(b.String(), "\n")}
}

func (l *Lab) commandPlayers() CommandResult {
	players := l.Players()
	if len(players) == 0 {
		return CommandResult{Handled: true, Message: "No created players yet."}
	}
	var b strings.Builder
	for i, p := range players {
		state := "available"
		if p.Assigned {
			state = "assigned"
		}
		fmt.Fprintf(&b, "%d. %s (overall %d, %s) DNA: %s\n", i+1, p.Name, p.Stats.Overall(), state, strings.Join(p.DNAUsed, ", "))
	}
	return CommandResult{Handled: true, Message: strings.TrimRight(b.String(), "\n")}
}

func (l *Lab) commandRelease(args []string) CommandResult {
	player, ok := pickIndexed(l.Players(), args, 0)
	if !ok {
		return CommandResult{Handled: true, Message: "Usage: release <player#>"}
	}
	if !l.RemovePlayer(player.ID) {
		return CommandResult{Handled: true, Message: "Player not found."}
	}
	return CommandResult{Handled: true, Message: "Released " + player.Name + "."}
}

func (l *Lab) commandUpgrades() CommandResult {
	levels := l.UpgradeLevels()
	types := make([]UpgradeType, 0, len(levels))
	for t := range levels {
		types = append(types, t)
	}
	sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })

	var b strings.Builder
	for _, t := range types {
		fmt.Fprintf(&b, "%s: level %d (next $%.0f)\n", t, levels[t], l.UpgradeCost(t))
	}
	return CommandResult{Handled: true, Message: strings.TrimRight(b.String(), "\n")}
}

func (l *Lab) commandBuy(args []string) CommandResult {
	if len(args) == 0 {
		return CommandResult{Handled: true, Message: "Usage: buy <upgrade> (see upgrades)"}
	}
	for _, t := range AllUpgrades {
		if strings.EqualFold(string(t), args[0]) {
			if !l.PurchaseUpgrade(t) {
				return CommandResult{Handled: true, Message: "Purchase rejected (max level, or not enough money)."}
			}
			return CommandResult{Handled: true, Message: fmt.Sprintf("%s is now level %d.", t, l.UpgradeLevels()[t])}
		}
	}
	return CommandResult{Handled: true, Message: "Unknown upgrade. See upgrades."}
}

func (l *Lab) commandTick(args []string) CommandResult {
	secondsArg := 1.0
	if len(args) > 0 {
		v, err := strconv.ParseFloat(args[0], 64)
		if err != nil || v <= 0 {
			return CommandResult{Handled: true, Message: "Usage: tick <seconds>"}
		}
		secondsArg = v
	}
	events := l.Tick(time.Duration(secondsArg * float64(time.Second)))
	if len(events) == 0 {
		return CommandResult{Handled: true, Message: fmt.Sprintf("Advanced %.0fs.", secondsArg)}
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Advanced %.0fs:\n", secondsArg)
	for _, ev := range events {
		fmt.Fprintf(&b, "  %s\n", ev.Type)
	}
	return CommandResult{Handled: true, Message: strings.TrimRight(b.String(), "\n")}
}

func matchCategory(raw string) (DNACategory, bool) {
	for _, category := range AllCategories {
		if strings.EqualFold(string(category), raw) {
			return category, true
		}
	}
	return "", false
}

// pickIndexed resolves a 1-based index argument into a listing.
func pickIndexed[T any](list []T, args []string, pos int) (T, bool) {
	var zero T
	if pos >= len(args) {
		return zero, false
	}
	idx, err := strconv.Atoi(args[pos])
	if err != nil || idx < 1 || idx > len(list) {
		return zero, false
	}
	return list[idx-1], true
}
