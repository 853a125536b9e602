package cli

import (
	"fmt"
	"strings"

	"github.com/andrescamacho/outpost-go/internal/application/simulation"
)

// StatusFormatter renders world status as a tree
type StatusFormatter struct {
	useColors bool
}

// NewStatusFormatter creates a new status formatter
func NewStatusFormatter(useColors bool) *StatusFormatter {
	return &StatusFormatter{useColors: useColors}
}

type statusLine struct {
	text     string
	children []statusLine
}

// FormatStatus renders the full world tree
func (f *StatusFormatter) FormatStatus(status simulation.WorldStatus) string {
	root := statusLine{
		text: fmt.Sprintf("World %s%s%s at %.2fs", f.statusColor(status.Status), status.Status, f.colorReset(), status.Elapsed),
	}

	for _, factory := range status.Factories {
		root.children = append(root.children, f.factoryLine(factory))
	}
	if status.Rocket != nil {
		root.children = append(root.children, f.rocketLine(*status.Rocket))
	}
	if status.Monster != nil {
		m := status.Monster
		line := statusLine{text: fmt.Sprintf("monster hunger=%s", percent(m.Hunger))}
		if m.Dead {
			line.text += " (dead)"
		}
		if len(m.Mouth) > 0 {
			line.children = append(line.children, statusLine{text: "mouth: " + formatStacks(m.Mouth)})
		}
		root.children = append(root.children, line)
	}
	for _, d := range status.Deposits {
		text := fmt.Sprintf("deposit %s hp=%d", d.Name, d.HitPoints)
		if d.Dead {
			text += " (broken)"
		}
		root.children = append(root.children, statusLine{text: text})
	}

	var builder strings.Builder
	f.formatLine(&builder, root, "", true, true)
	return builder.String()
}

func (f *StatusFormatter) factoryLine(factory simulation.FactoryStatus) statusLine {
	text := fmt.Sprintf("factory %s [%s] power=%s", factory.Name, factory.State, percent(factory.Power))
	if factory.UraniumPowered {
		text += " (uranium)"
	}
	line := statusLine{text: text}

	if factory.Recipe != "" {
		line.children = append(line.children, statusLine{
			text: fmt.Sprintf("recipe #%d %s progress=%s", factory.RecipeIndex, factory.Recipe, percent(factory.CraftProgress)),
		})
	}
	if len(factory.CraftIntake) > 0 {
		line.children = append(line.children, statusLine{text: "craft intake: " + formatStacks(factory.CraftIntake)})
	}
	if len(factory.FuelIntake) > 0 {
		line.children = append(line.children, statusLine{text: "fuel intake: " + formatStacks(factory.FuelIntake)})
	}
	if len(factory.AcceptedFuel) > 0 {
		line.children = append(line.children, statusLine{text: "accepts fuel: " + strings.Join(factory.AcceptedFuel, ", ")})
	}
	if len(factory.Queue) > 0 {
		line.children = append(line.children, statusLine{text: "output queue: " + strings.Join(factory.Queue, ", ")})
	}
	return line
}

func (f *StatusFormatter) rocketLine(r simulation.RocketStatus) statusLine {
	if !r.Built {
		text := fmt.Sprintf("rocket pad %d/%d parts", r.Parts, r.PartCount)
		if r.NextPart != "" {
			text += ", next " + r.NextPart
		}
		return statusLine{text: text}
	}

	state := "on pad"
	switch {
	case r.Destroyed:
		state = "destroyed"
	case r.Flying:
		state = "flying"
	}
	return statusLine{text: fmt.Sprintf("rocket %s fuel=%d/%d (%s)", state, r.FuelStored, r.FuelCapacity, percent(r.Power))}
}

func (f *StatusFormatter) formatLine(builder *strings.Builder, line statusLine, prefix string, isLast, isRoot bool) {
	switch {
	case isRoot:
		builder.WriteString(line.text + "\n")
	case isLast:
		builder.WriteString(prefix + "└── " + line.text + "\n")
	default:
		builder.WriteString(prefix + "├── " + line.text + "\n")
	}

	childPrefix := prefix
	if !isRoot {
		if isLast {
			childPrefix += "    "
		} else {
			childPrefix += "│   "
		}
	}
	for i, child := range line.children {
		f.formatLine(builder, child, childPrefix, i == len(line.children)-1, false)
	}
}

// FormatSummary creates a one-line summary of the world
func (f *StatusFormatter) FormatSummary(status simulation.WorldStatus) string {
	crafting := 0
	queued := 0
	for _, factory := range status.Factories {
		if factory.State == "CRAFTING" {
			crafting++
		}
		queued += len(factory.Queue)
	}

	parts := []string{
		fmt.Sprintf("status=%s", status.Status),
		fmt.Sprintf("elapsed=%.2fs", status.Elapsed),
		fmt.Sprintf("crafting=%d/%d", crafting, len(status.Factories)),
		fmt.Sprintf("queued=%d", queued),
	}
	if status.Rocket != nil {
		parts = append(parts, fmt.Sprintf("rocket=%d/%d", status.Rocket.Parts, status.Rocket.PartCount))
	}
	if status.Monster != nil {
		parts = append(parts, fmt.Sprintf("hunger=%s", percent(status.Monster.Hunger)))
	}
	return strings.Join(parts, " ")
}

func (f *StatusFormatter) statusColor(status string) string {
	if !f.useColors {
		return ""
	}

	switch status {
	case string(simulation.GameStatusLaunched):
		return "\033[32m" // Green
	case string(simulation.GameStatusLost):
		return "\033[31m" // Red
	default:
		return "\033[33m" // Yellow
	}
}

func (f *StatusFormatter) colorReset() string {
	if !f.useColors {
		return ""
	}
	return "\033[0m"
}

func formatStacks(stacks []simulation.StackStatus) string {
	parts := make([]string, 0, len(stacks))
	for _, s := range stacks {
		parts = append(parts, fmt.Sprintf("%s×%d", s.Name, s.Count))
	}
	return strings.Join(parts, ", ")
}

func percent(v float64) string {
	return fmt.Sprintf("%.0f%%", v*100)
}
