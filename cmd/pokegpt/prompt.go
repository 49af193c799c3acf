package main

import (
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	pokegpt "github.com/tacowhisperer/pokeGPT"
	"github.com/tacowhisperer/pokeGPT/dex"
	"golang.org/x/term"
)

var (
	termWidth, _, _ = term.GetSize(int(os.Stdout.Fd()))

	promptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("33"))
	titleStyle  = lipgloss.NewStyle().Bold(true)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))

	submitKey = key.NewBinding(key.WithKeys("enter"))
	quitKey   = key.NewBinding(key.WithKeys("ctrl+c"))
)

const helpText = `commands:
  find <name>                          look a creature up and show its stat sheets
  gen <ordinal>                        switch generation (arabic or roman, e.g. 4 or IV)
  weather <name>                       set field weather (none, sun, rain, ...)
  calc <attacker> <defender> <type> <power> [special] [crit] [screen] [spread] [burn]
                                       evaluate one move use at level 50
  help                                 show this text
  quit                                 exit

calc builds both sides with perfect IVs, no EVs and a neutral nature.`

type promptModel struct {
	registry *dex.Registry

	gen     pokegpt.Generation
	weather pokegpt.Weather

	input   textinput.Model
	history []string
}

func newPrompt(registry *dex.Registry, gen pokegpt.Generation) promptModel {
	input := textinput.New()
	input.Placeholder = "help"
	input.Focus()

	return promptModel{
		registry: registry,
		gen:      gen,
		weather:  pokegpt.WEATHER_NONE,
		input:    input,
		history: []string{
			titleStyle.Render(fmt.Sprintf("pokegpt — %d creatures loaded, generation %s", registry.Len(), gen)),
			labelStyle.Render("type help for commands"),
		},
	}
}

func (m promptModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m promptModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, quitKey):
			return m, tea.Quit
		case key.Matches(msg, submitKey):
			line := strings.TrimSpace(m.input.Value())
			m.input.Reset()
			if line == "" {
				return m, nil
			}

			if strings.EqualFold(line, "quit") || strings.EqualFold(line, "exit") {
				return m, tea.Quit
			}

			m.history = append(m.history, promptStyle.Render("> ")+line)
			m.history = append(m.history, m.runCommand(line))
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)

	return m, cmd
}

func (m promptModel) View() string {
	body := strings.Join(m.history, "\n")

	return lipgloss.NewStyle().MaxWidth(max(termWidth, 40)).Render(
		body + "\n\n" + promptStyle.Render("> ") + m.input.View(),
	)
}

func (m *promptModel) runCommand(line string) string {
	fields := strings.Fields(line)
	command := strings.ToLower(fields[0])
	args := fields[1:]

	switch command {
	case "help":
		return helpText
	case "gen":
		if len(args) != 1 {
			return errorStyle.Render("usage: gen <ordinal>")
		}

		gen, err := pokegpt.ParseGeneration(args[0])
		if err != nil {
			return errorStyle.Render(err.Error())
		}

		m.gen = gen
		return fmt.Sprintf("generation set to %s", gen)
	case "weather":
		if len(args) != 1 {
			return errorStyle.Render("usage: weather <name>")
		}

		weather, err := pokegpt.WeatherFromName(args[0])
		if err != nil {
			return errorStyle.Render(err.Error())
		}

		m.weather = weather
		return fmt.Sprintf("weather set to %s", weather)
	case "find":
		if len(args) == 0 {
			return errorStyle.Render("usage: find <name>")
		}

		return m.renderRecord(strings.Join(args, " "))
	case "calc":
		return m.runCalc(args)
	}

	return errorStyle.Render(fmt.Sprintf("unknown command %q, type help", command))
}

func (m *promptModel) renderRecord(name string) string {
	record, ok := m.registry.FindByName(name)
	if !ok {
		return errorStyle.Render(fmt.Sprintf("no creature named %q", name))
	}

	typing := record.Types[0].String()
	if record.Types[1] != pokegpt.TYPELESS {
		typing += "/" + record.Types[1].String()
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s  %s\n", titleStyle.Render(record.Name), labelStyle.Render(typing))
	if len(record.Abilities) > 0 {
		fmt.Fprintf(&b, "%s %s\n", labelStyle.Render("abilities:"), strings.Join(record.Abilities, ", "))
	}

	fmt.Fprintf(&b, "%s %s\n", labelStyle.Render("base:     "), renderStats(record.Base))
	for _, level := range []int{50, 100} {
		creature, err := recordCreature(record, level)
		if err != nil {
			return errorStyle.Render(err.Error())
		}
		fmt.Fprintf(&b, "%s %s\n", labelStyle.Render(fmt.Sprintf("level %-3d:", level)), renderStats(pokegpt.EffectiveStats(creature)))
	}

	return strings.TrimRight(b.String(), "\n")
}

func (m *promptModel) runCalc(args []string) string {
	if len(args) < 4 {
		return errorStyle.Render("usage: calc <attacker> <defender> <type> <power> [special] [crit] [screen] [spread] [burn]")
	}

	attackerRecord, ok := m.registry.FindByName(args[0])
	if !ok {
		return errorStyle.Render(fmt.Sprintf("no creature named %q", args[0]))
	}
	defenderRecord, ok := m.registry.FindByName(args[1])
	if !ok {
		return errorStyle.Render(fmt.Sprintf("no creature named %q", args[1]))
	}

	moveType, err := pokegpt.TypeFromName(args[2])
	if err != nil {
		return errorStyle.Render(err.Error())
	}

	power, err := strconv.Atoi(args[3])
	if err != nil || power <= 0 {
		return errorStyle.Render(fmt.Sprintf("bad move power %q", args[3]))
	}

	class := pokegpt.DAMAGETYPE_PHYSICAL
	crit := false
	field := pokegpt.FieldState{Weather: m.weather}
	burned := false

	for _, flagWord := range args[4:] {
		switch strings.ToLower(flagWord) {
		case "special":
			class = pokegpt.DAMAGETYPE_SPECIAL
		case "physical":
		case "crit":
			crit = true
		case "screen":
			field.Reflect = true
			field.LightScreen = true
		case "spread":
			field.MultiTarget = true
		case "burn":
			burned = true
		default:
			return errorStyle.Render(fmt.Sprintf("unknown flag %q", flagWord))
		}
	}

	attacker, err := recordCreature(attackerRecord, 50)
	if err != nil {
		return errorStyle.Render(err.Error())
	}
	if burned {
		attacker.Status = pokegpt.STATUS_BURN
	}

	defender, err := recordCreature(defenderRecord, 50)
	if err != nil {
		return errorStyle.Render(err.Error())
	}

	move := pokegpt.Move{
		Name:  fmt.Sprintf("%s %d", moveType, power),
		Type:  moveType,
		Power: power,
		Class: class,
	}

	// Deterministic run: the random factor pinned to 1 gives the max roll
	report, err := pokegpt.Resolve(m.gen, attacker, defender, move, field, crit, nil)
	if err != nil {
		return errorStyle.Render(err.Error())
	}

	return renderReport(report)
}

func renderReport(report pokegpt.Report) string {
	minDamage := int(math.Floor(report.Result.Damage * 0.85))
	m := report.Result.Multipliers

	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", titleStyle.Render(fmt.Sprintf("damage %d (rolls %d-%d)", report.Damage, minDamage, report.Damage)))
	fmt.Fprintf(&b, "%s %s\n", labelStyle.Render("attacker:"), renderStats(report.AttackerStats))
	fmt.Fprintf(&b, "%s %s\n", labelStyle.Render("defender:"), renderStats(report.DefenderStats))
	fmt.Fprintf(&b, "%s base %.2f, type x%.2f, weather x%.2f, stages x%.2f/x%.2f\n",
		labelStyle.Render("chain:   "),
		report.Result.Base, report.TypeEffectiveness, report.WeatherPower,
		report.AttackStageMultiplier, report.DefenseStageMultiplier)
	fmt.Fprintf(&b, "%s targets x%.2f, crit x%.2f, stab x%.2f, burn x%.2f, screen x%.2f, item x%.2f, ability x%.2f",
		labelStyle.Render("         "),
		m.Targets, m.Crit, m.Stab, m.Burn, m.Screen, m.Item, m.Ability)

	return b.String()
}

func renderStats(stats pokegpt.StatBlock) string {
	return fmt.Sprintf("hp %d / atk %d / def %d / spa %d / spd %d / spe %d",
		stats.Hp, stats.Attack, stats.Def, stats.SpAttack, stats.SpDef, stats.Speed)
}

// recordCreature builds a neutral battle snapshot from a dex record:
// perfect IVs, no EVs, neutral nature, first listed ability.
func recordCreature(record dex.CreatureRecord, level int) (pokegpt.Creature, error) {
	builder := pokegpt.NewCreatureBuilder(record.Name, record.Types[0], record.Types[1], record.Base, nil).
		SetLevel(level).
		SetPerfectIVs()

	if len(record.Abilities) > 0 {
		builder.SetAbility(record.Abilities[0])
	}

	return builder.Build()
}
