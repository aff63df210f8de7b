package ui

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/pixelgrind/viralfail/internal/game"
	"github.com/pixelgrind/viralfail/internal/scores"
)

const banner = `
 ╔══════════════════════════════════════════════════════════════╗
 ║          🎮  VIRAL OR FAIL  🎮                               ║
 ║          The Gaming Content Algorithm Game                   ║
 ║                                                              ║
 ║   Can your content crack the algorithm?                      ║
 ║   3 AI agents will judge your gaming post.                   ║
 ╚══════════════════════════════════════════════════════════════╝
`

// Console renders the game to a writer and collects player input from a
// reader. Both are injected so the flow is testable without a terminal.
type Console struct {
	in  *bufio.Scanner
	out io.Writer
}

// New creates a console over the given streams.
func New(in io.Reader, out io.Writer) *Console {
	return &Console{
		in:  bufio.NewScanner(in),
		out: out,
	}
}

// Banner prints the title banner.
func (c *Console) Banner() {
	fmt.Fprint(c.out, banner, "\n")
}

// Say prints one formatted line.
func (c *Console) Say(format string, args ...any) {
	fmt.Fprintf(c.out, format+"\n", args...)
}

// Panel prints content inside a titled divider block.
func (c *Console) Panel(title, content string) {
	fmt.Fprintf(c.out, "\n┌─ %s %s\n", title, strings.Repeat("─", max(0, 56-len(title))))
	for _, line := range strings.Split(strings.TrimRight(content, "\n"), "\n") {
		fmt.Fprintf(c.out, "│ %s\n", line)
	}
	fmt.Fprintf(c.out, "└%s\n", strings.Repeat("─", 60))
}

// PickIndex shows a 1-based numbered menu and returns the chosen index
// into options. Out-of-range or non-numeric input re-prompts.
func (c *Console) PickIndex(title string, options []string) int {
	fmt.Fprintf(c.out, "\n%s\n\n", title)
	for i, option := range options {
		fmt.Fprintf(c.out, "  %d. %s\n", i+1, option)
	}

	for {
		fmt.Fprintf(c.out, "\nPick a number [1-%d]: ", len(options))
		line, ok := c.readLine()
		if !ok {
			return 0
		}

		choice, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil || choice < 1 || choice > len(options) {
			fmt.Fprintf(c.out, "Please enter a number between 1 and %d.\n", len(options))
			continue
		}
		return choice - 1
	}
}

// RoundHeader implements game.Presenter.
func (c *Console) RoundHeader(round, maxRounds int) {
	divider := strings.Repeat("=", 60)
	fmt.Fprintf(c.out, "\n%s\n  ROUND %d/%d\n%s\n", divider, round, maxRounds, divider)
}

// Working implements game.Presenter.
func (c *Console) Working(agentName string) {
	fmt.Fprintf(c.out, "\n%s is thinking...\n", agentName)
}

// AgentReply implements game.Presenter.
func (c *Console) AgentReply(agentName, reply string) {
	c.Panel(agentName, reply)
}

// QuickScores implements game.Presenter.
func (c *Console) QuickScores(round int, set scores.ScoreSet) {
	fmt.Fprintf(c.out, "\nRound %d Quick Score\n", round)

	w := tabwriter.NewWriter(c.out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Metric\tScore\n")
	fmt.Fprintf(w, "  Reach\t%d/100\n", set.Reach)
	fmt.Fprintf(w, "  Engagement\t%d/100\n", set.Engagement)
	fmt.Fprintf(w, "  Virality\t%d/100\n", set.Virality)
	fmt.Fprintf(w, "  Weighted Total\t%d/100\n", set.WeightedTotal)
	w.Flush()
}

// ChooseIterate implements game.Presenter. Empty input defaults to
// iterating; anything other than 1 or 2 re-prompts.
func (c *Console) ChooseIterate(nextRound, maxRounds int) bool {
	fmt.Fprintf(c.out, "\nWhat do you want to do?\n")
	fmt.Fprintf(c.out, "  1. ITERATE — Get the Creator to revise (Round %d/%d)\n", nextRound, maxRounds)
	fmt.Fprintf(c.out, "  2. LOCK IN — Accept this version\n")

	for {
		fmt.Fprint(c.out, "\nYour choice [1]: ")
		line, ok := c.readLine()
		if !ok {
			return false
		}

		switch strings.TrimSpace(line) {
		case "", "1":
			return true
		case "2":
			fmt.Fprintln(c.out, "\nLOCKED IN! Let's see the final scorecard.")
			return false
		default:
			fmt.Fprintln(c.out, "Please enter 1 or 2.")
		}
	}
}

// Finalize implements game.Presenter: the closing scorecard, session
// summary, and verdict.
func (c *Console) Finalize(session *game.Session) {
	set := session.Scores()

	fmt.Fprintf(c.out, "\n%s\n  FINAL SCORECARD\n%s\n\n", strings.Repeat("=", 60), strings.Repeat("=", 60))

	w := tabwriter.NewWriter(c.out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Metric\tScore\tRating\n")
	fmt.Fprintf(w, "  Reach\t%d/100\t%s\n", set.Reach, game.Rating(set.Reach))
	fmt.Fprintf(w, "  Engagement\t%d/100\t%s\n", set.Engagement, game.Rating(set.Engagement))
	fmt.Fprintf(w, "  Virality\t%d/100\t%s\n", set.Virality, game.Rating(set.Virality))
	fmt.Fprintf(w, "  Weighted Total\t%d/100\t%s\n", set.WeightedTotal, game.Rating(set.WeightedTotal))
	fmt.Fprintf(w, "\t\t\n")
	fmt.Fprintf(w, "  Topic\t%s\t\n", session.Topic)
	fmt.Fprintf(w, "  Platform\t%s\t\n", session.Platform)
	fmt.Fprintf(w, "  Audience Persona\t%s (%s)\t\n", session.Persona.Name, session.Persona.Description)
	fmt.Fprintf(w, "  Rounds Used\t%d/%d\t\n", session.Round, session.MaxRounds)
	w.Flush()

	c.Panel("VERDICT", game.Verdict(set.WeightedTotal))
}

func (c *Console) readLine() (string, bool) {
	if !c.in.Scan() {
		return "", false
	}
	return c.in.Text(), true
}
