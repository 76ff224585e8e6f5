package wizard

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// choiceInput reads an integer within [lo, hi]. Anything else is rejected
// on submit and never reaches the screen handler.
type choiceInput struct {
	input  textinput.Model
	lo, hi int
	err    string
}

func newChoiceInput() choiceInput {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.CharLimit = 3
	return choiceInput{input: ti}
}

// reset clears the input and sets the accepted range.
func (c *choiceInput) reset(lo, hi int) tea.Cmd {
	c.lo, c.hi = lo, hi
	c.err = ""
	c.input.SetValue("")
	c.input.Placeholder = fmt.Sprintf("%d-%d", lo, hi)
	return c.input.Focus()
}

// update returns the accepted choice and true once a valid number is submitted.
func (c choiceInput) update(msg tea.Msg) (choiceInput, int, bool, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok && key.Matches(k, keys.Submit) {
		n, err := strconv.Atoi(strings.TrimSpace(c.input.Value()))
		c.input.SetValue("")
		if err != nil || n < c.lo || n > c.hi {
			c.err = fmt.Sprintf("Please select one of the available options (%d to %d).", c.lo, c.hi)
			return c, 0, false, nil
		}
		c.err = ""
		return c, n, true, nil
	}

	var cmd tea.Cmd
	c.input, cmd = c.input.Update(msg)
	return c, 0, false, cmd
}

func (c choiceInput) view() string {
	return c.input.View()
}

// confirmInput answers a yes/no question. Enter takes the default.
type confirmInput struct {
	question string
	def      bool
}

func (c confirmInput) update(msg tea.Msg) (answer, done bool) {
	k, ok := msg.(tea.KeyMsg)
	if !ok {
		return false, false
	}
	switch {
	case key.Matches(k, keys.Yes):
		return true, true
	case key.Matches(k, keys.No):
		return false, true
	case key.Matches(k, keys.Submit):
		return c.def, true
	}
	return false, false
}

func (c confirmInput) view() string {
	hint := "[y/N]"
	if c.def {
		hint = "[Y/n]"
	}
	return c.question + " " + hint
}
