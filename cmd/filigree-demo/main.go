package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/iw2rmb/filigree/field"
	"github.com/iw2rmb/filigree/internal/formspec"
)

const defaultForm = `
title = "filigree demo"

[[field]]
label = "Date"
kind = "mask"
pattern = "99/99/9999"
display = "MM/DD/YYYY"

[[field]]
label = "Amount"
kind = "mask"
pattern = "###,##0.0##"

[[field]]
label = "Time"
kind = "mask"
pattern = "99:99"

[[field]]
label = "Notes"
kind = "text"
placeholder = "free text"
`

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var (
		cfgPath string
		ascii   bool
	)

	cmd := &cobra.Command{
		Use:   "filigree-demo",
		Short: "Interactive form of masked and free-text input fields",
		RunE: func(cmd *cobra.Command, args []string) error {
			form, err := loadForm(cfgPath)
			if err != nil {
				return err
			}
			if ascii {
				lipgloss.DefaultRenderer().SetColorProfile(termenv.Ascii)
			}

			m, err := newModel(form)
			if err != nil {
				return err
			}
			p := tea.NewProgram(m, tea.WithAltScreen())
			_, err = p.Run()
			return err
		},
		SilenceUsage: true,
	}

	cmd.Flags().StringVar(&cfgPath, "config", "", "TOML form definition (default: built-in form)")
	cmd.Flags().BoolVar(&ascii, "ascii", false, "disable colors")
	return cmd
}

func loadForm(path string) (*formspec.Form, error) {
	if path == "" {
		return formspec.Parse(defaultForm)
	}
	return formspec.Load(path)
}

// formItem is one row of the demo form; exactly one of mask/text is set.
type formItem struct {
	label string
	mask  *field.MaskField
	text  *field.TextField
}

type model struct {
	title string
	items []formItem
	focus int

	labelStyle   lipgloss.Style
	focusedLabel lipgloss.Style
	helpStyle    lipgloss.Style
}

func newModel(form *formspec.Form) (model, error) {
	m := model{
		title:        form.Title,
		labelStyle:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(12),
		focusedLabel: lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true).Width(12),
		helpStyle:    lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	}

	for _, fd := range form.Fields {
		switch fd.Kind {
		case formspec.KindMask:
			mf, err := field.NewMaskField(fd.Pattern)
			if err != nil {
				return model{}, fmt.Errorf("field %q: %w", fd.Label, err)
			}
			mf.Core().SetSymbols(fd.Locale.Symbols())
			if fd.Display != "" {
				if err := mf.Core().SetDisplayMask(fd.Display); err != nil {
					return model{}, fmt.Errorf("field %q: %w", fd.Label, err)
				}
			}
			mf = mf.Blur()
			m.items = append(m.items, formItem{label: fd.Label, mask: &mf})
		case formspec.KindText:
			tf := field.NewTextField().Blur()
			tf.Placeholder = fd.Placeholder
			m.items = append(m.items, formItem{label: fd.Label, text: &tf})
		}
	}
	if len(m.items) > 0 {
		m.setFocus(0)
	}
	return m, nil
}

func (m *model) setFocus(i int) {
	n := len(m.items)
	if n == 0 {
		return
	}
	i = ((i % n) + n) % n
	for j := range m.items {
		it := m.items[j]
		if it.mask != nil {
			*it.mask = it.mask.Blur()
		}
		if it.text != nil {
			*it.text = it.text.Blur()
		}
	}
	it := m.items[i]
	if it.mask != nil {
		*it.mask = it.mask.Focus()
	}
	if it.text != nil {
		*it.text = it.text.Focus()
	}
	m.focus = i
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "tab":
			m.setFocus(m.focus + 1)
			return m, nil
		case "shift+tab":
			m.setFocus(m.focus - 1)
			return m, nil
		}
	}

	if len(m.items) == 0 {
		return m, nil
	}
	it := m.items[m.focus]
	var cmd tea.Cmd
	if it.mask != nil {
		*it.mask, cmd = it.mask.Update(msg)
	}
	if it.text != nil {
		*it.text, cmd = it.text.Update(msg)
	}
	return m, cmd
}

func (m model) View() string {
	var rows []string
	if m.title != "" {
		rows = append(rows, lipgloss.NewStyle().Bold(true).Render(m.title), "")
	}
	for i, it := range m.items {
		label := m.labelStyle
		if i == m.focus {
			label = m.focusedLabel
		}
		var view string
		if it.mask != nil {
			view = it.mask.View()
		}
		if it.text != nil {
			view = it.text.View()
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, label.Render(it.label), view))
	}
	rows = append(rows, "", m.helpStyle.Render("tab/shift+tab focus · esc quit"))
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
