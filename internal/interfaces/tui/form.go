package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
)

// newInput textinput con el prompt de la casa.
func newInput(placeholder string, width int) textinput.Model {
	in := textinput.New()
	in.Placeholder = placeholder
	in.Prompt = "> "
	in.CharLimit = 64
	in.Width = width
	return in
}

// renderField etiqueta + input + error inline del campo, estilo modal.
func renderField(label string, view string, errText string) string {
	var b strings.Builder
	b.WriteString(labelStyle.Render(label) + "\n")
	b.WriteString(view + "\n")
	if errText != "" {
		b.WriteString(errorStyle.Render(errText) + "\n")
	}
	return b.String()
}

// confirmBox modal de confirmación de borrado, la segunda máquina de dos
// estados independiente del formulario.
func confirmBox() string {
	var b strings.Builder
	b.WriteString(headerStyle.Render("Attention!") + "\n\n")
	b.WriteString("Are you sure you want to delete?\n\n")
	b.WriteString(helpStyle.Render("[y] yes   [n] no"))
	return boxStyle.Render(b.String())
}
